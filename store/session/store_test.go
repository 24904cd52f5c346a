package session

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medicare/httpclient"
	"medicare/httpclient/apitest"
	"medicare/models"
	"medicare/services/auth"
	"medicare/services/notification"
	"medicare/storage"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginEnvelope(token, role string, user map[string]any) models.Envelope {
	env := apitest.OK(user, "Successfully login")
	env.Token = token
	env.Role = role
	return env
}

func newStore(t *testing.T, api *apitest.API, s storage.Storage) (*Store, *notification.DefaultNotificationService) {
	t.Helper()
	n := notification.NewNotificationService(nil, 0)
	store, err := New(Config{Auth: auth.NewAuthService(api), Storage: s, Notifier: n})
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store, n
}

func stored(t *testing.T, s storage.Storage, key string) (string, bool) {
	t.Helper()
	v, ok, err := s.GetItem(key)
	require.NoError(t, err)
	return v, ok
}

func TestLoginSuccessMirrorsAllFields(t *testing.T) {
	api := apitest.New().On("POST", "/auth/login", loginEnvelope("t", "patient", map[string]any{"_id": "u1", "name": "Ann"}))
	mem := storage.NewMemoryStorage()
	store, n := newStore(t, api, mem)

	res := store.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.True(t, res.Success)

	st := store.Snapshot()
	assert.Equal(t, "t", st.Token)
	assert.Equal(t, models.RolePatient, st.Role)
	assert.Equal(t, "u1", st.User.ID())
	assert.False(t, st.IsLoading)

	token, _ := stored(t, mem, utils.StorageKeyToken)
	role, _ := stored(t, mem, utils.StorageKeyRole)
	rawUser, _ := stored(t, mem, utils.StorageKeyUser)
	assert.Equal(t, "t", token)
	assert.Equal(t, "patient", role)
	assert.JSONEq(t, `{"_id":"u1","name":"Ann"}`, rawUser)
	assert.Equal(t, "t", store.Token())
	assert.Equal(t, models.LevelSuccess, n.Recent()[0].Level)
}

func TestLoginFailureStaysAnonymous(t *testing.T) {
	api := apitest.New().On("POST", "/auth/login", apitest.Failure("Invalid credentials", 400))
	mem := storage.NewMemoryStorage()
	store, n := newStore(t, api, mem)

	res := store.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "bad"})
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid credentials", res.Message)

	st := store.Snapshot()
	assert.Empty(t, st.Token)
	assert.Empty(t, st.Role)
	assert.Nil(t, st.User)
	assert.Equal(t, "Invalid credentials", st.Error)
	assert.False(t, st.IsLoading)

	_, ok := stored(t, mem, utils.StorageKeyToken)
	assert.False(t, ok)
	assert.Equal(t, "Invalid credentials", n.Recent()[0].Message)
}

func TestLoginTransportFailureUsesFallback(t *testing.T) {
	api := apitest.New().On("POST", "/auth/login", apitest.Failure("", 500))
	store, _ := newStore(t, api, storage.NewMemoryStorage())

	res := store.Login(context.Background(), models.Credentials{})
	assert.Equal(t, "Login failed. Please check your credentials.", res.Message)
	assert.Equal(t, "Login failed. Please check your credentials.", store.Snapshot().Error)
}

func TestIncompleteLoginResponseIsFailure(t *testing.T) {
	cases := map[string]models.Envelope{
		"no token": loginEnvelope("", "patient", map[string]any{"_id": "u1"}),
		"no role":  loginEnvelope("t", "", map[string]any{"_id": "u1"}),
		"bad role": loginEnvelope("t", "nurse", map[string]any{"_id": "u1"}),
		"no user":  {Success: true, Token: "t", Role: "doctor", Status: 200},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			api := apitest.New().On("POST", "/auth/login", env)
			store, _ := newStore(t, api, storage.NewMemoryStorage())

			res := store.Login(context.Background(), models.Credentials{})
			assert.False(t, res.Success)
			st := store.Snapshot()
			assert.Empty(t, st.Token)
			assert.Empty(t, st.Role)
			assert.Nil(t, st.User)
		})
	}
}

func TestLogoutClearsStorageAndIsIdempotent(t *testing.T) {
	api := apitest.New().On("POST", "/auth/login", loginEnvelope("t", "doctor", map[string]any{"_id": "d1"}))
	mem := storage.NewMemoryStorage()
	store, _ := newStore(t, api, mem)
	require.True(t, store.Login(context.Background(), models.Credentials{}).Success)

	store.Logout(context.Background())
	assert.Equal(t, State{}, store.Snapshot())
	for _, key := range []string{utils.StorageKeyToken, utils.StorageKeyRole, utils.StorageKeyUser} {
		_, ok := stored(t, mem, key)
		assert.False(t, ok, key)
	}

	require.NoError(t, mem.SetItem(utils.StorageKeyRole, "doctor"))
	store.Logout(context.Background())
	assert.Equal(t, State{}, store.Snapshot())
	_, ok := stored(t, mem, utils.StorageKeyRole)
	assert.False(t, ok)
}

func TestRegisterNeverLogsIn(t *testing.T) {
	api := apitest.New().On("POST", "/auth/register", apitest.OK(map[string]any{"_id": "u9"}, "User successfully created"))
	store, n := newStore(t, api, storage.NewMemoryStorage())

	res := store.Register(context.Background(), models.RegistrationData{Name: "Ann", Email: "a@b.c", Password: "Secret12", Role: models.RolePatient})
	require.True(t, res.Success)
	st := store.Snapshot()
	assert.False(t, st.Authenticated())
	assert.False(t, st.IsLoading)
	assert.Equal(t, "Registration successful! Please login.", n.Recent()[0].Message)
}

func TestRegisterFailureKeepsExistingSession(t *testing.T) {
	api := apitest.New().
		On("POST", "/auth/login", loginEnvelope("t", "admin", map[string]any{"_id": "a1"})).
		On("POST", "/auth/register", apitest.Failure("User already exist", 400))
	store, _ := newStore(t, api, storage.NewMemoryStorage())
	require.True(t, store.Login(context.Background(), models.Credentials{}).Success)

	res := store.Register(context.Background(), models.RegistrationData{})
	assert.False(t, res.Success)
	st := store.Snapshot()
	assert.Equal(t, "t", st.Token)
	assert.Equal(t, "User already exist", st.Error)
}

func TestUpdateUserOnlyWhileAuthenticated(t *testing.T) {
	api := apitest.New().On("POST", "/auth/login", loginEnvelope("t", "patient", map[string]any{"_id": "u1", "name": "Ann"}))
	mem := storage.NewMemoryStorage()
	store, _ := newStore(t, api, mem)

	store.UpdateUser(models.UserProfile{"_id": "ghost"})
	assert.Nil(t, store.Snapshot().User)

	require.True(t, store.Login(context.Background(), models.Credentials{}).Success)
	store.UpdateUser(models.UserProfile{"_id": "u1", "name": "Annie"})

	st := store.Snapshot()
	assert.Equal(t, "Annie", st.User.Name())
	assert.Equal(t, "t", st.Token)
	rawUser, _ := stored(t, mem, utils.StorageKeyUser)
	assert.JSONEq(t, `{"_id":"u1","name":"Annie"}`, rawUser)
}

func TestRehydrationRoundTrip(t *testing.T) {
	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.SetItem(utils.StorageKeyToken, "t"))
	require.NoError(t, mem.SetItem(utils.StorageKeyRole, "patient"))
	require.NoError(t, mem.SetItem(utils.StorageKeyUser, `{"_id":"u1","name":"Ann","age":31}`))

	store, _ := newStore(t, apitest.New(), mem)
	st := store.Snapshot()
	assert.Equal(t, "t", st.Token)
	assert.Equal(t, models.RolePatient, st.Role)
	assert.Equal(t, models.UserProfile{"_id": "u1", "name": "Ann", "age": float64(31)}, st.User)

	again, _ := newStore(t, apitest.New(), mem)
	assert.Equal(t, st, again.Snapshot())
}

func TestRehydrationMissingFieldsAreEmpty(t *testing.T) {
	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.SetItem(utils.StorageKeyRole, "doctor"))

	store, _ := newStore(t, apitest.New(), mem)
	st := store.Snapshot()
	assert.Empty(t, st.Token)
	assert.Equal(t, models.RoleDoctor, st.Role)
	assert.Nil(t, st.User)
}

func TestRehydrationDropsExpiredJWT(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.SetItem(utils.StorageKeyToken, token))
	require.NoError(t, mem.SetItem(utils.StorageKeyRole, "patient"))
	require.NoError(t, mem.SetItem(utils.StorageKeyUser, `{"_id":"u1"}`))

	store, _ := newStore(t, apitest.New(), mem)
	assert.Equal(t, State{}, store.Snapshot())
	_, ok := stored(t, mem, utils.StorageKeyUser)
	assert.False(t, ok)
}

func TestExpireEndsSession(t *testing.T) {
	api := apitest.New().On("POST", "/auth/login", loginEnvelope("t", "patient", map[string]any{"_id": "u1"}))
	mem := storage.NewMemoryStorage()
	store, n := newStore(t, api, mem)
	require.True(t, store.Login(context.Background(), models.Credentials{}).Success)

	store.Expire("t", "Token is expired")
	st := store.Snapshot()
	assert.False(t, st.Authenticated())
	assert.Equal(t, "Token is expired", st.Error)
	_, ok := stored(t, mem, utils.StorageKeyToken)
	assert.False(t, ok)
	assert.Equal(t, "Token is expired", n.Recent()[len(n.Recent())-1].Message)
}

func TestExpireIgnoresStaleToken(t *testing.T) {
	api := apitest.New().On("POST", "/auth/login", loginEnvelope("old", "patient", map[string]any{"_id": "u1"}))
	store, n := newStore(t, api, storage.NewMemoryStorage())
	ctx := context.Background()
	require.True(t, store.Login(ctx, models.Credentials{}).Success)

	store.Logout(ctx)
	api.On("POST", "/auth/login", loginEnvelope("new", "admin", map[string]any{"_id": "u2"}))
	require.True(t, store.Login(ctx, models.Credentials{}).Success)
	notes := len(n.Recent())

	store.Expire("old", "jwt expired")
	st := store.Snapshot()
	assert.Equal(t, "new", st.Token)
	assert.Equal(t, models.RoleAdmin, st.Role)
	assert.Empty(t, st.Error)
	assert.Len(t, n.Recent(), notes)

	store.Expire("", "jwt expired")
	assert.True(t, store.IsAuthenticated())
}

func TestSlowUnauthorizedReplyKeepsNewerSession(t *testing.T) {
	arrived := make(chan string, 1)
	release := make(chan struct{})
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/private", func(c *gin.Context) {
		arrived <- c.GetHeader("Authorization")
		<-release
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "jwt expired"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	api := apitest.New().On("POST", "/auth/login", loginEnvelope("old", "patient", map[string]any{"_id": "u1"}))
	store, _ := newStore(t, api, storage.NewMemoryStorage())
	client := httpclient.New(httpclient.Config{BaseURL: srv.URL + "/api/v1"})
	client.SetTokenSource(store)
	client.OnUnauthorized(store.Expire)
	ctx := context.Background()

	require.True(t, store.Login(ctx, models.Credentials{}).Success)
	done := make(chan models.Envelope, 1)
	go func() { done <- client.Get(ctx, "/private", true) }()
	assert.Equal(t, "Bearer old", <-arrived)

	store.Logout(ctx)
	api.On("POST", "/auth/login", loginEnvelope("new", "admin", map[string]any{"_id": "u2"}))
	require.True(t, store.Login(ctx, models.Credentials{}).Success)

	close(release)
	env := <-done
	assert.Equal(t, http.StatusUnauthorized, env.Status)

	st := store.Snapshot()
	assert.Equal(t, "new", st.Token)
	assert.Equal(t, models.RoleAdmin, st.Role)
	assert.Empty(t, st.Error)
}

func TestTokenRoleUserStayPairedForAnySequence(t *testing.T) {
	user := models.UserProfile{"_id": "u1"}
	actions := []Action{
		{Type: LoginStart},
		{Type: LoginSuccess, User: user, Role: models.RoleDoctor, Token: "t"},
		{Type: LoginSuccess, User: user, Role: "", Token: "t"},
		{Type: LoginSuccess, User: nil, Role: models.RoleAdmin, Token: "t"},
		{Type: LoginFailure, Message: "x"},
		{Type: Logout},
		{Type: UpdateUser, User: user},
		{Type: RegisterStart},
		{Type: RegisterSuccess},
		{Type: RegisterFailure, Message: "y"},
		{Type: ClearError},
		{Type: SessionExpired, Message: "z"},
	}
	r := rand.New(rand.NewSource(42))
	var st State
	for i := 0; i < 2000; i++ {
		st = Reduce(st, actions[r.Intn(len(actions))])
		hasToken, hasRole, hasUser := st.Token != "", st.Role != "", st.User != nil
		require.True(t, hasToken == hasRole && hasRole == hasUser, "step %d: %+v", i, st)
	}
}

type failingStorage struct{ storage.Storage }

func (failingStorage) SetItem(string, string) error { return errors.New("disk full") }

func TestStorageErrorsDoNotReachCallers(t *testing.T) {
	api := apitest.New().On("POST", "/auth/login", loginEnvelope("t", "patient", map[string]any{"_id": "u1"}))
	store, _ := newStore(t, api, failingStorage{storage.NewMemoryStorage()})

	res := store.Login(context.Background(), models.Credentials{})
	assert.True(t, res.Success)
	assert.True(t, store.IsAuthenticated())
}

func TestStorageTokenSourceReadsEachCall(t *testing.T) {
	mem := storage.NewMemoryStorage()
	ts := StorageTokenSource{Storage: mem}
	assert.Empty(t, ts.Token())

	require.NoError(t, mem.SetItem(utils.StorageKeyToken, "fresh"))
	assert.Equal(t, "fresh", ts.Token())
}

func TestMirrorSyncWritesOnlyChangedFields(t *testing.T) {
	mem := storage.NewMemoryStorage()
	m := NewMirror(mem, nil)
	user := models.UserProfile{"_id": "u1"}

	m.Sync(State{}, State{Token: "t", Role: models.RoleAdmin, User: user})
	raw, _ := stored(t, mem, utils.StorageKeyUser)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "u1", decoded["_id"])

	require.NoError(t, mem.RemoveItem(utils.StorageKeyRole))
	m.Sync(State{Token: "t", Role: models.RoleAdmin, User: user}, State{Token: "t2", Role: models.RoleAdmin, User: user})
	_, ok := stored(t, mem, utils.StorageKeyRole)
	assert.False(t, ok, "unchanged role is not rewritten")
	token, _ := stored(t, mem, utils.StorageKeyToken)
	assert.Equal(t, "t2", token)
}
