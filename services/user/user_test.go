package user

import (
	"context"
	"testing"

	"medicare/httpclient"
	"medicare/httpclient/apitest"
	"medicare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileAlwaysSendsForm(t *testing.T) {
	api := apitest.New().On("PUT", "/users/u1", apitest.OK(map[string]any{"_id": "u1", "name": "Bo"}, "updated"))

	res := NewUserService(api).UpdateProfile(context.Background(), "u1", ProfileUpdate{
		Fields: map[string]any{"name": "Bo", "bloodType": "O+"},
	})
	require.True(t, res.Success)
	assert.Equal(t, "Bo", res.Data.Name())

	call := api.Last()
	assert.True(t, call.AuthRequired)
	form, ok := call.Body.(*httpclient.Form)
	require.True(t, ok)
	name, _ := form.Value("name")
	assert.Equal(t, "Bo", name)
}

func TestBuildFormStringifiesLists(t *testing.T) {
	form, err := BuildForm(map[string]any{
		"qualifications": []map[string]string{{"degree": "MBBS"}},
		"ticketPrice":    50,
		"skip":           nil,
	}, nil)
	require.NoError(t, err)

	q, ok := form.Value("qualifications")
	require.True(t, ok)
	assert.JSONEq(t, `[{"degree":"MBBS"}]`, q)
	price, _ := form.Value("ticketPrice")
	assert.Equal(t, "50", price)
	_, ok = form.Value("skip")
	assert.False(t, ok)
}

func TestDeleteProfileRequiresApproval(t *testing.T) {
	api := apitest.New().On("DELETE", "/users/u1", apitest.OK(nil, "Deletion request submitted"))

	res := NewUserService(api).DeleteProfile(context.Background(), "u1")
	assert.True(t, res.Success)
	assert.True(t, res.RequiresApproval)
}

func TestUpdatePassword(t *testing.T) {
	api := apitest.New().On("PUT", "/password", apitest.Failure("Current password is incorrect", 400))

	res := NewUserService(api).UpdatePassword(context.Background(), models.PasswordUpdate{CurrentPassword: "a", NewPassword: "B1bbbbbb"})
	assert.False(t, res.Success)
	assert.Equal(t, "Current password is incorrect", res.Message)
	assert.IsType(t, models.PasswordUpdate{}, api.Last().Body)
}
