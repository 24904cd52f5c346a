package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	live := signed(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(time.Hour).Unix()})
	expired := signed(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(-time.Hour).Unix()})
	noExp := signed(t, jwt.MapClaims{"sub": "u1"})

	assert.False(t, TokenExpired(live, now))
	assert.True(t, TokenExpired(expired, now))
	assert.False(t, TokenExpired(noExp, now))
	assert.False(t, TokenExpired("opaque-token", now))
}

func TestExtractIDFromToken(t *testing.T) {
	assert.Equal(t, "u1", ExtractIDFromToken(signed(t, jwt.MapClaims{"sub": "u1"})))
	assert.Equal(t, "u2", ExtractIDFromToken(signed(t, jwt.MapClaims{"id": "u2"})))
	assert.Equal(t, "", ExtractIDFromToken("not-a-jwt"))
}

func TestFormatDoctorName(t *testing.T) {
	assert.Equal(t, "", FormatDoctorName(""))
	assert.Equal(t, "Dr. Jane Doe", FormatDoctorName("Jane Doe"))
	assert.Equal(t, "dr. house", FormatDoctorName("dr. house"))
	assert.Equal(t, "Dr. Who", FormatDoctorName("Dr. Who"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 5, 2024", FormatDate("2024-03-05"))
	assert.Equal(t, "Mar 5, 2024", FormatDate("2024-03-05T10:00:00Z"))
	assert.Equal(t, "Mar 5, 2024", FormatDate("03-05-2024"))
	assert.Equal(t, "someday", FormatDate("someday"))
}
