package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// ErrNotJWT is returned when a bearer token is not a decodable JWT. The
// backend is free to issue opaque tokens, so callers usually treat this as
// "expiry unknown" rather than as a failure.
var ErrNotJWT = errors.New("token is not a JWT")

// TokenClaims decodes the claims of a JWT without verifying its signature.
// The client never holds the signing secret; the claims are only used to
// avoid presenting a token the server is certain to reject.
func TokenClaims(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrNotJWT
	}
	return claims, nil
}

// TokenExpired reports whether the token carries an exp claim earlier than now.
// Tokens without an exp claim, or that are not JWTs, are reported as live.
func TokenExpired(tokenString string, now time.Time) bool {
	claims, err := TokenClaims(tokenString)
	if err != nil {
		return false
	}
	if _, ok := claims["exp"]; !ok {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), true)
}

// ExtractIDFromToken returns the unverified subject claim, or "" when absent.
func ExtractIDFromToken(tokenString string) string {
	claims, err := TokenClaims(tokenString)
	if err != nil {
		return ""
	}
	for _, key := range []string{"sub", "id", "userId"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
