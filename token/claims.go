package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// jwtExpiry reads the exp claim of a JWT access token without verifying it.
// Opaque tokens report false.
func jwtExpiry(raw string) (time.Time, bool) {
	parsed, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
