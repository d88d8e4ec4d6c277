package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether a cached token is a JWT whose exp claim
// has elapsed. Tokens are otherwise opaque: anything that does not parse
// as a JWT, or parses without an exp claim, is kept as-is.
func tokenExpired(raw string, now time.Time) bool {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
