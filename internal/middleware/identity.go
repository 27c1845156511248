package middleware

// identity.go holds the accessors for the identity JWTAuth and
// OptionalAuth store on the echo context.  Handlers read the caller
// through these instead of touching the context keys.

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventistan/internal/utils"
)

const (
	keyUserID = "user_id"
	keyRole   = "role"
)

// UserID returns the authenticated user's id.  ok is false for guests.
func UserID(c echo.Context) (id string, ok bool) {
	id, ok = c.Get(keyUserID).(string)
	return id, ok && id != ""
}

// Role returns the authenticated user's role claim, or "".
func Role(c echo.Context) string {
	role, _ := c.Get(keyRole).(string)
	return role
}

// subject is the identity used in rate limit keys.  Middleware that runs
// before JWTAuth sees no identity on the context, so the bearer token is
// verified here as well.  Missing or invalid tokens count as "guest".
func subject(c echo.Context, secret string) string {
	if id, ok := UserID(c); ok {
		return id
	}
	if raw, ok := bearer(c); ok && secret != "" {
		if claims, err := utils.ParseAccessToken(secret, raw); err == nil {
			return claims.UserID
		}
	}
	return "guest"
}
