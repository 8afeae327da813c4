// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middleware after verification.
const (
	LocRawToken = "raw_token"
	LocUserID   = "user_id"
	LocUserName = "user_name"
)

// GetRawAccessToken returns the access token from:
// 1) cookie "access_token"
// 2) Locals("raw_token") set by the middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetUserID returns the authenticated user id, empty when unauthenticated.
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserID).(string); ok {
		return v
	}
	return ""
}
