package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/types"
)

// SessionCookie is the cookie carrying the session token
const SessionCookie = "cookie_session"

// UserKey is the locals key of the session claims
const UserKey = "user"

// sessionToken reads the session cookie, then a bearer token
func sessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookie); token != "" {
		return token
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// Auth requires a valid session holding one of roles; no roles admits any signed in user
func Auth(sessions *services.Sessions, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c)
		if token == "" {
			return types.NewError(fiber.StatusUnauthorized, "auth.session",
				"Session cookie %q or bearer token required", SessionCookie)
		}

		claims, err := sessions.ValidateSession(token, roles...)
		if errors.Is(err, services.ErrForbidden) {
			return types.NewError(fiber.StatusForbidden, "auth.role", "%v", err)
		}
		if err != nil {
			return types.NewError(fiber.StatusUnauthorized, "auth.session", "Invalid session")
		}

		c.Locals(UserKey, claims)
		return c.Next()
	}
}

// Optional sets the session claims when a valid session is present and never rejects
func Optional(sessions *services.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := sessionToken(c); token != "" {
			if claims, err := sessions.ValidateSession(token); err == nil {
				c.Locals(UserKey, claims)
			}
		}
		return c.Next()
	}
}

// Claims returns the session claims set by Auth or Optional, nil for anonymous requests
func Claims(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(UserKey).(*services.Claims)
	return claims
}
