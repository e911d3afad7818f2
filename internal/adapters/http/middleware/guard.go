package middleware

import (
	"nbcfdc-lending/internal/core/domain"
	"nbcfdc-lending/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// sessionLocalsKey is where the guard stores the session for handlers
const sessionLocalsKey = "session"

// SessionReader resolves the requesting client's session, if any
type SessionReader interface {
	Current(c *fiber.Ctx) (*domain.Session, bool)
}

// RequireSession guards protected pages. Without a valid session the client
// is sent back to the login page rather than shown an error.
func RequireSession(sessions SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := sessions.Current(c)
		if !ok {
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals(sessionLocalsKey, sess)
		return c.Next()
	}
}

// RequireAdminSession guards admin-only pages. Anything short of an admin
// session, including no session at all, is silently downgraded to a dashboard
// redirect, never surfaced as a 403.
func RequireAdminSession(sessions SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := sessions.Current(c)
		if !ok || !sess.IsAdmin() {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}

		c.Locals(sessionLocalsKey, sess)
		return c.Next()
	}
}

// RequireSessionAPI guards JSON endpoints. API clients are not browsers:
// a missing session is a structured 401, not a redirect.
func RequireSessionAPI(sessions SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := sessions.Current(c)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		c.Locals(sessionLocalsKey, sess)
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by a guard, or nil
func SessionFromCtx(c *fiber.Ctx) *domain.Session {
	sess, _ := c.Locals(sessionLocalsKey).(*domain.Session)
	return sess
}
