package handlers

import (
	"errors"
	"strings"

	"nbcfdc-lending/internal/adapters/store"
	"nbcfdc-lending/internal/core/domain"
	"nbcfdc-lending/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the login and logout pages
type AuthHandler struct {
	authService *services.AuthService
	sessions    *store.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, sessions *store.SessionStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// LoginRequest represents login credentials, from a browser form or JSON body
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// LoginForm renders the login form
// An already authenticated client is sent straight to the dashboard.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if _, ok := h.sessions.Current(c); ok {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	return c.Render("login", fiber.Map{})
}

// Login validates credentials and creates the session
// A failed attempt re-renders the form with an inline error; this is a page,
// not an API, so the response stays 200.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if _, ok := h.sessions.Current(c); ok {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Render("login", fiber.Map{
			"Error": "Invalid credentials",
		})
	}

	sess, err := h.authService.Authenticate(strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Render("login", fiber.Map{
				"Error": "Invalid credentials",
			})
		}
		return err
	}

	if err := h.sessions.Create(c, sess); err != nil {
		return err
	}

	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout clears the session and returns to the login page. Idempotent:
// logging out without a session is a no-op with the same redirect.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Clear(c); err != nil {
		return err
	}

	return c.Redirect("/login", fiber.StatusFound)
}
