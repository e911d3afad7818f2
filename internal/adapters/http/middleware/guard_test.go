package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nbcfdc-lending/internal/adapters/http/middleware"
	"nbcfdc-lending/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessions implements middleware.SessionReader without a real store
type stubSessions struct {
	sess *domain.Session
	ok   bool
}

func (s stubSessions) Current(c *fiber.Ctx) (*domain.Session, bool) {
	return s.sess, s.ok
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func TestRequireSession_NoSessionRedirectsToLogin(t *testing.T) {
	app := fiber.New()
	app.Get("/dashboard", middleware.RequireSession(stubSessions{}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := get(t, app, "/dashboard")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireSession_PassesThroughAndStoresSession(t *testing.T) {
	sessions := stubSessions{
		sess: &domain.Session{Username: "beneficiary", Role: domain.RoleBeneficiary, Name: "Rajesh Kumar"},
		ok:   true,
	}

	app := fiber.New()
	app.Get("/dashboard", middleware.RequireSession(sessions), func(c *fiber.Ctx) error {
		sess := middleware.SessionFromCtx(c)
		if sess == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(sess.Username)
	})

	resp := get(t, app, "/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdminSession_RedirectsNonAdmins(t *testing.T) {
	cases := []struct {
		name     string
		sessions stubSessions
	}{
		{"no session", stubSessions{}},
		{"beneficiary session", stubSessions{
			sess: &domain.Session{Username: "beneficiary", Role: domain.RoleBeneficiary},
			ok:   true,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/admin-analytics", middleware.RequireAdminSession(tc.sessions), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			resp := get(t, app, "/admin-analytics")
			assert.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
		})
	}
}

func TestRequireAdminSession_AllowsAdmin(t *testing.T) {
	sessions := stubSessions{
		sess: &domain.Session{Username: "admin", Role: domain.RoleAdmin},
		ok:   true,
	}

	app := fiber.New()
	app.Get("/admin-analytics", middleware.RequireAdminSession(sessions), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := get(t, app, "/admin-analytics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireSessionAPI_NoSessionReturns401JSON(t *testing.T) {
	app := fiber.New()
	app.Post("/api/submit-loan", middleware.RequireSessionAPI(stubSessions{}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/submit-loan", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": "Unauthorized"}, body)
}
