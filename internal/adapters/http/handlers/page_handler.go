package handlers

import (
	"nbcfdc-lending/internal/adapters/http/middleware"
	"nbcfdc-lending/internal/adapters/store"
	"nbcfdc-lending/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the protected portal pages
type PageHandler struct {
	identities    store.IdentityDirectory
	beneficiaries store.BeneficiaryDirectory
	sessions      *store.SessionStore
}

// NewPageHandler creates a new page handler
func NewPageHandler(
	identities store.IdentityDirectory,
	beneficiaries store.BeneficiaryDirectory,
	sessions *store.SessionStore,
) *PageHandler {
	return &PageHandler{
		identities:    identities,
		beneficiaries: beneficiaries,
		sessions:      sessions,
	}
}

// Index routes the client to the dashboard or the login page depending on
// whether a session exists
func (h *PageHandler) Index(c *fiber.Ctx) error {
	if _, ok := h.sessions.Current(c); ok {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Dashboard renders the role-specific dashboard
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return h.renderProfilePage(c, "dashboard")
}

// CreditScore renders the beneficiary credit score breakdown
func (h *PageHandler) CreditScore(c *fiber.Ctx) error {
	return h.renderProfilePage(c, "credit_score")
}

// NewLoan renders the loan application page
func (h *PageHandler) NewLoan(c *fiber.Ctx) error {
	return h.renderProfilePage(c, "new_loan")
}

// LoanStatus renders the loan status page
func (h *PageHandler) LoanStatus(c *fiber.Ctx) error {
	return h.renderProfilePage(c, "loan_status")
}

// IncomeVerification renders the income verification page. Unlike the other
// pages it carries no profile record, only the identity header fields.
func (h *PageHandler) IncomeVerification(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	return c.Render("income_verification", fiber.Map{
		"Name":   sess.Name,
		"UserID": sess.ExternalID,
	})
}

// AdminAnalytics renders the full beneficiary directory for admins
func (h *PageHandler) AdminAnalytics(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	return c.Render("admin_analytics", fiber.Map{
		"Name":          sess.Name,
		"Beneficiaries": h.beneficiaries.List(),
	})
}

// renderProfilePage renders a protected page with the session identity and the
// full user record. A session whose username is missing from the directory is
// tolerated and rendered with an empty record.
func (h *PageHandler) renderProfilePage(c *fiber.Ctx, template string) error {
	sess := middleware.SessionFromCtx(c)

	user, err := h.identities.GetByUsername(sess.Username)
	if err != nil {
		user = &domain.UserRecord{}
	}

	return c.Render(template, fiber.Map{
		"Name":     sess.Name,
		"UserID":   sess.ExternalID,
		"Role":     string(sess.Role),
		"UserData": user,
	})
}
