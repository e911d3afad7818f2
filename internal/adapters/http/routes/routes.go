package routes

import (
	"nbcfdc-lending/internal/adapters/http/handlers"
	"nbcfdc-lending/internal/adapters/http/middleware"
	"nbcfdc-lending/internal/adapters/store"
	"nbcfdc-lending/internal/config"
	"nbcfdc-lending/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application. The seeded directories are
// injected here; everything downstream treats them as immutable.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	identities store.IdentityDirectory,
	beneficiaries store.BeneficiaryDirectory,
) {
	// Session store
	sessions := store.NewSessionStore(cfg)

	// Initialize services
	authService := services.NewAuthService(identities)
	loanService := services.NewLoanService()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, sessions)
	pageHandler := handlers.NewPageHandler(identities, beneficiaries, sessions)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Guards
	requireSession := middleware.RequireSession(sessions)
	requireSessionAPI := middleware.RequireSessionAPI(sessions)

	// Root & health
	app.Get("/", pageHandler.Index)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth pages (public)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", middleware.LoginRateLimiter(), authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Protected pages
	app.Get("/dashboard", requireSession, pageHandler.Dashboard)
	app.Get("/credit-score", requireSession, pageHandler.CreditScore)
	app.Get("/new-loan", requireSession, pageHandler.NewLoan)
	app.Get("/loan-status", requireSession, pageHandler.LoanStatus)
	app.Get("/income-verification", requireSession, pageHandler.IncomeVerification)

	// Admin-only pages
	app.Get("/admin-analytics", middleware.RequireAdminSession(sessions), pageHandler.AdminAnalytics)

	// Loan simulation API
	api := app.Group("/api", requireSessionAPI)
	api.Post("/submit-loan", loanHandler.SubmitLoan)
	api.Post("/repeat-loan", loanHandler.RepeatLoan)
}
