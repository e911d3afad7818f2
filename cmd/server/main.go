package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"nbcfdc-lending/internal/adapters/http/middleware"
	"nbcfdc-lending/internal/adapters/http/routes"
	"nbcfdc-lending/internal/adapters/store"
	"nbcfdc-lending/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	_ "nbcfdc-lending/docs" // Swagger docs
)

// @title NBCFDC Digital Lending Platform API
// @version 1.0
// @description Demo lending platform with simulated instant loan approval.

// @host localhost:5000
// @BasePath /
// @schemes http

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Seed the read-only directories
	identities := store.NewIdentityDirectory(config.SeedIdentities())
	beneficiaries := store.NewBeneficiaryDirectory(config.SeedBeneficiaries())

	// Template engine (the rendering collaborator)
	engine := html.New(cfg.ViewsDir, ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "NBCFDC Lending Platform v1.0",
		Views:        engine,
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass directories and cfg for dependency injection)
	routes.Setup(app, cfg, identities, beneficiaries)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Println("NBCFDC Digital Lending Platform starting...")
	log.Println("Demo credentials:")
	log.Printf("   Beneficiary - username: %s, password: %s", config.DemoBeneficiaryUsername, config.DemoBeneficiaryPassword)
	log.Printf("   Admin - username: %s, password: %s", config.DemoAdminUsername, config.DemoAdminPassword)
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
