package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"mycloth-atelier/internal/adapters/http/middleware"
	"mycloth-atelier/internal/adapters/http/routes"
	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/adapters/persistence/models"
	"mycloth-atelier/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	_ "mycloth-atelier/docs" // Swagger docs
)

// @title MyCloth Atelier API
// @version 1.0
// @description Storefront, cart and admin API for the MyCloth atelier.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@mycloth.in

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Remote mode: connect MySQL and migrate
	var db *gorm.DB
	if cfg.StorageMode == config.StorageRemote {
		db, err = config.ConnectDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer config.CloseDatabase()

		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("❌ Failed to auto migrate: %v", err)
		}
	}

	// The local store always opens: it holds the catalog in local mode
	// and the per-session client state in both modes.
	store, err := localstore.Open(cfg.Local.Path)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}
	defer store.Close()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MyCloth Atelier API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass stores and cfg for dependency injection)
	cronService := routes.Setup(app, db, store, cfg)

	// Scheduled housekeeping (low-stock digest, token purge)
	cronService.Start()
	defer cronService.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s, STORAGE: %s]", cfg.Port, cfg.AppMode, cfg.StorageMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
