package routes

import (
	"context"
	"log"
	"time"

	"mycloth-atelier/internal/adapters/http/handlers"
	"mycloth-atelier/internal/adapters/http/middleware"
	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/config"
	"mycloth-atelier/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// cacheMaxAge is the public cache window for catalog reads
const cacheMaxAge = 60 * time.Second

// Setup configures all routes for the application. The storage mode is
// resolved here exactly once: db backs the repositories in remote mode
// (and is nil otherwise), store always backs the client state.
func Setup(app *fiber.App, db *gorm.DB, store *localstore.Store, cfg *config.Config) *services.CronService {
	// Pick the repository implementations for this run
	var (
		productRepo repositories.ProductRepository
		userRepo    repositories.UserRepository
		staffRepo   repositories.StaffRepository
		tokenRepo   repositories.TokenRepository
	)
	if cfg.StorageMode == config.StorageRemote {
		productRepo = repositories.NewProductRepository(db)
		userRepo = repositories.NewUserRepository(db)
		staffRepo = repositories.NewStaffRepository(db)
		tokenRepo = repositories.NewTokenRepository(db)
		log.Println("✅ Repositories bound to remote store")
	} else {
		productRepo = localstore.NewProductStore(store)
		userRepo = localstore.NewUserStore(store)
		staffRepo = localstore.NewStaffStore(store)
		log.Println("✅ Repositories bound to local store")
	}

	// Client state lives in the local store in both modes
	clientState := localstore.NewClientState(store)

	// Initialize services
	catalogService := services.NewCatalogService(productRepo)
	if err := catalogService.InitInventory(context.Background()); err != nil {
		log.Printf("⚠️ Warning: Failed to seed catalog: %v", err)
	}
	cartService := services.NewCartService(productRepo, clientState)
	staffService := services.NewStaffService(staffRepo)
	authService := services.NewAuthService(userRepo, tokenRepo, clientState, cfg)
	analyticsService := services.NewAnalyticsService()
	dashboardService := services.NewDashboardService(productRepo, staffRepo, analyticsService)
	insightService := services.NewInsightService(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	staffHandler := handlers.NewStaffHandler(staffService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, analyticsService, catalogService)
	insightHandler := handlers.NewInsightHandler(insightService, catalogService)
	preferencesHandler := handlers.NewPreferencesHandler(clientState)

	// Session key for cart, cached login and theme
	app.Use(middleware.SessionKey(cfg.Cookie.Secure))

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	requireAuth := middleware.AuthMiddleware(cfg, clientState, tokenRepo)

	// Auth routes (public, stricter rate limit)
	authRoutes := apiV1.Group("/auth", middleware.NoCacheHeaders())
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/signup", middleware.AuthRateLimiter(), authHandler.Signup)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", authHandler.Me)

	// Catalog routes: reads public, writes admin only
	productRoutes := apiV1.Group("/products")
	productRoutes.Get("/", middleware.CacheControl(cacheMaxAge), catalogHandler.List)
	productRoutes.Get("/:id", middleware.CacheControl(cacheMaxAge), catalogHandler.Get)
	productRoutes.Get("/:id/insight", insightHandler.ProductInsight)
	productRoutes.Post("/", requireAuth, middleware.AdminOnly(), catalogHandler.Create)
	productRoutes.Put("/:id", requireAuth, middleware.AdminOnly(), catalogHandler.Update)
	productRoutes.Delete("/:id", requireAuth, middleware.AdminOnly(), catalogHandler.Delete)

	// Cart routes (per-session, public)
	cartRoutes := apiV1.Group("/cart", middleware.NoCacheHeaders())
	cartRoutes.Get("/", cartHandler.Get)
	cartRoutes.Delete("/", cartHandler.Clear)
	cartRoutes.Post("/items", cartHandler.Add)
	cartRoutes.Put("/items/:id", cartHandler.UpdateQuantity)
	cartRoutes.Delete("/items/:id", cartHandler.Remove)

	// Staff routes (admin only)
	staffRoutes := apiV1.Group("/staff", requireAuth, middleware.AdminOnly())
	staffRoutes.Get("/", staffHandler.List)
	staffRoutes.Post("/", staffHandler.Hire)
	staffRoutes.Delete("/:id", staffHandler.Dismiss)

	// Dashboard routes (admin only)
	dashboardRoutes := apiV1.Group("/dashboard", requireAuth, middleware.AdminOnly())
	dashboardRoutes.Get("/", dashboardHandler.Overview)
	dashboardRoutes.Get("/summary", dashboardHandler.Summary)

	// Preferences routes (per-session, public)
	prefRoutes := apiV1.Group("/preferences", middleware.NoCacheHeaders())
	prefRoutes.Get("/theme", preferencesHandler.GetTheme)
	prefRoutes.Put("/theme", preferencesHandler.SetTheme)

	// Background jobs share the same repositories
	return services.NewCronService(productRepo, tokenRepo)
}
