// Package routes defines the API routing configuration.
// It wires repositories, services and handlers and mounts them on the app.
package routes

import (
	"context"
	"time"

	"quicksend/internal/config"
	"quicksend/internal/handlers"
	"quicksend/internal/middleware"
	"quicksend/internal/repositories"
	"quicksend/internal/repositories/cache"
	"quicksend/internal/services/user"
	"quicksend/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps carries the long-lived handles the routes are built from. Cache may
// be nil when Redis is disabled.
type Deps struct {
	DB     *gorm.DB
	Cache  *cache.CacheService
	Config config.Config
	Logger *zap.Logger
}

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	User   *handlers.UserHandler
	Wallet *handlers.WalletHandler
	Health *handlers.HealthHandler
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, d Deps) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(d.DB, d.Cache, d.Logger.Named("users"))
	walletRepo := repositories.NewWalletRepository(d.DB, d.Cache, d.Logger.Named("wallets"))

	// Initialize services in dependency order
	walletService := wallet.NewService(
		walletRepo,
		wallet.WalletConfig{DefaultCurrency: d.Config.WalletCurrency},
		d.Logger.Named("wallet"),
	)
	userService := user.NewService(userRepo, walletService, d.Logger.Named("user"))

	var cachePing handlers.Pinger
	if d.Cache != nil {
		cachePing = d.Cache.Ping
	}
	dbPing := func(ctx context.Context) error { return repositories.PingDB(ctx, d.DB) }

	RegisterRoutes(app, Handlers{
		User:   handlers.NewUserHandler(userService, walletService),
		Wallet: handlers.NewWalletHandler(walletService),
		Health: handlers.NewHealthHandler(dbPing, cachePing),
	}, d.Config.RegisterRateLimit)
}

// RegisterRoutes mounts the handlers. Registration is limited to
// registerLimit requests per IP per minute.
func RegisterRoutes(app *fiber.App, h Handlers, registerLimit int) {
	app.Get("/health", h.Health.HealthCheck)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/", middleware.RateLimit(registerLimit, time.Minute), h.User.RegisterUser)
	users.Get("/", h.User.ListUsers)
	users.Get("/:id", h.User.GetUser)
	users.Put("/:id", h.User.UpdateUser)
	users.Get("/:id/wallet", h.User.GetUserWallet)

	api.Get("/wallets/:id", h.Wallet.GetWallet)
}
