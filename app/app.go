// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"food-storefront/config"
	"food-storefront/db"
	"food-storefront/handler"
	"food-storefront/logger"
	"food-storefront/repository"
	"food-storefront/router"
	"food-storefront/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

// App holds the wired application.
type App struct {
	DB     *sql.DB
	Router http.Handler
}

// NewApp wires repositories, services and handlers around database. A nil
// redisClient disables caching.
func NewApp(database *sql.DB, redisClient *redis.Client) *App {
	var cache service.ICacheClient
	readiness := map[string]handler.Check{
		"postgres": database.PingContext,
	}
	if redisClient != nil {
		cache = redisClient
		readiness["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	userRepo := repository.NewUserRepository(database)
	tokenRepo := repository.NewTokenRepository(database)
	restaurantRepo := repository.NewRestaurantRepository(database)
	menuRepo := repository.NewMenuRepository(database)
	addressRepo := repository.NewAddressRepository(database)
	cartRepo := repository.NewCartRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	contactRepo := repository.NewContactRepository(database)

	authService := service.NewAuthService(userRepo, tokenRepo)
	restaurantService := service.NewRestaurantService(restaurantRepo, cache)
	menuService := service.NewMenuService(menuRepo, restaurantRepo, cache)
	addressService := service.NewAddressService(addressRepo)
	cartService := service.NewCartService(cartRepo, menuRepo)
	orderService := service.NewOrderService(database, cartRepo, addressRepo, orderRepo)
	contactService := service.NewContactService(contactRepo)

	r := router.NewRouter(router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Restaurant: handler.NewRestaurantHandler(restaurantService),
		Menu:       handler.NewMenuHandler(menuService),
		Address:    handler.NewAddressHandler(addressService),
		Cart:       handler.NewCartHandler(cartService),
		Order:      handler.NewOrderHandler(orderService),
		Contact:    handler.NewContactHandler(contactService),
		Readiness:  readiness,
	})

	return &App{DB: database, Router: r}
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")

	if config.AppConfig.JWT.SecretKey == "" {
		logger.Log.Fatal("jwt.secret_key must be set")
	}

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(db.DSN()); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.WithError(err).Warn("Redis unavailable, continuing without cache")
	} else {
		defer redisClient.Close()
	}

	application := NewApp(database, redisClient)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	timeout := config.AppConfig.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
