package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"storefront-bff/internal/handler"
	"storefront-bff/internal/medusa"
	"storefront-bff/internal/middleware"
	"storefront-bff/internal/service"
	"storefront-bff/pkg/cache"
	"storefront-bff/pkg/config"
	"storefront-bff/pkg/logger"
	"storefront-bff/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("storefront-bff")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting storefront BFF...", zap.String("environment", cfg.Server.Env))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Platform gateway with request metrics wired in
	gw := medusa.NewClient(cfg.Medusa.BackendURL, cfg.Medusa.PublishableKey, cfg.Medusa.RequestTimeout, log)
	gw.OnResult = prometheus.ObservePlatformRequest

	handlers := handler.Handlers{
		Products:    handler.NewProductHandler(service.NewProductService(gw, log)),
		Cart:        handler.NewCartHandler(service.NewCartService(gw, log)),
		Checkout:    handler.NewCheckoutHandler(service.NewCheckoutService(gw, log)),
		Auth:        handler.NewAuthHandler(service.NewAuthService(gw, log)),
		Orders:      handler.NewOrderHandler(service.NewOrderService(gw, log)),
		Categories:  handler.NewCategoryHandler(service.NewCategoryService(gw, log)),
		Collections: handler.NewCollectionHandler(service.NewCollectionService(gw, log)),
		Inventory:   handler.NewInventoryHandler(service.NewInventoryService(gw, log)),
		Store:       handler.NewStoreHandler(service.NewStoreService(gw, log)),
		Health:      handler.NewHealthHandler(gw),
	}

	// Optional Redis-backed rate limiting on the storefront routes
	var rateLimit echo.MiddlewareFunc
	if cfg.RateLimit.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RateLimit.RedisAddr)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		rateLimit = middleware.RateLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Period)
		log.Info("Rate limiting enabled",
			zap.Int("max_requests", cfg.RateLimit.MaxRequests),
			zap.Duration("period", cfg.RateLimit.Period))
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Validator = handler.NewValidator()
	e.Binder = &handler.StrictBinder{}

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.Origins,
	}))
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(middleware.MetricsMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handler.RegisterRoutes(e, cfg.Server.APIPrefix, handlers, rateLimit)

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
