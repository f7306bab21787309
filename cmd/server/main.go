package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shareit-platform/service-sharing/internal/application"
	"github.com/shareit-platform/service-sharing/internal/config"
	"github.com/shareit-platform/service-sharing/internal/database"
	"github.com/shareit-platform/service-sharing/internal/events"
	"github.com/shareit-platform/service-sharing/internal/handler"
	"github.com/shareit-platform/service-sharing/internal/logger"
	"github.com/shareit-platform/service-sharing/internal/metrics"
	"github.com/shareit-platform/service-sharing/internal/middleware"
	"github.com/shareit-platform/service-sharing/internal/repository"
)

const serviceName = "service-sharing"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-sharing",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DB.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if err := db.AutoMigrate(
		&repository.UserModel{},
		&repository.RequestModel{},
		&repository.ItemModel{},
		&repository.BookingModel{},
		&repository.CommentModel{},
	); err != nil {
		log.Fatal("failed to run auto-migration", zap.Error(err))
	}
	log.Info("database migration completed")

	// Initialize event publisher
	var publisher application.EventPublisher = application.NopPublisher()
	if cfg.Kafka.Enabled() {
		producer := events.NewProducer(cfg.Kafka.Brokers, serviceName, log)
		defer func() { _ = producer.Close() }()
		publisher = producer
	} else {
		log.Info("no kafka brokers configured, event publishing disabled")
	}

	// Initialize repositories
	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	requestRepo := repository.NewGormRequestRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)

	// Initialize application services
	userService := application.NewUserService(userRepo, log)
	itemService := application.NewItemService(itemRepo, commentRepo, userRepo, requestRepo, bookingRepo, log)
	requestService := application.NewRequestService(requestRepo, itemRepo, userRepo, log)
	bookingService := application.NewBookingService(bookingRepo, userRepo, itemRepo, publisher, log)

	// Initialize HTTP handlers
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)
	requestHandler := handler.NewRequestHandler(requestService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())
	router.Use(metrics.Middleware())

	// Register health check and metrics routes
	metrics.Register()
	healthHandler := handler.NewHealthHandler(db)
	healthHandler.RegisterRoutes(router)
	router.GET("/metrics", metrics.Handler())

	// Register routes
	userHandler.RegisterRoutes(&router.RouterGroup)
	itemHandler.RegisterRoutes(&router.RouterGroup)
	requestHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-sharing...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-sharing stopped")
}
