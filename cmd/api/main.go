package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mirothedj/robocat/internal/catalog"
	"github.com/mirothedj/robocat/internal/config"
	"github.com/mirothedj/robocat/internal/handler"
	"github.com/mirothedj/robocat/internal/logger"
	"github.com/mirothedj/robocat/internal/middleware"
	"github.com/mirothedj/robocat/internal/repository"
	"github.com/mirothedj/robocat/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Build the lesson catalog: built-in lessons plus any packs from the
	// configured directory.
	lessons := catalog.Builtin()
	if dir := cfg.Catalog.LessonDir; dir != "" {
		loaded, err := catalog.LoadDir(dir)
		if err != nil {
			appLogger.Fatal("Failed to load lesson packs", zap.String("dir", dir), zap.Error(err))
		}
		lessons = append(lessons, loaded...)
	}
	cat, err := catalog.New(lessons)
	if err != nil {
		appLogger.Fatal("Invalid lesson catalog", zap.Error(err))
	}
	appLogger.Info("Lesson catalog ready", zap.Int("lessons", cat.Len()))

	// Initialize repository and services
	sessionRepository := repository.NewMemorySessionRepository()
	sessionService := service.NewSessionService(sessionRepository, cat, cfg)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")
	sessionHandler.RegisterRoutes(apiGroup)

	// Start server and wait for shutdown signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server exited", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
