package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/talentsift/resume-analyzer/internal/config"
	"github.com/talentsift/resume-analyzer/internal/handlers"
	"github.com/talentsift/resume-analyzer/internal/logger"
	"github.com/talentsift/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("config loaded", zap.String("env", cfg.Server.Env))

	// Initialize Gemini gateway
	ctx := context.Background()
	geminiService, err := services.NewGeminiService(
		ctx,
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.MaxOutputTokens,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("failed to initialize gemini gateway", zap.Error(err))
	}
	zapLogger.Info("gemini gateway initialized", zap.String("model", cfg.Gemini.Model))

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		services.WithRetries(geminiService, cfg.Analyzer.RetryMaxAttempts),
		cfg.Analyzer.Concurrency,
		zapLogger,
	)
	zapLogger.Info("analyzer initialized", zap.Int("concurrency", cfg.Analyzer.Concurrency))

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analyzerService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/aspects", analysisHandler.HandleAspects)
	api.Post("/evaluate", analysisHandler.HandleEvaluate)
	api.Post("/analyze", analysisHandler.HandleAnalyze)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/aspects",
				"POST /api/v1/evaluate",
				"POST /api/v1/analyze",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLogger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
