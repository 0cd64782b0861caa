// @title ExamPrep API
// @version 1.0
// @description Generates printable study aids (MCQs with answer keys, short notes and tutorials) as PDF documents.
// @contact.name API Support
// @license.name MIT
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "exam-prep/cmd/api/docs"
	"exam-prep/internal/adapter/studygen"
	"exam-prep/internal/config"
	"exam-prep/internal/document"
	"exam-prep/internal/handler"
	"exam-prep/internal/logger"
	"exam-prep/internal/middleware"
	"exam-prep/internal/preview"
	"exam-prep/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Initialize LLM
	appLogger.Info("Initializing LLM client",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))
	llm, err := studygen.NewModel(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator, err := studygen.NewLLMStudyGenerator(llm, cfg.LLM.Temperature, appLogger.Named("studygen"))
	if err != nil {
		appLogger.Fatal("Failed to create study generator", zap.Error(err))
	}

	// Initialize services
	studyService := service.NewStudyService(generator, document.Options{Author: cfg.Document.Author}, appLogger.Named("study"))

	// Initialize handlers
	studyHandler := handler.NewStudyHandler(studyService, preview.NewRenderer(preview.DefaultLimit))
	validationMiddleware := middleware.NewValidationMiddleware()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "exam-prep",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		ExposeHeaders: "Content-Disposition," + middleware.RequestIDHeader,
		MaxAge:        300,
	}))

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", studyHandler.Health)

	// API group
	studyHandler.RegisterRoutes(app.Group("/api"), validationMiddleware)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
