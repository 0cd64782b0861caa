package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"exam-prep/internal/adapter/studygen"
	"exam-prep/internal/cli"
	"exam-prep/internal/config"
	"exam-prep/internal/document"
	"exam-prep/internal/logger"
	"exam-prep/internal/service"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so use fmt for this critical error
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return err
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return err
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Generation needs a working model; listing topics does not.
	var studyService service.StudyService
	var batchService service.BatchService
	if err := cfg.Validate(); err != nil {
		appLogger.Warn("LLM is not configured, only offline commands will work", zap.Error(err))
	} else {
		llm, err := studygen.NewModel(cfg.LLM)
		if err != nil {
			appLogger.Error("Failed to create LLM client", zap.Error(err))
			return err
		}
		generator, err := studygen.NewLLMStudyGenerator(llm, cfg.LLM.Temperature, appLogger.Named("studygen"))
		if err != nil {
			appLogger.Error("Failed to create study generator", zap.Error(err))
			return err
		}
		studyService = service.NewStudyService(generator, document.Options{Author: cfg.Document.Author}, appLogger.Named("study"))
		batchService = service.NewBatchService(studyService, appLogger.Named("batch"))
	}

	cli.SetServices(studyService, batchService, cfg.Document.OutputDir)
	return cli.Execute(ctx)
}
