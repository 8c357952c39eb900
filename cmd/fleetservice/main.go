package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fleet-service/internal/app"
	"fleet-service/internal/config"
	"fleet-service/internal/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const envFilePath = ".env"

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

func main() {
	envErr := godotenv.Load(envFilePath)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("env_file_not_loaded", zap.String("path", envFilePath))
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("startup_failed", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http_server_failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutdown_requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("server_exited")
}
