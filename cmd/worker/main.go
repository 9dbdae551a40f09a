package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/khoahotran/cardlink/adapters/event"
	"github.com/khoahotran/cardlink/adapters/media_storage"
	"github.com/khoahotran/cardlink/internal/application/usecase/photo"
	"github.com/khoahotran/cardlink/internal/config"
	"github.com/khoahotran/cardlink/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting CardLink worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	processPhotoEventUC := photo.NewProcessPhotoEventUseCase(uploader, appLogger)

	consumer := event.NewAccountEventConsumer(cfg, appLogger)
	defer consumer.Close()

	if err := consumer.Run(ctx, processPhotoEventUC.Execute); err != nil {
		appLogger.Error("Worker stopped with error", err)
	}
	appLogger.Info("Worker stopped")
}
