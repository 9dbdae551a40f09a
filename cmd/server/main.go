package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/adapters/event"
	httpAdapter "github.com/khoahotran/cardlink/adapters/http"
	"github.com/khoahotran/cardlink/adapters/media_storage"
	"github.com/khoahotran/cardlink/adapters/persistence"
	"github.com/khoahotran/cardlink/internal/application/usecase/accounts"
	authUC "github.com/khoahotran/cardlink/internal/application/usecase/auth"
	"github.com/khoahotran/cardlink/internal/application/usecase/card"
	"github.com/khoahotran/cardlink/internal/application/usecase/customlinktype"
	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/application/usecase/photo"
	profileUC "github.com/khoahotran/cardlink/internal/application/usecase/profile"
	"github.com/khoahotran/cardlink/internal/application/usecase/profilelink"
	"github.com/khoahotran/cardlink/internal/application/usecase/vcard"
	"github.com/khoahotran/cardlink/internal/config"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
	"github.com/khoahotran/cardlink/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting CardLink API server", zap.String("env", cfg.App.Env))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "cardlink-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", err)
		}
	}()

	// Infrastructure
	dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Repositories and services
	accountRepo := persistence.NewPostgresAccountRepo(dbPool, appLogger)
	profileCache := persistence.NewRedisProfileCache(redisClient, cfg.Redis.ProfileCacheTTL)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan).
		WithRefreshSecret(cfg.Auth.RefreshSecret, cfg.Auth.RefreshTokenLifespan)
	exec := mutation.NewExecutor(accountRepo, profileCache, kafkaClient, appLogger)

	// Use cases and handlers
	handlers := httpAdapter.Handlers{
		Auth: httpAdapter.NewAuthHandler(
			authUC.NewLoginUseCase(accountRepo, jwtSvc, appLogger),
			authUC.NewRefreshTokenUseCase(accountRepo, jwtSvc, appLogger),
		),
		Account: httpAdapter.NewAccountHandler(
			accounts.NewGetAccountUseCase(accountRepo, appLogger),
			accounts.NewRegisterAccountUseCase(accountRepo, appLogger),
			accounts.NewUpdateAccountUseCase(exec, appLogger),
			card.NewCardUseCase(exec, appLogger),
			customlinktype.NewCustomLinkTypeUseCase(exec, appLogger),
		),
		Profile: httpAdapter.NewProfileHandler(
			profileUC.NewProfileUseCase(exec, appLogger),
			profileUC.NewGetPublicProfileUseCase(accountRepo, profileCache, appLogger),
			appLogger,
		),
		ProfileLink: httpAdapter.NewProfileLinkHandler(profilelink.NewProfileLinkUseCase(exec, appLogger), appLogger),
		VCard:       httpAdapter.NewVCardHandler(vcard.NewVCardUseCase(exec, appLogger)),
		Photo: httpAdapter.NewPhotoHandler(
			photo.NewUploadPhotoUseCase(accountRepo, exec, uploader, appLogger),
			photo.NewReplacePhotoUseCase(accountRepo, exec, uploader, appLogger),
			photo.NewDeletePhotoUseCase(exec, appLogger),
			appLogger,
		),
	}

	router := httpAdapter.NewRouter(handlers, jwtSvc, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
