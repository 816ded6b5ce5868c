package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/assetbridge/investment-platform/internal/api"
	"github.com/assetbridge/investment-platform/internal/core/service"
	"github.com/assetbridge/investment-platform/internal/infrastructure/config"
	mongostore "github.com/assetbridge/investment-platform/internal/infrastructure/db/mongo"
	redisstore "github.com/assetbridge/investment-platform/internal/infrastructure/db/redis"
	"github.com/assetbridge/investment-platform/internal/infrastructure/email"
	"github.com/assetbridge/investment-platform/internal/infrastructure/housekeeping"
	"github.com/assetbridge/investment-platform/internal/infrastructure/queue"
	"github.com/assetbridge/investment-platform/internal/infrastructure/records"
	"github.com/assetbridge/investment-platform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "investment-platform",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Durable stores ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("record store connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("session store connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	store := mongostore.NewRecordStore(db)
	users := records.NewUserRepository(store, records.SeedUsers(), log)
	credentials := records.NewCredentialRepository(store, log)
	tokens := records.NewResetTokenRepository(store, log)
	investmentRepo := records.NewInvestmentRepository(store, log)
	notificationRepo := records.NewNotificationRepository(store, log)
	sessionStore := redisstore.NewSessionStore(rdb)

	if err := records.SeedCredentials(ctx, credentials); err != nil {
		log.Fatal().Err(err).Msg("credential seeding failed")
	}

	// --- Outbound email ---
	mailer := email.NewLogMailer(cfg.PublicBaseURL, log)
	dispatcher := queue.NewDispatcher(cfg.MailWorkers, mailer, log)
	dispatcher.Start(ctx)

	// --- Services ---
	sessions := service.NewSessionService(sessionStore, users, cfg.JWTSecret, cfg.SessionTTL, log)
	auth, err := service.NewAuthService(users, credentials, tokens, sessions, dispatcher, cfg.DefaultPassword, log)
	if err != nil {
		log.Fatal().Err(err).Msg("auth service initialisation failed")
	}
	notifications := service.NewNotificationService(notificationRepo, log)
	investments := service.NewInvestmentService(investmentRepo, notifications, log)

	// --- Housekeeping ---
	sweeper := housekeeping.NewSweeper(tokens, cfg.SweepSchedule, log)
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("sweeper start failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Auth:          auth,
		Sessions:      sessions,
		Investments:   investments,
		Notifications: notifications,
		Mongo:         db,
		Redis:         rdb,
		JWTSecret:     cfg.JWTSecret,
		Log:           log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("investment platform listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
