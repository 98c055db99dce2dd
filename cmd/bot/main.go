package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/lectures_bot/internal/app"
	"github.com/Freeeeeet/lectures_bot/internal/config"
	"github.com/Freeeeeet/lectures_bot/internal/controller"
	"github.com/Freeeeeet/lectures_bot/internal/remote"
	"github.com/Freeeeeet/lectures_bot/internal/repository"
	"github.com/Freeeeeet/lectures_bot/internal/scraper"
	"github.com/Freeeeeet/lectures_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireToken(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to init schedule storage", zap.Error(err))
	}
	defer closeRepo()

	opts := []service.Option{}
	if cfg.ShareURL != "" {
		opts = append(opts, service.WithShare(remote.NewShareResolver("", logger), cfg.ShareURL))
	}

	scheduleService := service.NewScheduleService(
		repo,
		scraper.NewFetcher(cfg.SourceURL, nil, logger),
		cfg.Groups,
		logger,
		opts...,
	)
	if err := scheduleService.Load(ctx); err != nil {
		logger.Fatal("Failed to load schedule", zap.Error(err))
	}

	if cfg.RefreshCron != "" {
		scheduler, err := app.NewScheduler(ctx, cfg.RefreshCron, scheduleService, logger)
		if err != nil {
			logger.Fatal("Failed to create refresh scheduler", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, scheduleService, cfg.IsAdmin, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	logger.Sugar().Infow("Starting lectures bot",
		"environment", cfg.Environment,
		"groups", cfg.Groups,
		"storage", storageName(cfg))

	botController.Start(ctx)
	logger.Info("Bot stopped")
}

// newRepository выбирает хранилище: Postgres при заданном DB_DSN, иначе файл
func newRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.DocumentRepository, func(), error) {
	if cfg.DBDSN == "" {
		return repository.NewFileRepository(afero.NewOsFs(), cfg.ScheduleFile), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return repository.NewSnapshotRepository(pool, cfg.SourceURL), pool.Close, nil
}

func storageName(cfg *config.Config) string {
	if cfg.DBDSN != "" {
		return "postgres"
	}
	return cfg.ScheduleFile
}
