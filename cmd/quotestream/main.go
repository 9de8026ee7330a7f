package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/quotestream/internal/bootstrap"
	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/postgresql"
	"github.com/muhammadchandra19/quotestream/pkg/redis"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
		logger.WithInitialFields(
			logger.NewField("app", cfg.App.Name),
			logger.NewField("environment", cfg.App.Environment),
		),
	)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer l.Sync()

	pgClient, err := postgresql.NewClient(ctx, cfg.PostgreSQL)
	if err != nil {
		l.Error(err, logger.NewField("action", "connect postgres"))
		os.Exit(1)
	}

	var redisClient redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(l, &cfg.Redis.Config)
		if err := redisClient.Connect(ctx); err != nil {
			l.Error(err, logger.NewField("action", "connect redis"))
			pgClient.Close()
			os.Exit(1)
		}
	}

	var b bootstrap.Bootstrap
	app := b.Init(bootstrap.BootstrapConfig{
		Config:     cfg,
		PostgreSQL: pgClient,
		Redis:      redisClient,
		Logger:     l,
	})

	serverErr, err := app.Start(ctx)
	if err != nil {
		l.Error(err, logger.NewField("action", "start"))
		_ = app.Shutdown(ctx)
		os.Exit(1)
	}

	l.Info("quotestream started",
		logger.NewField("port", cfg.App.Port),
		logger.NewField("redis", cfg.Redis.Enabled),
		logger.NewField("kafka", cfg.Kafka.Enabled),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		l.Info("shutting down", logger.NewField("signal", sig.String()))
	case err, ok := <-serverErr:
		if ok && err != nil {
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := app.Shutdown(shutdownCtx); err != nil {
		exitCode = 1
	}

	l.Info("quotestream stopped")
	if exitCode != 0 {
		_ = l.Sync()
		os.Exit(exitCode)
	}
}
