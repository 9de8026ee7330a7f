package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/muhammadchandra19/quotestream/internal/infrastructure/postgresql/migrations"
	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/migration"
	"github.com/muhammadchandra19/quotestream/pkg/postgresql"
)

func main() {
	var (
		direction = flag.String("direction", "up", "up, down or status")
		steps     = flag.Int("steps", 0, "migrations to apply or revert (0 = all pending on up; down requires > 0)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
		logger.WithInitialFields(logger.NewField("service", cfg.App.Name+"-migrate")),
	)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if err := run(context.Background(), cfg, l, *direction, *steps); err != nil {
		l.Error(err, logger.NewField("direction", *direction))
		_ = l.Sync()
		os.Exit(1)
	}
	_ = l.Sync()
}

func run(ctx context.Context, cfg *config.Config, l logger.Interface, direction string, steps int) error {
	pgClient, err := postgresql.NewClient(ctx, cfg.PostgreSQL)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	runner := migration.NewRunner(pgClient, l, migrations.FS, migration.Config{})
	if err := runner.EnsureMigrationTable(ctx); err != nil {
		return err
	}

	switch direction {
	case "up":
		err = runner.MigrateUp(ctx, steps)
	case "down":
		err = runner.MigrateDown(ctx, steps)
	case "status":
		err = status(ctx, runner, l)
	default:
		return fmt.Errorf("unknown direction %q, use up, down or status", direction)
	}
	if err != nil {
		return err
	}

	l.Info("migration finished", logger.NewField("direction", direction), logger.NewField("database", pgClient.DatabaseName()))
	return nil
}

func status(ctx context.Context, runner *migration.Runner, l logger.Interface) error {
	all, err := runner.LoadMigrations()
	if err != nil {
		return err
	}
	applied, err := runner.AppliedMigrations(ctx)
	if err != nil {
		return err
	}

	for _, m := range all {
		l.Info("migration",
			logger.NewField("id", m.ID),
			logger.NewField("name", m.Name),
			logger.NewField("applied", applied[m.ID]),
		)
	}
	return nil
}
