package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jruiz-dev/trendyshop/internal/auth"
	"github.com/jruiz-dev/trendyshop/internal/catalog"
	"github.com/jruiz-dev/trendyshop/internal/cli"
	"github.com/jruiz-dev/trendyshop/internal/config"
	"github.com/jruiz-dev/trendyshop/internal/directory"
	"github.com/jruiz-dev/trendyshop/internal/logging"
	"github.com/jruiz-dev/trendyshop/internal/store"
	"github.com/jruiz-dev/trendyshop/internal/store/memory"
	"github.com/jruiz-dev/trendyshop/internal/store/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "trendyshop:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Logs go to stderr so they never interleave with the menu on stdout.
	logger := logging.NewJSONLogger(os.Stderr, parseLevel(cfg.LogLevel))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var st store.Store
	switch cfg.StoreBackend {
	case config.BackendMemory:
		st = memory.New()
	case config.BackendPostgres:
		pg, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := postgres.Migrate(pg.DB()); err != nil {
			return err
		}
		st = pg
	default:
		return fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	provider := auth.NewLocal(st, logger, []byte(cfg.SecretKey), cfg.SessionTokenValidity)

	dir := directory.New(provider, st, logger, directory.AdminConfig{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
		Surname:  cfg.AdminSurname,
		Age:      cfg.AdminAge,
	})
	if err := dir.BootstrapAdmin(ctx); err != nil {
		return fmt.Errorf("bootstrapping admin account: %w", err)
	}

	cat := catalog.New(st, logger)

	cli.NewApp(dir, cat, logger).Run(ctx)
	return nil
}

func parseLevel(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}
