package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/common"
	"github.com/nordstaff/consultant-matcher/internal/repository"
)

const app = "matchctl"

var debug bool

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "matchctl operates the consultant matcher from the command line",
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
}

func newLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("creating a logger: %v", err)
	}
	return logger
}

// openDeps loads config and opens database connections shared by the
// subcommands. Callers must call the returned cleanup.
func openDeps(ctx context.Context, logger *zap.Logger) (*common.Config, *repository.Deps, func(), error) {
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}

	entClient, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}

	deps := repository.NewDeps(entClient, pool, logger)
	cleanup := func() { repository.Close(entClient, pool, logger) }
	return cfg, deps, cleanup, nil
}
