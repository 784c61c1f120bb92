package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nordstaff/consultant-matcher/internal/repository"
)

var dbhealthCmd = &cobra.Command{
	Use:   "dbhealth",
	Short: "Ping the database and report connectivity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDBHealth(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(dbhealthCmd)
}

func runDBHealth(ctx context.Context) error {
	logger := newLogger()
	defer logger.Sync()

	_, deps, cleanup, err := openDeps(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := repository.HealthCheck(ctx, deps.Pool, 3*time.Second); err != nil {
		return fmt.Errorf("database health failed: %w", err)
	}
	fmt.Println("database health OK")
	return nil
}
