package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <candidate-id>",
	Short: "Remove a candidate from the active matching pool",
	Long: "Deactivate soft-deletes a candidate: the profile and its stored\n" +
		"matches stay, but future matching runs skip it.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeactivate(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(deactivateCmd)
}

func runDeactivate(ctx context.Context, raw string) error {
	logger := newLogger()
	defer logger.Sync()

	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid candidate id %q: %w", raw, err)
	}

	_, deps, cleanup, err := openDeps(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := deps.Candidates.Deactivate(ctx, id); err != nil {
		return err
	}
	fmt.Printf("candidate %s deactivated\n", id)
	return nil
}
