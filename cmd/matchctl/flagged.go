package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var flaggedCmd = &cobra.Command{
	Use:   "flagged",
	Short: "List organizations flagged for manual alias review",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFlagged(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(flaggedCmd)
}

func runFlagged(ctx context.Context) error {
	logger := newLogger()
	defer logger.Sync()

	_, deps, cleanup, err := openDeps(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	orgs, err := deps.Orgs.ListFlagged(ctx)
	if err != nil {
		return err
	}
	if len(orgs) == 0 {
		fmt.Println("no organizations flagged for review")
		return nil
	}
	for _, o := range orgs {
		fmt.Printf("%s  %-8s %s  aliases=%v\n", o.ID, o.Kind, o.NormalizedName, o.Aliases)
	}
	return nil
}
