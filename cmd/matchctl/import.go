package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordstaff/consultant-matcher/internal/canonical"
	"github.com/nordstaff/consultant-matcher/internal/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import <jobs.json>",
	Short: "Bulk-import job records from a JSON array file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(ctx context.Context, path string) error {
	logger := newLogger()
	defer logger.Sync()

	_, deps, cleanup, err := openDeps(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	resolver := canonical.NewResolver(deps.Orgs, deps.Terms, logger)
	// No queue: the reembed command or the daemon's scheduled pass generates
	// vectors for imported jobs.
	svc := ingest.NewService(deps.Jobs, deps.Candidates, resolver, nil, logger)

	results, stats, err := svc.IngestFromSource(ctx, ingest.NewJSONFileSource(path))
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != "" {
			fmt.Printf("REJECTED %s: %s\n", r.JobUID, r.Err)
		}
	}
	fmt.Printf("imported %d/%d (%d failed)\n", stats.Succeeded, stats.Total, stats.Failed)
	return nil
}
