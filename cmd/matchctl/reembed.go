package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordstaff/consultant-matcher/internal/embedding"
)

var reembedLimit int

var reembedCmd = &cobra.Command{
	Use:   "reembed",
	Short: "Generate vectors for records whose embedding is missing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReembed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(reembedCmd)
	reembedCmd.Flags().IntVar(&reembedLimit, "limit", 200, "max records per owner type")
}

func runReembed(ctx context.Context) error {
	logger := newLogger()
	defer logger.Sync()

	cfg, deps, cleanup, err := openDeps(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	embedder := embedding.BuildEmbedder(cfg.Embedding, nil, 0, logger)
	svc := embedding.NewService(embedder, deps.Embeddings, deps.Jobs, deps.Candidates, logger)

	n, err := svc.ReembedMissing(ctx, reembedLimit)
	if err != nil {
		return err
	}
	fmt.Printf("embedded %d records\n", n)
	return nil
}
