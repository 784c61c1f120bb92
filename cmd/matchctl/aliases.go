package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/canonical"
)

var aliasesFile string

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Seed the skill/role alias vocabulary from a YAML file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAliases(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(aliasesCmd)

	aliasesCmd.Flags().StringVar(&aliasesFile, "file", "", "term vocabulary YAML file")
	aliasesCmd.MarkFlagRequired("file")
}

func runAliases(ctx context.Context) error {
	logger := newLogger()
	defer logger.Sync()

	seeds, err := canonical.LoadAliasSeeds(aliasesFile)
	if err != nil {
		return err
	}

	_, deps, cleanup, err := openDeps(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	resolver := canonical.NewResolver(deps.Orgs, deps.Terms, logger)
	written, err := resolver.SeedAliases(ctx, seeds)
	if err != nil {
		return err
	}
	logger.Info("alias vocabulary seeded",
		zap.String("file", aliasesFile),
		zap.Int("written", written))
	fmt.Printf("seeded %d alias rows\n", written)
	return nil
}
