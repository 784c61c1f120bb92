package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/matching"
	"github.com/nordstaff/consultant-matcher/internal/scoring"
	"github.com/nordstaff/consultant-matcher/internal/search"
)

var (
	matchJobIDs    []string
	matchMinScore  float64
	matchMax       int
	matchProfile   string
	matchFilter    string
	matchExecutive bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score jobs against the active candidate pool and store the matches",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMatch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringSliceVar(&matchJobIDs, "job", nil, "job id to match (repeatable; default: recent jobs)")
	matchCmd.Flags().Float64Var(&matchMinScore, "min-score", 0, "minimum score to store (default: MATCH_MIN_SCORE)")
	matchCmd.Flags().IntVar(&matchMax, "max-results", 0, "cap on returned matches (default: MATCH_MAX_RESULTS)")
	matchCmd.Flags().StringVar(&matchProfile, "profile", "", "weight profile name (default: standard)")
	matchCmd.Flags().StringVar(&matchFilter, "filter", "", "named hard-filter set from the profiles file")
	matchCmd.Flags().BoolVar(&matchExecutive, "executive", false, "use the executive profile and its hard filters")
}

func runMatch(ctx context.Context) error {
	logger := newLogger()
	defer logger.Sync()

	cfg, deps, cleanup, err := openDeps(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	jobIDs := make([]uuid.UUID, 0, len(matchJobIDs))
	for _, raw := range matchJobIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid job id %q: %w", raw, err)
		}
		jobIDs = append(jobIDs, id)
	}

	profiles, err := scoring.LoadProfiles(cfg.Matching.ProfilesFile)
	if err != nil {
		return fmt.Errorf("loading weight profiles: %w", err)
	}
	filters, err := scoring.LoadFilters(cfg.Matching.ProfilesFile)
	if err != nil {
		return fmt.Errorf("loading filter sets: %w", err)
	}

	index := search.NewIndex(deps.Pool, logger)
	matcher := matching.NewService(deps.Jobs, deps.Candidates, deps.Embeddings, deps.Matches,
		index, nil, profiles, filters, cfg.Matching, logger)

	req := matching.RunRequest{
		JobIDs:     jobIDs,
		MinScore:   matchMinScore,
		MaxResults: matchMax,
		Profile:    matchProfile,
		FilterName: matchFilter,
	}
	if req.MinScore == 0 {
		req.MinScore = cfg.Matching.MinScore
	}
	if matchExecutive {
		req.Profile = "executive"
		req.FilterName = "executive"
	}

	result, err := matcher.Run(ctx, req)
	if err != nil {
		return err
	}

	logger.Info("matching complete",
		zap.Int("scored", result.Scored),
		zap.Int("stored", result.Stored),
		zap.Int("failed", result.Failed),
		zap.Int("excluded", result.Excluded))
	for _, m := range result.Matches {
		fmt.Printf("%.3f  job=%s candidate=%s  %s\n", m.Score, m.JobID, m.CandidateID, m.Reasoning.Summary)
	}
	return nil
}
