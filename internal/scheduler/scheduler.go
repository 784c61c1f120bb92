// Package scheduler runs the periodic background passes: retrying vector
// generation for records whose embedding is still missing, and optionally
// re-scoring recent jobs so stored matches track profile and pool changes.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/embedding"
	"github.com/nordstaff/consultant-matcher/internal/matching"
)

const reembedBatchSize = 200

type Scheduler struct {
	cron        *cron.Cron
	embedder    *embedding.Service
	matcher     *matching.Service
	reembedSpec string
	rescoreSpec string
	logger      *zap.Logger
}

// New builds the scheduler. matcher may be nil (or rescoreSpec empty) to
// disable the periodic rescore pass.
func New(embedder *embedding.Service, matcher *matching.Service, reembedSpec, rescoreSpec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		embedder:    embedder,
		matcher:     matcher,
		reembedSpec: reembedSpec,
		rescoreSpec: rescoreSpec,
		logger:      logger,
	}
}

// Start registers the background jobs and starts the cron loop. The re-embed
// pass also runs once immediately so records stranded by a previous crash are
// retried without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.reembedSpec, func() {
		s.runReembed(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc reembed: %w", err)
	}
	if s.matcher != nil && s.rescoreSpec != "" {
		_, err = s.cron.AddFunc(s.rescoreSpec, func() {
			s.runRescore(ctx)
		})
		if err != nil {
			return fmt.Errorf("cron.AddFunc rescore: %w", err)
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.String("reembed", s.reembedSpec),
		zap.String("rescore", s.rescoreSpec))

	go s.runReembed(ctx)
	return nil
}

// Stop halts the cron loop and waits for a running pass to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runReembed(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := s.embedder.ReembedMissing(ctx, reembedBatchSize)
	if err != nil {
		s.logger.Error("re-embed pass failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("re-embed pass complete", zap.Int("embedded", n))
	}
}

// runRescore re-runs matching for recent jobs with the default settings.
// Upserts are idempotent, so the pass only refreshes scores and fills in
// pairs that earlier runs missed.
func (s *Scheduler) runRescore(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	res, err := s.matcher.Run(ctx, matching.RunRequest{})
	if err != nil {
		s.logger.Error("rescore pass failed", zap.Error(err))
		return
	}
	s.logger.Info("rescore pass complete",
		zap.Int("scored", res.Scored),
		zap.Int("stored", res.Stored),
		zap.Int("failed", res.Failed))
}
