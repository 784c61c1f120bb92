package embedding

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/common"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/repository"
)

// Service owns embedding rows on behalf of their Job/Candidate owner: it
// prepares text, runs the configured backend, and overwrites the single
// vector row per owner.
type Service struct {
	embedder   Embedder
	embeddings repository.EmbeddingRepository
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	logger     *zap.Logger
}

// BuildEmbedder constructs the deployment's single backend from config. The
// choice is made once here; nothing downstream branches on the backend.
func BuildEmbedder(cfg common.EmbeddingConfig, rdb *redis.Client, cacheTTL time.Duration, logger *zap.Logger) Embedder {
	var e Embedder
	switch cfg.Backend {
	case "openai":
		e = NewOpenAIEmbedder(OpenAIConfig{
			APIBase: cfg.APIBase,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}, logger)
	default:
		e = NewLocalEmbedder(cfg.Dimension)
	}
	e = NewPadded(e, cfg.Dimension)
	if rdb != nil {
		e = NewCachedEmbedder(e, rdb, cacheTTL, logger)
	}
	return e
}

func NewService(
	embedder Embedder,
	embeddings repository.EmbeddingRepository,
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		embedder:   embedder,
		embeddings: embeddings,
		jobs:       jobs,
		candidates: candidates,
		logger:     logger,
	}
}

// EmbedJob generates and stores the vector for a job. A failure is logged
// and returned, but callers persist the job regardless; the scheduled
// re-embedding pass retries owners left without a vector.
func (s *Service) EmbedJob(ctx context.Context, job *entity.Job) error {
	text := PrepareJobText(job)
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		s.logger.Warn("job embedding generation failed",
			zap.String("job_id", job.ID.String()), zap.Error(err))
		return err
	}
	return s.embeddings.Upsert(ctx, repository.OwnerJob, job.ID, vec, s.embedder.ModelVersion())
}

// EmbedCandidate generates and stores the vector for a candidate profile.
func (s *Service) EmbedCandidate(ctx context.Context, c *entity.Candidate) error {
	text := PrepareCandidateText(c)
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		s.logger.Warn("candidate embedding generation failed",
			zap.String("candidate_id", c.ID.String()), zap.Error(err))
		return err
	}
	return s.embeddings.Upsert(ctx, repository.OwnerCandidate, c.ID, vec, s.embedder.ModelVersion())
}

// ReembedMissing retries vector generation for owners whose previous attempt
// failed. Per-owner failures are logged and skipped.
func (s *Service) ReembedMissing(ctx context.Context, limit int) (embedded int, err error) {
	jobIDs, err := s.embeddings.ListMissing(ctx, repository.OwnerJob, limit)
	if err != nil {
		return 0, err
	}
	for _, id := range jobIDs {
		job, err := s.jobs.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("reembed: failed to load job", zap.String("job_id", id.String()), zap.Error(err))
			continue
		}
		if err := s.EmbedJob(ctx, job); err == nil {
			embedded++
		}
	}

	candIDs, err := s.embeddings.ListMissing(ctx, repository.OwnerCandidate, limit)
	if err != nil {
		return embedded, err
	}
	for _, id := range candIDs {
		c, err := s.candidates.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("reembed: failed to load candidate", zap.String("candidate_id", id.String()), zap.Error(err))
			continue
		}
		if err := s.EmbedCandidate(ctx, c); err == nil {
			embedded++
		}
	}

	s.logger.Info("re-embedding pass complete",
		zap.Int("jobs_missing", len(jobIDs)),
		zap.Int("candidates_missing", len(candIDs)),
		zap.Int("embedded", embedded))
	return embedded, nil
}
