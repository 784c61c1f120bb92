// Package matching orchestrates the scoring pipeline: shortlist candidates
// via the similarity index, compute the multi-factor score per pair, and
// commit each result independently so an interrupted batch leaves only
// fully-committed pairs behind.
package matching

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nordstaff/consultant-matcher/internal/common"
	"github.com/nordstaff/consultant-matcher/internal/embedding"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/repository"
	"github.com/nordstaff/consultant-matcher/internal/scoring"
	"github.com/nordstaff/consultant-matcher/internal/search"
)

// RunRequest triggers matching for a set of jobs (or all recent ones when
// empty) against active candidates.
type RunRequest struct {
	JobIDs       []uuid.UUID
	CandidateIDs []uuid.UUID
	MinScore     float64
	MaxResults   int
	Profile      string
	// FilterName selects a configured hard-filter set. An explicit non-zero
	// Filter takes precedence over the named set.
	FilterName string
	Filter     scoring.Filter
}

// RunResult reports per-pair outcomes rather than all-or-nothing: one bad
// record never prevents unrelated matches from being stored.
type RunResult struct {
	Matches  []*entity.Match
	Scored   int
	Stored   int
	Failed   int
	Excluded int
}

// NearestSearcher is the slice of the similarity index the service needs.
type NearestSearcher interface {
	Nearest(ctx context.Context, owner repository.OwnerType, query []float32, k int) ([]search.Neighbor, error)
}

type Service struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	embeddings repository.EmbeddingRepository
	matches    repository.MatchRepository
	index      NearestSearcher
	embedder   *embedding.Service
	scorer     *scoring.Scorer
	profiles   map[string]scoring.WeightProfile
	filters    map[string]scoring.Filter
	cfg        common.MatchingConfig
	logger     *zap.Logger
}

func NewService(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	embeddings repository.EmbeddingRepository,
	matches repository.MatchRepository,
	index NearestSearcher,
	embedder *embedding.Service,
	profiles map[string]scoring.WeightProfile,
	filters map[string]scoring.Filter,
	cfg common.MatchingConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		jobs:       jobs,
		candidates: candidates,
		embeddings: embeddings,
		matches:    matches,
		index:      index,
		embedder:   embedder,
		scorer:     scoring.NewScorer(logger),
		profiles:   profiles,
		filters:    filters,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run scores the requested jobs against the candidate pool and upserts every
// pair at or above the threshold. Pairs commit one at a time; interrupting
// the batch between commits leaves durable, consistent state, and re-running
// it is idempotent.
func (s *Service) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	profile, ok := s.profiles[req.Profile]
	if req.Profile == "" {
		profile, ok = s.profiles["standard"]
	}
	if !ok {
		return nil, common.NewAppError("UNKNOWN_PROFILE",
			fmt.Sprintf("weight profile %q is not configured", req.Profile), common.ErrInvalidInput)
	}
	if req.MaxResults <= 0 {
		req.MaxResults = s.cfg.MaxResults
	}
	if req.FilterName != "" && req.Filter.IsZero() {
		named, ok := s.filters[req.FilterName]
		if !ok {
			return nil, common.NewAppError("UNKNOWN_FILTER",
				fmt.Sprintf("filter set %q is not configured", req.FilterName), common.ErrInvalidInput)
		}
		req.Filter = named
	}

	jobs, err := s.loadJobs(ctx, req.JobIDs)
	if err != nil {
		return nil, err
	}
	pool, err := s.loadCandidates(ctx, req.CandidateIDs)
	if err != nil {
		return nil, err
	}

	result := &RunResult{}
	for _, job := range jobs {
		if err := s.matchJob(ctx, job, pool, profile, req, result); err != nil {
			// Storage failures abort the batch; committed pairs stay valid
			// and the batch is safely retryable.
			return result, err
		}
	}

	repository.SortMatches(result.Matches)
	if len(result.Matches) > req.MaxResults {
		result.Matches = result.Matches[:req.MaxResults]
	}
	s.logger.Info("matching run complete",
		zap.Int("jobs", len(jobs)),
		zap.Int("scored", result.Scored),
		zap.Int("stored", result.Stored),
		zap.Int("failed", result.Failed),
		zap.Int("excluded", result.Excluded))
	return result, nil
}

func (s *Service) loadJobs(ctx context.Context, ids []uuid.UUID) ([]*entity.Job, error) {
	if len(ids) > 0 {
		return s.jobs.GetByIDs(ctx, ids)
	}
	return s.jobs.ListRecent(ctx, 100)
}

func (s *Service) loadCandidates(ctx context.Context, ids []uuid.UUID) ([]*entity.Candidate, error) {
	if len(ids) > 0 {
		return s.candidates.GetByIDs(ctx, ids)
	}
	return s.candidates.ListActive(ctx, 0)
}

func (s *Service) matchJob(ctx context.Context, job *entity.Job, pool []*entity.Candidate, profile scoring.WeightProfile, req RunRequest, result *RunResult) error {
	jobVec := s.jobVector(ctx, job)

	candidates := make([]*entity.Candidate, 0, len(pool))
	for _, c := range pool {
		if excluded, reason := req.Filter.Exclude(c); excluded {
			result.Excluded++
			s.logger.Debug("candidate excluded by filter",
				zap.String("candidate_id", c.ID.String()),
				zap.String("reason", reason))
			continue
		}
		candidates = append(candidates, c)
	}
	candidates = s.shortlist(ctx, jobVec, candidates)

	minScore := req.MinScore
	var mu sync.Mutex

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, c := range candidates {
		g.Go(func() error {
			bd, err := s.scorePair(gctx, job, c, jobVec, profile)
			mu.Lock()
			defer mu.Unlock()
			result.Scored++
			if err != nil {
				if !errors.Is(err, errPairScore) {
					return err
				}
				// A malformed pair is logged and skipped; the rest of the
				// batch continues.
				result.Failed++
				s.logger.Warn("pair scoring failed",
					zap.String("job_id", job.ID.String()),
					zap.String("candidate_id", c.ID.String()),
					zap.Error(err))
				return nil
			}
			if bd.Total < minScore {
				return nil
			}

			m, err := s.matches.Upsert(gctx, job.ID, c.ID, bd.Total, *bd)
			if err != nil {
				return err
			}
			m.JobPostedAt = job.PostedAt
			t := c.UpdatedAt
			m.CandidateUpdatedAt = &t
			result.Matches = append(result.Matches, m)
			result.Stored++
			return nil
		})
	}
	return g.Wait()
}

// jobVector returns the stored vector for the job, attempting one inline
// generation when absent. A missing vector is tolerated: the semantic factor
// is simply unavailable for the job's pairs.
func (s *Service) jobVector(ctx context.Context, job *entity.Job) []float32 {
	vec, err := s.embeddings.Get(ctx, repository.OwnerJob, job.ID)
	if err == nil {
		return vec
	}
	if !errors.Is(err, common.ErrNoEmbedding) {
		s.logger.Warn("failed to load job embedding", zap.String("job_id", job.ID.String()), zap.Error(err))
		return nil
	}
	if s.embedder == nil {
		return nil
	}
	if err := s.embedder.EmbedJob(ctx, job); err != nil {
		return nil
	}
	vec, err = s.embeddings.Get(ctx, repository.OwnerJob, job.ID)
	if err != nil {
		return nil
	}
	return vec
}

// shortlist narrows a large candidate pool to the nearest vectors. Without a
// job vector every candidate is scored; semantic similarity is handled as an
// unavailable factor downstream.
func (s *Service) shortlist(ctx context.Context, jobVec []float32, candidates []*entity.Candidate) []*entity.Candidate {
	if jobVec == nil || s.index == nil || s.cfg.ShortlistSize <= 0 || len(candidates) <= s.cfg.ShortlistSize {
		return candidates
	}
	neighbors, err := s.index.Nearest(ctx, repository.OwnerCandidate, jobVec, s.cfg.ShortlistSize)
	if err != nil {
		s.logger.Warn("shortlist query failed; scoring full pool", zap.Error(err))
		return candidates
	}
	keep := make(map[uuid.UUID]bool, len(neighbors))
	for _, n := range neighbors {
		keep[n.OwnerID] = true
	}
	out := make([]*entity.Candidate, 0, len(neighbors))
	for _, c := range candidates {
		if keep[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func (s *Service) scorePair(ctx context.Context, job *entity.Job, c *entity.Candidate, jobVec []float32, profile scoring.WeightProfile) (*entity.Breakdown, error) {
	in := scoring.PairInput{Job: job, Candidate: c}

	if jobVec != nil {
		candVec, err := s.embeddings.Get(ctx, repository.OwnerCandidate, c.ID)
		switch {
		case err == nil:
			if sim, ok := search.Cosine(jobVec, candVec); ok {
				in.Semantic = &sim
			}
		case errors.Is(err, common.ErrNoEmbedding):
			// semantic stays unavailable
		default:
			return nil, err
		}
	}

	bd, err := s.scorer.Score(profile, in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errPairScore, err)
	}
	return &bd, nil
}

// errPairScore marks failures confined to a single pair. Anything else that
// bubbles out of the worker (storage, cancellation) aborts the batch.
var errPairScore = errors.New("pair scoring")
