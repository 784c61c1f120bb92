package repository

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/gen/ent"
	"github.com/nordstaff/consultant-matcher/gen/ent/match"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/utils"
)

// MatchFilter restricts a ranked match query.
type MatchFilter struct {
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
	MinScore    float64
	MaxResults  int
}

type MatchRepository interface {
	// Upsert inserts or overwrites the row for the (job, candidate) pair.
	// Scoring is deterministic given the same inputs, so concurrent writers
	// resolving by last-writer-wins is safe.
	Upsert(ctx context.Context, jobID, candidateID uuid.UUID, score float64, reasoning entity.Breakdown) (*entity.Match, error)
	// Query returns matches ordered by score descending, ties broken by job
	// posted_at descending then candidate updated_at descending.
	Query(ctx context.Context, filter MatchFilter) ([]*entity.Match, error)
}

type matchRepository struct {
	client *ent.Client
	logger *zap.Logger
}

func NewMatchRepository(client *ent.Client, logger *zap.Logger) MatchRepository {
	return &matchRepository{client: client, logger: logger}
}

func (r *matchRepository) Upsert(ctx context.Context, jobID, candidateID uuid.UUID, score float64, reasoning entity.Breakdown) (*entity.Match, error) {
	id, err := r.client.Match.Create().
		SetJobID(jobID).
		SetCandidateID(candidateID).
		SetScore(score).
		SetReasoning(reasoning).
		SetCreatedAt(time.Now()).
		OnConflictColumns(match.FieldJobID, match.FieldCandidateID).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		r.logger.Error("failed to upsert match",
			zap.String("job_id", jobID.String()),
			zap.String("candidate_id", candidateID.String()),
			zap.Error(err))
		return nil, err
	}
	rec, err := r.client.Match.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToMatch(rec), nil
}

func (r *matchRepository) Query(ctx context.Context, filter MatchFilter) ([]*entity.Match, error) {
	q := r.client.Match.Query().
		Where(match.ScoreGTE(filter.MinScore)).
		WithJob().
		WithCandidate()
	if filter.JobID != nil {
		q = q.Where(match.JobID(*filter.JobID))
	}
	if filter.CandidateID != nil {
		q = q.Where(match.CandidateID(*filter.CandidateID))
	}

	recs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to query matches", zap.Error(err))
		return nil, err
	}

	out := make([]*entity.Match, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToMatch(rec)
	}
	SortMatches(out)

	if filter.MaxResults > 0 && len(out) > filter.MaxResults {
		out = out[:filter.MaxResults]
	}
	return out, nil
}

// SortMatches orders by score descending, then more recently posted job,
// then more recently updated candidate profile. The ordering is total, so
// repeated runs over the same data produce the same ranking.
func SortMatches(ms []*entity.Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Score != ms[j].Score {
			return ms[i].Score > ms[j].Score
		}
		pi, pj := timeOrZero(ms[i].JobPostedAt), timeOrZero(ms[j].JobPostedAt)
		if !pi.Equal(pj) {
			return pi.After(pj)
		}
		ui, uj := timeOrZero(ms[i].CandidateUpdatedAt), timeOrZero(ms[j].CandidateUpdatedAt)
		if !ui.Equal(uj) {
			return ui.After(uj)
		}
		// Final fallback keeps the order total across identical timestamps.
		if ms[i].JobID != ms[j].JobID {
			return ms[i].JobID.String() < ms[j].JobID.String()
		}
		return ms[i].CandidateID.String() < ms[j].CandidateID.String()
	})
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
