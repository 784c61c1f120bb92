package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/gen/ent"
	"github.com/nordstaff/consultant-matcher/gen/ent/candidate"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/utils"
)

type CandidateRepository interface {
	Create(ctx context.Context, in *entity.Candidate) (*entity.Candidate, error)
	Update(ctx context.Context, in *entity.Candidate) (*entity.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Candidate, error)
	ListActive(ctx context.Context, limit int) ([]*entity.Candidate, error)
	// Deactivate soft-deletes; the row stays while matches reference it.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type candidateRepository struct {
	client *ent.Client
	logger *zap.Logger
}

func NewCandidateRepository(client *ent.Client, logger *zap.Logger) CandidateRepository {
	return &candidateRepository{client: client, logger: logger}
}

func (r *candidateRepository) Create(ctx context.Context, in *entity.Candidate) (*entity.Candidate, error) {
	builder := r.client.Candidate.Create().
		SetName(in.Name).
		SetSkills(in.Skills).
		SetLanguages(in.Languages).
		SetActive(in.Active).
		SetNillableAvailabilityFrom(in.AvailabilityFrom)
	applyCandidateStrings(builder, in)

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create candidate", zap.String("name", in.Name), zap.Error(err))
		return nil, err
	}
	return utils.ToCandidate(rec), nil
}

func (r *candidateRepository) Update(ctx context.Context, in *entity.Candidate) (*entity.Candidate, error) {
	builder := r.client.Candidate.UpdateOneID(in.ID).
		SetName(in.Name).
		SetSkills(in.Skills).
		SetLanguages(in.Languages).
		SetActive(in.Active).
		SetNillableAvailabilityFrom(in.AvailabilityFrom)
	if in.Role != "" {
		builder = builder.SetRole(in.Role)
	}
	if in.Seniority != "" {
		builder = builder.SetSeniority(in.Seniority)
	}
	if in.LocationCity != "" {
		builder = builder.SetLocationCity(in.LocationCity)
	}
	if in.LocationCountry != "" {
		builder = builder.SetLocationCountry(in.LocationCountry)
	}
	if in.OnsiteMode != "" {
		builder = builder.SetOnsiteMode(candidate.OnsiteMode(in.OnsiteMode))
	}
	if in.Notes != "" {
		builder = builder.SetNotes(in.Notes)
	}
	if in.ProfileURL != "" {
		builder = builder.SetProfileURL(in.ProfileURL)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update candidate", zap.String("id", in.ID.String()), zap.Error(err))
		return nil, err
	}
	return utils.ToCandidate(rec), nil
}

func applyCandidateStrings(builder *ent.CandidateCreate, in *entity.Candidate) {
	if in.Role != "" {
		builder.SetRole(in.Role)
	}
	if in.Seniority != "" {
		builder.SetSeniority(in.Seniority)
	}
	if in.LocationCity != "" {
		builder.SetLocationCity(in.LocationCity)
	}
	if in.LocationCountry != "" {
		builder.SetLocationCountry(in.LocationCountry)
	}
	if in.OnsiteMode != "" {
		builder.SetOnsiteMode(candidate.OnsiteMode(in.OnsiteMode))
	}
	if in.Notes != "" {
		builder.SetNotes(in.Notes)
	}
	if in.ProfileURL != "" {
		builder.SetProfileURL(in.ProfileURL)
	}
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error) {
	rec, err := r.client.Candidate.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToCandidate(rec), nil
}

func (r *candidateRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Candidate, error) {
	recs, err := r.client.Candidate.Query().Where(candidate.IDIn(ids...)).All(ctx)
	if err != nil {
		r.logger.Error("failed to load candidates", zap.Int("requested", len(ids)), zap.Error(err))
		return nil, err
	}
	out := make([]*entity.Candidate, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToCandidate(rec)
	}
	return out, nil
}

func (r *candidateRepository) ListActive(ctx context.Context, limit int) ([]*entity.Candidate, error) {
	q := r.client.Candidate.Query().
		Where(candidate.Active(true)).
		Order(ent.Desc(candidate.FieldUpdatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	recs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list active candidates", zap.Error(err))
		return nil, err
	}
	out := make([]*entity.Candidate, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToCandidate(rec)
	}
	return out, nil
}

func (r *candidateRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := r.client.Candidate.UpdateOneID(id).SetActive(false).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to deactivate candidate", zap.String("id", id.String()), zap.Error(err))
	}
	return err
}
