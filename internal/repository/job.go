package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/gen/ent"
	"github.com/nordstaff/consultant-matcher/gen/ent/job"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/utils"
)

type JobRepository interface {
	// Upsert inserts or overwrites the job row keyed by its external job_uid.
	Upsert(ctx context.Context, in *entity.Job) (*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Job, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Job, error)
}

type jobRepository struct {
	client *ent.Client
	logger *zap.Logger
}

func NewJobRepository(client *ent.Client, logger *zap.Logger) JobRepository {
	return &jobRepository{client: client, logger: logger}
}

func (r *jobRepository) Upsert(ctx context.Context, in *entity.Job) (*entity.Job, error) {
	builder := r.client.Job.Create().
		SetJobUID(in.JobUID).
		SetSource(in.Source).
		SetTitle(in.Title).
		SetURL(in.URL).
		SetSkills(in.Skills).
		SetLanguages(in.Languages).
		SetNillableStartDate(in.StartDate).
		SetNillablePostedAt(in.PostedAt).
		SetNillableCompanyID(in.CompanyID).
		SetNillableBrokerID(in.BrokerID)

	if in.Description != "" {
		builder = builder.SetDescription(in.Description)
	}
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
		builder = builder.SetOnsiteMode(job.OnsiteMode(in.OnsiteMode))
	}
	if in.Duration != "" {
		builder = builder.SetDuration(in.Duration)
	}
	if in.ETag != "" {
		builder = builder.SetEtag(in.ETag)
	}
	if in.LastModified != "" {
		builder = builder.SetLastModified(in.LastModified)
	}

	id, err := builder.
		OnConflictColumns(job.FieldJobUID).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		r.logger.Error("failed to upsert job", zap.String("job_uid", in.JobUID), zap.Error(err))
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	rec, err := r.client.Job.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToJob(rec), nil
}

func (r *jobRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Job, error) {
	recs, err := r.client.Job.Query().Where(job.IDIn(ids...)).All(ctx)
	if err != nil {
		r.logger.Error("failed to load jobs", zap.Int("requested", len(ids)), zap.Error(err))
		return nil, err
	}
	out := make([]*entity.Job, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToJob(rec)
	}
	return out, nil
}

func (r *jobRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Job, error) {
	recs, err := r.client.Job.Query().
		Order(ent.Desc(job.FieldScrapedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recent jobs", zap.Error(err))
		return nil, err
	}
	out := make([]*entity.Job, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToJob(rec)
	}
	return out, nil
}
