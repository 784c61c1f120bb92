package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/canonical"
	"github.com/nordstaff/consultant-matcher/internal/common"
	"github.com/nordstaff/consultant-matcher/internal/embedding"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/repository"
)

type Service struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	resolver   *canonical.Resolver
	queue      *embedding.Queue
	logger     *zap.Logger
}

func NewService(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	resolver *canonical.Resolver,
	queue *embedding.Queue,
	logger *zap.Logger,
) *Service {
	return &Service{
		jobs:       jobs,
		candidates: candidates,
		resolver:   resolver,
		queue:      queue,
		logger:     logger,
	}
}

// IngestJob validates, canonicalizes and upserts a single posting, then
// queues embedding generation. Re-ingesting the same job_uid updates the
// existing row.
func (s *Service) IngestJob(ctx context.Context, raw RawJob) (*entity.Job, error) {
	if err := ValidateJob(raw); err != nil {
		return nil, common.NewAppError("INVALID_JOB", err.Error(), common.ErrInvalidInput)
	}
	mode, ok := entity.ParseOnsiteMode(raw.OnsiteMode)
	if !ok {
		return nil, common.NewAppError("INVALID_JOB", "unknown onsite_mode", common.ErrInvalidInput)
	}

	job := &entity.Job{
		JobUID:          raw.JobUID,
		Source:          raw.Source,
		Title:           raw.Title,
		Description:     raw.Description,
		Skills:          s.resolver.CanonicalizeSkills(ctx, raw.Skills),
		Role:            s.resolver.ResolveRole(ctx, raw.Role),
		Seniority:       raw.Seniority,
		Languages:       canonical.NormalizeTerms(raw.Languages),
		LocationCity:    raw.LocationCity,
		LocationCountry: raw.LocationCountry,
		OnsiteMode:      mode,
		Duration:        raw.Duration,
		StartDate:       raw.StartDate,
		URL:             raw.URL,
		PostedAt:        raw.PostedAt,
		ETag:            raw.ETag,
		LastModified:    raw.LastModified,
		ScrapedAt:       time.Now().UTC(),
	}

	if org := s.resolveOrg(ctx, entity.OrgKindCompany, raw.CompanyName); org != nil {
		job.CompanyID = &org.ID
	}
	if org := s.resolveOrg(ctx, entity.OrgKindBroker, raw.BrokerName); org != nil {
		job.BrokerID = &org.ID
	}

	stored, err := s.jobs.Upsert(ctx, job)
	if err != nil {
		return nil, err
	}
	s.enqueue(ctx, repository.OwnerJob, stored.ID.String(), embedding.Task{
		Owner:       repository.OwnerJob,
		OwnerID:     stored.ID,
		SubmittedAt: time.Now().UTC(),
	})
	return stored, nil
}

// IngestCandidate validates, canonicalizes and stores a consultant profile.
// A record carrying the ID of an existing candidate updates that profile and
// returns it to the active pool.
func (s *Service) IngestCandidate(ctx context.Context, raw RawCandidate) (*entity.Candidate, error) {
	if err := ValidateCandidate(raw); err != nil {
		return nil, common.NewAppError("INVALID_CANDIDATE", err.Error(), common.ErrInvalidInput)
	}
	mode, ok := entity.ParseOnsiteMode(raw.OnsiteMode)
	if !ok {
		return nil, common.NewAppError("INVALID_CANDIDATE", "unknown onsite_mode", common.ErrInvalidInput)
	}
	var id uuid.UUID
	if raw.ID != "" {
		var err error
		id, err = uuid.Parse(raw.ID)
		if err != nil {
			return nil, common.NewAppError("INVALID_CANDIDATE", "id is not a UUID", common.ErrInvalidInput)
		}
	}

	cand := &entity.Candidate{
		ID:               id,
		Name:             raw.Name,
		Role:             s.resolver.ResolveRole(ctx, raw.Role),
		Seniority:        raw.Seniority,
		Skills:           s.resolver.CanonicalizeSkills(ctx, raw.Skills),
		Languages:        canonical.NormalizeTerms(raw.Languages),
		LocationCity:     raw.LocationCity,
		LocationCountry:  raw.LocationCountry,
		OnsiteMode:       mode,
		AvailabilityFrom: raw.AvailabilityFrom,
		Notes:            raw.Notes,
		ProfileURL:       raw.ProfileURL,
		Active:           true,
	}

	var stored *entity.Candidate
	var err error
	if id != uuid.Nil {
		stored, err = s.candidates.Update(ctx, cand)
	} else {
		stored, err = s.candidates.Create(ctx, cand)
	}
	if err != nil {
		return nil, err
	}
	s.enqueue(ctx, repository.OwnerCandidate, stored.ID.String(), embedding.Task{
		Owner:       repository.OwnerCandidate,
		OwnerID:     stored.ID,
		SubmittedAt: time.Now().UTC(),
	})
	return stored, nil
}

// IngestFromSource pulls every record a source offers and ingests them one
// by one. A bad record is reported in its Result and does not stop the rest.
func (s *Service) IngestFromSource(ctx context.Context, src Source) ([]Result, Stats, error) {
	records, err := src.Fetch(ctx)
	if err != nil {
		return nil, Stats{}, common.WrapError(err, "fetch from "+src.Name())
	}

	results := make([]Result, 0, len(records))
	stats := Stats{Total: len(records)}
	for _, raw := range records {
		res := Result{JobUID: raw.JobUID}
		job, err := s.IngestJob(ctx, raw)
		if err != nil {
			res.Err = err.Error()
			stats.Failed++
			s.logger.Warn("job record rejected",
				zap.String("source", src.Name()),
				zap.String("job_uid", raw.JobUID),
				zap.Error(err))
		} else {
			res.ID = job.ID.String()
			stats.Succeeded++
		}
		results = append(results, res)
	}
	s.logger.Info("source ingest complete",
		zap.String("source", src.Name()),
		zap.Int("total", stats.Total),
		zap.Int("succeeded", stats.Succeeded),
		zap.Int("failed", stats.Failed))
	return results, stats, nil
}

// resolveOrg degrades gracefully: a failed resolution leaves the job without
// an organization link rather than failing the ingest.
func (s *Service) resolveOrg(ctx context.Context, kind entity.OrgKind, name string) *entity.Organization {
	if name == "" {
		return nil
	}
	org, err := s.resolver.ResolveOrganization(ctx, kind, name)
	if err != nil {
		s.logger.Warn("organization resolution failed",
			zap.String("kind", string(kind)),
			zap.String("name", name),
			zap.Error(err))
		return nil
	}
	return org
}

func (s *Service) enqueue(ctx context.Context, owner repository.OwnerType, id string, task embedding.Task) {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(ctx, task); err != nil {
		// The scheduled re-embed pass picks up records the queue missed.
		s.logger.Warn("embedding enqueue failed",
			zap.String("owner", string(owner)),
			zap.String("owner_id", id),
			zap.Error(err))
	}
}
