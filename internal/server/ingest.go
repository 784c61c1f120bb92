package server

import (
	"context"
	"errors"

	"go.uber.org/zap"

	matcherv1 "github.com/nordstaff/consultant-matcher/gen/matcher/v1"
	"github.com/nordstaff/consultant-matcher/internal/common"
)

func (s *MatcherService) IngestJob(ctx context.Context, req *matcherv1.IngestJobRequest) (*matcherv1.IngestJobResponse, error) {
	if req.GetJob() == nil {
		return nil, common.InvalidArgumentError("job is required")
	}
	raw, err := fromPBJob(req.GetJob())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	job, err := s.ingest.IngestJob(ctx, raw)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Warn("ingest job failed", zap.String("job_uid", raw.JobUID), zap.Error(err))
		return nil, common.InternalError("ingest job failed")
	}
	return &matcherv1.IngestJobResponse{Job: toPBJob(job)}, nil
}

func (s *MatcherService) IngestCandidate(ctx context.Context, req *matcherv1.IngestCandidateRequest) (*matcherv1.IngestCandidateResponse, error) {
	if req.GetCandidate() == nil {
		return nil, common.InvalidArgumentError("candidate is required")
	}
	raw, err := fromPBCandidate(req.GetCandidate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	cand, err := s.ingest.IngestCandidate(ctx, raw)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Warn("ingest candidate failed", zap.String("name", raw.Name), zap.Error(err))
		return nil, common.InternalError("ingest candidate failed")
	}
	return &matcherv1.IngestCandidateResponse{Candidate: toPBCandidate(cand)}, nil
}
