package server

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	matcherv1 "github.com/nordstaff/consultant-matcher/gen/matcher/v1"
	"github.com/nordstaff/consultant-matcher/internal/common"
	"github.com/nordstaff/consultant-matcher/internal/matching"
	"github.com/nordstaff/consultant-matcher/internal/repository"
	"github.com/nordstaff/consultant-matcher/internal/scoring"
)

func (s *MatcherService) RunMatching(ctx context.Context, req *matcherv1.RunMatchingRequest) (*matcherv1.RunMatchingResponse, error) {
	jobIDs, err := parseUUIDs(req.GetJobIds())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("job_ids: %v", err)
	}
	candidateIDs, err := parseUUIDs(req.GetCandidateIds())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("candidate_ids: %v", err)
	}
	if req.GetMinScore() < 0 || req.GetMinScore() > 1 {
		return nil, common.InvalidArgumentError("min_score must be in [0, 1]")
	}

	result, err := s.matcher.Run(ctx, matching.RunRequest{
		JobIDs:       jobIDs,
		CandidateIDs: candidateIDs,
		MinScore:     req.GetMinScore(),
		MaxResults:   int(req.GetMaxResults()),
		Profile:      req.GetProfile(),
		FilterName:   req.GetFilter(),
		Filter: scoring.Filter{
			MinSeniorityTier:  int(req.GetMinSeniorityTier()),
			RequiredSkills:    req.GetRequiredSkills(),
			RequiredLanguages: req.GetRequiredLanguages(),
			Locations:         req.GetLocations(),
			OnsiteModes:       req.GetOnsiteModes(),
			Roles:             req.GetRoles(),
		},
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Warn("matching run failed", zap.Error(err))
		return nil, common.InternalError("matching run failed")
	}

	matches := make([]*matcherv1.Match, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, toPBMatch(m))
	}
	return &matcherv1.RunMatchingResponse{
		Matches:  matches,
		Scored:   int32(result.Scored),
		Stored:   int32(result.Stored),
		Failed:   int32(result.Failed),
		Excluded: int32(result.Excluded),
	}, nil
}

func (s *MatcherService) ListMatches(ctx context.Context, req *matcherv1.ListMatchesRequest) (*matcherv1.ListMatchesResponse, error) {
	filter := repository.MatchFilter{
		MinScore:   req.GetMinScore(),
		MaxResults: int(req.GetMaxResults()),
	}
	if raw := req.GetJobId(); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("job_id: %v", err)
		}
		filter.JobID = &id
	}
	if raw := req.GetCandidateId(); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("candidate_id: %v", err)
		}
		filter.CandidateID = &id
	}

	ms, err := s.matches.Query(ctx, filter)
	if err != nil {
		s.logger.Warn("list matches failed", zap.Error(err))
		return nil, common.InternalError("list matches failed")
	}

	out := make([]*matcherv1.Match, 0, len(ms))
	for _, m := range ms {
		out = append(out, toPBMatch(m))
	}
	return &matcherv1.ListMatchesResponse{Matches: out}, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
