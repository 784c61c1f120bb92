package server

import (
	"context"

	"go.uber.org/zap"

	matcherv1 "github.com/nordstaff/consultant-matcher/gen/matcher/v1"
	"github.com/nordstaff/consultant-matcher/internal/common"
	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func (s *MatcherService) ResolveOrganization(ctx context.Context, req *matcherv1.ResolveOrganizationRequest) (*matcherv1.ResolveOrganizationResponse, error) {
	var kind entity.OrgKind
	switch req.GetKind() {
	case string(entity.OrgKindCompany):
		kind = entity.OrgKindCompany
	case string(entity.OrgKindBroker):
		kind = entity.OrgKindBroker
	default:
		return nil, common.InvalidArgumentErrorf("kind must be %q or %q", entity.OrgKindCompany, entity.OrgKindBroker)
	}
	if req.GetName() == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	org, err := s.resolver.ResolveOrganization(ctx, kind, req.GetName())
	if err != nil {
		s.logger.Warn("resolve organization failed", zap.String("name", req.GetName()), zap.Error(err))
		return nil, common.InternalError("resolve organization failed")
	}
	if org == nil {
		return nil, common.NotFoundError("name normalizes to an empty key")
	}

	return &matcherv1.ResolveOrganizationResponse{
		Id:             org.ID.String(),
		NormalizedName: org.NormalizedName,
		Aliases:        org.Aliases,
		NeedsReview:    org.NeedsReview,
	}, nil
}
