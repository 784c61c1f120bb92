// Package server exposes the matcher over gRPC.
package server

import (
	"go.uber.org/zap"

	matcherv1 "github.com/nordstaff/consultant-matcher/gen/matcher/v1"
	"github.com/nordstaff/consultant-matcher/internal/canonical"
	"github.com/nordstaff/consultant-matcher/internal/ingest"
	"github.com/nordstaff/consultant-matcher/internal/matching"
	"github.com/nordstaff/consultant-matcher/internal/repository"
)

type MatcherService struct {
	matcherv1.UnimplementedMatcherServiceServer
	ingest   *ingest.Service
	matcher  *matching.Service
	matches  repository.MatchRepository
	resolver *canonical.Resolver
	logger   *zap.Logger
}

func NewMatcherService(
	ingestSvc *ingest.Service,
	matcher *matching.Service,
	matches repository.MatchRepository,
	resolver *canonical.Resolver,
	logger *zap.Logger,
) *MatcherService {
	return &MatcherService{
		ingest:   ingestSvc,
		matcher:  matcher,
		matches:  matches,
		resolver: resolver,
		logger:   logger,
	}
}
