package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/gen/ent"
)

// Deps bundles every repository over one connection pair, for callers that
// wire the full stack.
type Deps struct {
	Jobs       JobRepository
	Candidates CandidateRepository
	Orgs       OrganizationRepository
	Terms      TermAliasRepository
	Matches    MatchRepository
	Embeddings EmbeddingRepository

	Pool *pgxpool.Pool
}

func NewDeps(client *ent.Client, pool *pgxpool.Pool, logger *zap.Logger) *Deps {
	return &Deps{
		Jobs:       NewJobRepository(client, logger),
		Candidates: NewCandidateRepository(client, logger),
		Orgs:       NewOrganizationRepository(client, logger),
		Terms:      NewTermAliasRepository(client, logger),
		Matches:    NewMatchRepository(client, logger),
		Embeddings: NewEmbeddingRepository(pool, logger),
		Pool:       pool,
	}
}
