package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/common"
)

// OwnerType selects which embedding table a vector lives in. A deployment
// runs one backend, so all rows in both tables share one dimensionality.
type OwnerType string

const (
	OwnerJob       OwnerType = "job"
	OwnerCandidate OwnerType = "candidate"
)

func (o OwnerType) table() string {
	if o == OwnerJob {
		return "job_embeddings"
	}
	return "candidate_embeddings"
}

func (o OwnerType) ownerColumn() string {
	if o == OwnerJob {
		return "job_id"
	}
	return "candidate_id"
}

// EmbeddingRepository stores one vector per owner. Writes overwrite, never
// append. Vector search itself lives in internal/search.
type EmbeddingRepository interface {
	Upsert(ctx context.Context, owner OwnerType, ownerID uuid.UUID, vec []float32, modelVersion string) error
	Get(ctx context.Context, owner OwnerType, ownerID uuid.UUID) ([]float32, error)
	// ListMissing returns owners that still lack a vector, for the scheduled
	// re-embedding pass.
	ListMissing(ctx context.Context, owner OwnerType, limit int) ([]uuid.UUID, error)
}

type embeddingRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewEmbeddingRepository(pool *pgxpool.Pool, logger *zap.Logger) EmbeddingRepository {
	return &embeddingRepository{pool: pool, logger: logger}
}

func (r *embeddingRepository) Upsert(ctx context.Context, owner OwnerType, ownerID uuid.UUID, vec []float32, modelVersion string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, embedding, model_version, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (%s)
		DO UPDATE SET embedding = EXCLUDED.embedding,
		              model_version = EXCLUDED.model_version,
		              updated_at = now()`,
		owner.table(), owner.ownerColumn(), owner.ownerColumn())

	_, err := r.pool.Exec(ctx, query, ownerID, pgvector.NewVector(vec), modelVersion)
	if err != nil {
		r.logger.Error("failed to upsert embedding",
			zap.String("owner_type", string(owner)),
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return common.WrapError(err, "upsert embedding")
	}
	return nil
}

func (r *embeddingRepository) Get(ctx context.Context, owner OwnerType, ownerID uuid.UUID) ([]float32, error) {
	query := fmt.Sprintf(`SELECT embedding FROM %s WHERE %s = $1`, owner.table(), owner.ownerColumn())

	var vec pgvector.Vector
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(&vec)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNoEmbedding
	}
	if err != nil {
		return nil, common.WrapError(err, "get embedding")
	}
	return vec.Slice(), nil
}

func (r *embeddingRepository) ListMissing(ctx context.Context, owner OwnerType, limit int) ([]uuid.UUID, error) {
	var query string
	if owner == OwnerJob {
		query = `
			SELECT j.id FROM jobs j
			LEFT JOIN job_embeddings e ON e.job_id = j.id
			WHERE e.job_id IS NULL
			ORDER BY j.scraped_at DESC
			LIMIT $1`
	} else {
		query = `
			SELECT c.id FROM candidates c
			LEFT JOIN candidate_embeddings e ON e.candidate_id = c.id
			WHERE e.candidate_id IS NULL AND c.active
			ORDER BY c.updated_at DESC
			LIMIT $1`
	}

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, common.WrapError(err, "list missing embeddings")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
