// Package search answers approximate nearest-neighbor queries over the
// pgvector embedding tables. It is read-mostly; embedding writes happen
// elsewhere and do not block queries here.
package search

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/repository"
)

// Neighbor is one ANN result: an owner and its cosine similarity to the
// query vector, already clamped to [0,1].
type Neighbor struct {
	OwnerID    uuid.UUID
	Similarity float64
}

// Index runs K-nearest queries by cosine distance, restricted to one owner
// type (job vectors searched against candidate vectors, or vice versa).
type Index struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewIndex(pool *pgxpool.Pool, logger *zap.Logger) *Index {
	return &Index{pool: pool, logger: logger}
}

// Nearest returns the K stored vectors of the given owner type closest to
// the query vector. Similarity is 1 - cosine_distance, clamped to absorb
// floating-point overshoot.
func (ix *Index) Nearest(ctx context.Context, owner repository.OwnerType, query []float32, k int) ([]Neighbor, error) {
	table := "candidate_embeddings"
	column := "candidate_id"
	if owner == repository.OwnerJob {
		table = "job_embeddings"
		column = "job_id"
	}

	sql := fmt.Sprintf(`
		SELECT %s, 1 - (embedding <=> $1) AS similarity
		FROM %s
		ORDER BY embedding <=> $1
		LIMIT $2`, column, table)

	rows, err := ix.pool.Query(ctx, sql, pgvector.NewVector(query), k)
	if err != nil {
		ix.logger.Error("nearest-neighbor query failed",
			zap.String("owner_type", string(owner)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Neighbor
	for rows.Next() {
		var n Neighbor
		if err := rows.Scan(&n.OwnerID, &n.Similarity); err != nil {
			return nil, err
		}
		n.Similarity = Clamp01(n.Similarity)
		out = append(out, n)
	}
	return out, rows.Err()
}

// Cosine computes the cosine similarity of two vectors in-process, for
// scoring a single pair without a round-trip through the index. Returns
// (0, false) when either vector is empty or zero-length in norm.
func Cosine(a, b []float32) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0, false
	}
	return Clamp01(dot / (math.Sqrt(na) * math.Sqrt(nb))), true
}

// Clamp01 bounds a similarity into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
