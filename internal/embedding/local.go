package embedding

import (
	"context"
	"crypto/sha256"
)

// LocalEmbedder derives a deterministic vector from a SHA-256 digest of the
// text. It carries no semantic signal beyond exact-text identity, but it
// lets the full pipeline run without an external provider, and identical
// prepared text always maps to the identical vector.
type LocalEmbedder struct {
	dim int
}

func NewLocalEmbedder(dim int) *LocalEmbedder {
	if dim <= 0 {
		dim = 1536
	}
	return &LocalEmbedder{dim: dim}
}

func (e *LocalEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if text == "" {
		return make([]float32, e.dim), nil
	}

	digest := sha256.Sum256([]byte(text))
	vec := make([]float32, e.dim)
	// Expand the 32-byte digest bitwise into ±0.25 entries, cycling as needed.
	for i := 0; i < e.dim; i++ {
		b := digest[(i/8)%len(digest)]
		bit := (b >> (i % 8)) & 1
		vec[i] = float32(bit)*0.5 - 0.25
	}
	return vec, nil
}

func (e *LocalEmbedder) Dimension() int { return e.dim }

func (e *LocalEmbedder) ModelVersion() string { return "local" }
