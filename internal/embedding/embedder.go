package embedding

import "context"

// Embedder generates a fixed-dimension vector for prepared text. A deployment
// configures exactly one backend; vectors from different backends are never
// mixed in one index.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	// Dimension is the backend's native output dimension.
	Dimension() int
	// ModelVersion identifies the producing model, persisted with each vector.
	ModelVersion() string
}

// Padded wraps a backend whose native dimension is smaller than the
// deployment's fixed dimension, zero-extending every vector so downstream
// similarity search never needs backend-aware logic.
type Padded struct {
	inner Embedder
	dim   int
}

// NewPadded returns e unchanged when its native dimension already matches.
func NewPadded(e Embedder, dim int) Embedder {
	if e.Dimension() >= dim {
		return e
	}
	return &Padded{inner: e, dim: dim}
}

func (p *Padded) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := p.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vec) >= p.dim {
		return vec[:p.dim], nil
	}
	out := make([]float32, p.dim)
	copy(out, vec)
	return out, nil
}

func (p *Padded) Dimension() int { return p.dim }

func (p *Padded) ModelVersion() string { return p.inner.ModelVersion() }
