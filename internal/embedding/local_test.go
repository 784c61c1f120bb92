package embedding

import (
	"context"
	"testing"
)

func TestLocalEmbedderDeterministic(t *testing.T) {
	e := NewLocalEmbedder(1536)
	ctx := context.Background()

	first, err := e.Embed(ctx, "Title: Senior Backend Developer")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(first) != 1536 {
		t.Fatalf("dimension = %d, want 1536", len(first))
	}

	again, err := e.Embed(ctx, "Title: Senior Backend Developer")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("vector differs at %d: %v vs %v", i, first[i], again[i])
		}
	}
}

func TestLocalEmbedderValues(t *testing.T) {
	e := NewLocalEmbedder(64)
	vec, err := e.Embed(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	sawPositive, sawNegative := false, false
	for i, v := range vec {
		if v != 0.25 && v != -0.25 {
			t.Fatalf("vec[%d] = %v, want ±0.25", i, v)
		}
		if v > 0 {
			sawPositive = true
		} else {
			sawNegative = true
		}
	}
	// A SHA-256 digest with all bits equal would be astonishing.
	if !sawPositive || !sawNegative {
		t.Error("expected a mix of positive and negative entries")
	}
}

func TestLocalEmbedderDistinctTexts(t *testing.T) {
	e := NewLocalEmbedder(256)
	ctx := context.Background()

	a, _ := e.Embed(ctx, "text a")
	b, _ := e.Embed(ctx, "text b")
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts produced identical vectors")
	}
}

func TestLocalEmbedderEmptyText(t *testing.T) {
	e := NewLocalEmbedder(16)
	vec, err := e.Embed(context.Background(), "")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("vec[%d] = %v, want zero vector for empty text", i, v)
		}
	}
}

func TestLocalEmbedderDefaultDimension(t *testing.T) {
	if got := NewLocalEmbedder(0).Dimension(); got != 1536 {
		t.Errorf("default dimension = %d, want 1536", got)
	}
}

func TestPaddedZeroExtends(t *testing.T) {
	inner := NewLocalEmbedder(64)
	padded := NewPadded(inner, 256)
	if padded.Dimension() != 256 {
		t.Fatalf("padded dimension = %d, want 256", padded.Dimension())
	}

	vec, err := padded.Embed(context.Background(), "text")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != 256 {
		t.Fatalf("padded vector length = %d, want 256", len(vec))
	}
	for i := 64; i < 256; i++ {
		if vec[i] != 0 {
			t.Fatalf("vec[%d] = %v, want zero padding", i, vec[i])
		}
	}
	if vec[0] != 0.25 && vec[0] != -0.25 {
		t.Errorf("payload entries must be preserved, vec[0] = %v", vec[0])
	}
}

func TestPaddedNoopWhenDimensionMatches(t *testing.T) {
	inner := NewLocalEmbedder(128)
	if NewPadded(inner, 128) != Embedder(inner) {
		t.Error("matching dimension should return the inner embedder unchanged")
	}
}
