package canonical

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terms.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAliasSeeds(t *testing.T) {
	path := writeSeedFile(t, `skills:
  - canonical: kubernetes
    aliases: [k8s, kube]
  - canonical: postgresql
    aliases: [postgres]
roles:
  - canonical: backend developer
    aliases: [backend engineer, back-end developer]
`)

	seeds, err := LoadAliasSeeds(path)
	if err != nil {
		t.Fatalf("LoadAliasSeeds: %v", err)
	}
	if got := len(seeds[entity.TermKindSkill]); got != 2 {
		t.Errorf("skill seeds = %d, want 2", got)
	}
	if got := len(seeds[entity.TermKindRole]); got != 1 {
		t.Errorf("role seeds = %d, want 1", got)
	}
	if seeds[entity.TermKindSkill][0].Canonical != "kubernetes" {
		t.Errorf("first skill seed = %+v", seeds[entity.TermKindSkill][0])
	}
}

func TestLoadAliasSeedsRejectsEmptyCanonical(t *testing.T) {
	path := writeSeedFile(t, `skills:
  - canonical: "  "
    aliases: [k8s]
`)
	if _, err := LoadAliasSeeds(path); err == nil {
		t.Error("expected error for blank canonical term")
	}
}

func TestSeedAliasesFeedsResolution(t *testing.T) {
	terms := newMemTerms()
	r := NewResolver(newMemOrgs(), terms, zap.NewNop())
	ctx := context.Background()

	// Before seeding the raw spelling passes through unchanged.
	if got := r.ResolveSkill(ctx, "K8s"); got != "k8s" {
		t.Fatalf("ResolveSkill before seeding = %q, want pass-through", got)
	}

	seeds := map[entity.TermKind][]AliasSeed{
		entity.TermKindSkill: {{Canonical: "Kubernetes", Aliases: []string{"K8s", "kube"}}},
		entity.TermKindRole:  {{Canonical: "Backend Developer", Aliases: []string{"backend engineer"}}},
	}
	written, err := r.SeedAliases(ctx, seeds)
	if err != nil {
		t.Fatalf("SeedAliases: %v", err)
	}
	// Canonical terms are recorded as aliases of themselves.
	if written != 5 {
		t.Errorf("written = %d, want 5 alias rows", written)
	}

	if got := r.ResolveSkill(ctx, "K8s"); got != "kubernetes" {
		t.Errorf("ResolveSkill(K8s) = %q, want kubernetes", got)
	}
	if got := r.ResolveSkill(ctx, "Kubernetes"); got != "kubernetes" {
		t.Errorf("ResolveSkill(Kubernetes) = %q, want kubernetes", got)
	}
	if got := r.ResolveRole(ctx, "Backend Engineer"); got != "backend developer" {
		t.Errorf("ResolveRole = %q, want backend developer", got)
	}

	// Re-seeding is idempotent on the stored vocabulary.
	if _, err := r.SeedAliases(ctx, seeds); err != nil {
		t.Fatalf("SeedAliases again: %v", err)
	}
	vocab, err := terms.Vocabulary(ctx, entity.TermKindSkill)
	if err != nil {
		t.Fatal(err)
	}
	if len(vocab) != 1 || vocab[0] != "kubernetes" {
		t.Errorf("vocabulary = %v, want [kubernetes]", vocab)
	}
}
