package repository

import (
	"context"
	"database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/nordstaff/consultant-matcher/gen/ent"
	"github.com/nordstaff/consultant-matcher/gen/ent/enttest"
	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(drv)))
	t.Cleanup(func() { client.Close() })
	return client
}

func TestJobUpsertKeyedByUID(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, zap.NewNop())
	ctx := context.Background()

	first, err := repo.Upsert(ctx, &entity.Job{
		JobUID: "portal-1",
		Source: "portal",
		Title:  "Backend Developer",
		URL:    "https://example.com/1",
		Skills: []string{"go"},
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.Upsert(ctx, &entity.Job{
		JobUID: "portal-1",
		Source: "portal",
		Title:  "Senior Backend Developer",
		URL:    "https://example.com/1",
		Skills: []string{"go", "kubernetes"},
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("re-ingesting the same job_uid must keep the row, got new ID %s", second.ID)
	}
	if second.Title != "Senior Backend Developer" {
		t.Errorf("title = %q, want the updated value", second.Title)
	}
	all, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected a single row after re-upsert, got %d", len(all))
	}
}

func TestOrganizationGetOrCreateAndAliases(t *testing.T) {
	client := newTestClient(t)
	repo := NewOrganizationRepository(client, zap.NewNop())
	ctx := context.Background()

	org, err := repo.GetOrCreate(ctx, entity.OrgKindCompany, "acme", []string{"Acme AB"})
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	again, err := repo.GetOrCreate(ctx, entity.OrgKindCompany, "acme", nil)
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if again.ID != org.ID {
		t.Errorf("same (kind, normalized_name) must return the same row")
	}

	if err := repo.AppendAlias(ctx, org.ID, "ACME Aktiebolag"); err != nil {
		t.Fatalf("AppendAlias: %v", err)
	}
	// Appending twice is a no-op.
	if err := repo.AppendAlias(ctx, org.ID, "ACME Aktiebolag"); err != nil {
		t.Fatalf("AppendAlias repeat: %v", err)
	}

	hits, err := repo.FindByKey(ctx, entity.OrgKindCompany, "acme")
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("FindByKey returned %d rows, want 1", len(hits))
	}
	if got := len(hits[0].Aliases); got != 2 {
		t.Errorf("aliases = %v, want the original plus one appended", hits[0].Aliases)
	}

	// A broker with the same key is a separate namespace.
	broker, err := repo.GetOrCreate(ctx, entity.OrgKindBroker, "acme", nil)
	if err != nil {
		t.Fatalf("GetOrCreate broker: %v", err)
	}
	if broker.ID == org.ID {
		t.Error("company and broker rows must not collide")
	}
}

func TestOrganizationFindByAliasOnly(t *testing.T) {
	client := newTestClient(t)
	repo := NewOrganizationRepository(client, zap.NewNop())
	ctx := context.Background()

	// The searched key appears only in the alias list, not as the canonical
	// name, so the match comes from the JSON containment predicate.
	org, err := repo.GetOrCreate(ctx, entity.OrgKindCompany, "initech consulting", []string{"initech"})
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	hits, err := repo.FindByKey(ctx, entity.OrgKindCompany, "initech")
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != org.ID {
		t.Fatalf("FindByKey by alias = %+v, want the one row", hits)
	}

	hits, err = repo.FindByKey(ctx, entity.OrgKindCompany, "unrelated")
	if err != nil {
		t.Fatalf("FindByKey miss: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("unexpected hits for unknown key: %+v", hits)
	}
}

func TestOrganizationFlagForReview(t *testing.T) {
	client := newTestClient(t)
	repo := NewOrganizationRepository(client, zap.NewNop())
	ctx := context.Background()

	org, err := repo.GetOrCreate(ctx, entity.OrgKindCompany, "globex", nil)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if err := repo.FlagForReview(ctx, org.ID); err != nil {
		t.Fatalf("FlagForReview: %v", err)
	}
	flagged, err := repo.ListFlagged(ctx)
	if err != nil {
		t.Fatalf("ListFlagged: %v", err)
	}
	if len(flagged) != 1 || flagged[0].ID != org.ID {
		t.Errorf("ListFlagged = %+v, want the flagged row", flagged)
	}
}

func TestTermAliasLookup(t *testing.T) {
	client := newTestClient(t)
	repo := NewTermAliasRepository(client, zap.NewNop())
	ctx := context.Background()

	got, err := repo.Lookup(ctx, entity.TermKindSkill, "k8s")
	if err != nil || got != "" {
		t.Fatalf("unseen alias: got (%q, %v), want empty with no error", got, err)
	}

	if err := repo.Add(ctx, entity.TermKindSkill, "kubernetes", "k8s"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := repo.Add(ctx, entity.TermKindSkill, "kubernetes", "k8s"); err != nil {
		t.Fatalf("Add must be idempotent: %v", err)
	}

	got, err = repo.Lookup(ctx, entity.TermKindSkill, "k8s")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "kubernetes" {
		t.Errorf("Lookup = %q, want kubernetes", got)
	}

	// Same alias under a different kind is unseen.
	got, err = repo.Lookup(ctx, entity.TermKindRole, "k8s")
	if err != nil || got != "" {
		t.Errorf("role lookup: got (%q, %v), want empty", got, err)
	}

	vocab, err := repo.Vocabulary(ctx, entity.TermKindSkill)
	if err != nil {
		t.Fatalf("Vocabulary: %v", err)
	}
	if len(vocab) != 1 || vocab[0] != "kubernetes" {
		t.Errorf("Vocabulary = %v, want [kubernetes]", vocab)
	}
}

func TestMatchUpsertOverwritesPair(t *testing.T) {
	client := newTestClient(t)
	logger := zap.NewNop()
	jobs := NewJobRepository(client, logger)
	candidates := NewCandidateRepository(client, logger)
	matches := NewMatchRepository(client, logger)
	ctx := context.Background()

	job, err := jobs.Upsert(ctx, &entity.Job{
		JobUID: "portal-9",
		Source: "portal",
		Title:  "Platform Engineer",
		URL:    "https://example.com/9",
	})
	if err != nil {
		t.Fatalf("job upsert: %v", err)
	}
	cand, err := candidates.Create(ctx, &entity.Candidate{Name: "Test Candidate", Active: true})
	if err != nil {
		t.Fatalf("candidate create: %v", err)
	}

	if _, err := matches.Upsert(ctx, job.ID, cand.ID, 0.52, entity.Breakdown{Profile: "standard", Total: 0.52}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	// Re-scoring the same pair overwrites rather than duplicating.
	if _, err := matches.Upsert(ctx, job.ID, cand.ID, 0.91, entity.Breakdown{Profile: "standard", Total: 0.91}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	out, err := matches.Query(ctx, MatchFilter{JobID: &job.ID})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one row for the pair, got %d", len(out))
	}
	if out[0].Score != 0.91 {
		t.Errorf("score = %v, want the latest value", out[0].Score)
	}
	if out[0].Reasoning.Profile != "standard" {
		t.Errorf("reasoning not persisted: %+v", out[0].Reasoning)
	}

	// A floor above the stored score filters the row out.
	out, err = matches.Query(ctx, MatchFilter{JobID: &job.ID, MinScore: 0.95})
	if err != nil {
		t.Fatalf("Query with floor: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no rows above floor, got %d", len(out))
	}
}
