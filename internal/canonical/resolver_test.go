package canonical

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

// memOrgs is an in-memory OrganizationRepository preserving insertion order.
type memOrgs struct {
	orgs    []*entity.Organization
	flagged map[uuid.UUID]bool
	findErr error
}

func newMemOrgs() *memOrgs {
	return &memOrgs{flagged: map[uuid.UUID]bool{}}
}

func (m *memOrgs) FindByKey(_ context.Context, kind entity.OrgKind, key string) ([]*entity.Organization, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var hits []*entity.Organization
	for _, o := range m.orgs {
		if o.Kind != kind {
			continue
		}
		if o.NormalizedName == key || containsFold(o.Aliases, key) {
			hits = append(hits, o)
		}
	}
	return hits, nil
}

func (m *memOrgs) GetOrCreate(_ context.Context, kind entity.OrgKind, normalizedName string, aliases []string) (*entity.Organization, error) {
	for _, o := range m.orgs {
		if o.Kind == kind && o.NormalizedName == normalizedName {
			return o, nil
		}
	}
	o := &entity.Organization{
		ID:             uuid.New(),
		Kind:           kind,
		NormalizedName: normalizedName,
		Aliases:        append([]string(nil), aliases...),
	}
	m.orgs = append(m.orgs, o)
	return o, nil
}

func (m *memOrgs) AppendAlias(_ context.Context, id uuid.UUID, alias string) error {
	for _, o := range m.orgs {
		if o.ID == id && !containsFold(o.Aliases, alias) {
			o.Aliases = append(o.Aliases, alias)
		}
	}
	return nil
}

func (m *memOrgs) FlagForReview(_ context.Context, id uuid.UUID) error {
	m.flagged[id] = true
	for _, o := range m.orgs {
		if o.ID == id {
			o.NeedsReview = true
		}
	}
	return nil
}

func (m *memOrgs) ListFlagged(context.Context) ([]*entity.Organization, error) {
	var out []*entity.Organization
	for _, o := range m.orgs {
		if o.NeedsReview {
			out = append(out, o)
		}
	}
	return out, nil
}

// memTerms is an in-memory TermAliasRepository.
type memTerms struct {
	aliases   map[entity.TermKind]map[string]string
	lookupErr error
}

func newMemTerms() *memTerms {
	return &memTerms{aliases: map[entity.TermKind]map[string]string{}}
}

func (m *memTerms) Lookup(_ context.Context, kind entity.TermKind, alias string) (string, error) {
	if m.lookupErr != nil {
		return "", m.lookupErr
	}
	return m.aliases[kind][alias], nil
}

func (m *memTerms) Add(_ context.Context, kind entity.TermKind, canonical, alias string) error {
	if m.aliases[kind] == nil {
		m.aliases[kind] = map[string]string{}
	}
	m.aliases[kind][alias] = canonical
	return nil
}

func (m *memTerms) Vocabulary(_ context.Context, kind entity.TermKind) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, c := range m.aliases[kind] {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memTerms) All(_ context.Context, kind entity.TermKind) ([]*entity.TermAlias, error) {
	var out []*entity.TermAlias
	for a, c := range m.aliases[kind] {
		out = append(out, &entity.TermAlias{Kind: kind, Canonical: c, Alias: a})
	}
	return out, nil
}

func TestResolveOrganizationCreatesOnce(t *testing.T) {
	orgs := newMemOrgs()
	r := NewResolver(orgs, newMemTerms(), zap.NewNop())
	ctx := context.Background()

	first, err := r.ResolveOrganization(ctx, entity.OrgKindCompany, "Acme AB")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first == nil || first.NormalizedName != "acme" {
		t.Fatalf("got %+v, want normalized name acme", first)
	}

	// A different raw spelling of the same company resolves to the same row.
	second, err := r.ResolveOrganization(ctx, entity.OrgKindCompany, "ACME Aktiebolag")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("spellings resolved to different organizations: %s vs %s", first.ID, second.ID)
	}
	if len(orgs.orgs) != 1 {
		t.Errorf("expected a single canonical row, have %d", len(orgs.orgs))
	}
	if !containsFold(second.Aliases, "ACME Aktiebolag") {
		t.Errorf("new raw spelling not recorded as alias: %v", second.Aliases)
	}
}

func TestResolveOrganizationKindsAreSeparate(t *testing.T) {
	orgs := newMemOrgs()
	r := NewResolver(orgs, newMemTerms(), zap.NewNop())
	ctx := context.Background()

	company, _ := r.ResolveOrganization(ctx, entity.OrgKindCompany, "Nordic Consulting")
	broker, _ := r.ResolveOrganization(ctx, entity.OrgKindBroker, "Nordic Consulting")
	if company.ID == broker.ID {
		t.Error("company and broker with the same name must be distinct identities")
	}
}

func TestResolveOrganizationEmptyName(t *testing.T) {
	r := NewResolver(newMemOrgs(), newMemTerms(), zap.NewNop())
	org, err := r.ResolveOrganization(context.Background(), entity.OrgKindCompany, "  !!! ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if org != nil {
		t.Errorf("unusable name should degrade to nil, got %+v", org)
	}
}

func TestResolveOrganizationCollisionFlagsFirst(t *testing.T) {
	orgs := newMemOrgs()
	a := &entity.Organization{ID: uuid.New(), Kind: entity.OrgKindCompany, NormalizedName: "alpha", Aliases: []string{"shared"}}
	b := &entity.Organization{ID: uuid.New(), Kind: entity.OrgKindCompany, NormalizedName: "beta", Aliases: []string{"shared"}}
	orgs.orgs = append(orgs.orgs, a, b)

	r := NewResolver(orgs, newMemTerms(), zap.NewNop())
	got, err := r.ResolveOrganization(context.Background(), entity.OrgKindCompany, "shared")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("collision should keep the first recorded row, got %s", got.ID)
	}
	if !orgs.flagged[a.ID] {
		t.Error("colliding organization should be flagged for review")
	}
}

func TestResolveSkill(t *testing.T) {
	terms := newMemTerms()
	terms.Add(context.Background(), entity.TermKindSkill, "kubernetes", "k8s")
	r := NewResolver(newMemOrgs(), terms, zap.NewNop())
	ctx := context.Background()

	if got := r.ResolveSkill(ctx, "K8s"); got != "kubernetes" {
		t.Errorf("ResolveSkill(K8s) = %q, want kubernetes", got)
	}
	// Unknown terms are accepted as their own canonical form.
	if got := r.ResolveSkill(ctx, "Erlang"); got != "erlang" {
		t.Errorf("ResolveSkill(Erlang) = %q, want erlang", got)
	}
	if got := r.ResolveSkill(ctx, "   "); got != "" {
		t.Errorf("ResolveSkill(blank) = %q, want empty", got)
	}
}

func TestResolveSkillLookupFailureDegrades(t *testing.T) {
	terms := newMemTerms()
	terms.lookupErr = errors.New("connection refused")
	r := NewResolver(newMemOrgs(), terms, zap.NewNop())

	if got := r.ResolveSkill(context.Background(), "Python"); got != "python" {
		t.Errorf("lookup failure should degrade to the normalized spelling, got %q", got)
	}
}

func TestCanonicalizeSkills(t *testing.T) {
	terms := newMemTerms()
	ctx := context.Background()
	terms.Add(ctx, entity.TermKindSkill, "kubernetes", "k8s")
	r := NewResolver(newMemOrgs(), terms, zap.NewNop())

	got := r.CanonicalizeSkills(ctx, []string{"K8s", "kubernetes", "Go", "", "go"})
	want := []string{"kubernetes", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CanonicalizeSkills = %v, want %v", got, want)
	}
}
