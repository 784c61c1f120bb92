package ingest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/canonical"
	"github.com/nordstaff/consultant-matcher/internal/entity"
)

type stubJobs struct {
	upserted []*entity.Job
}

func (s *stubJobs) Upsert(_ context.Context, in *entity.Job) (*entity.Job, error) {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	s.upserted = append(s.upserted, in)
	return in, nil
}

func (s *stubJobs) GetByID(context.Context, uuid.UUID) (*entity.Job, error)      { return nil, nil }
func (s *stubJobs) GetByIDs(context.Context, []uuid.UUID) ([]*entity.Job, error) { return nil, nil }
func (s *stubJobs) ListRecent(context.Context, int) ([]*entity.Job, error)       { return nil, nil }

type stubCandidates struct {
	created []*entity.Candidate
	updated []*entity.Candidate
}

func (s *stubCandidates) Create(_ context.Context, in *entity.Candidate) (*entity.Candidate, error) {
	in.ID = uuid.New()
	s.created = append(s.created, in)
	return in, nil
}

func (s *stubCandidates) Update(_ context.Context, in *entity.Candidate) (*entity.Candidate, error) {
	s.updated = append(s.updated, in)
	return in, nil
}
func (s *stubCandidates) GetByID(context.Context, uuid.UUID) (*entity.Candidate, error) {
	return nil, nil
}
func (s *stubCandidates) GetByIDs(context.Context, []uuid.UUID) ([]*entity.Candidate, error) {
	return nil, nil
}
func (s *stubCandidates) ListActive(context.Context, int) ([]*entity.Candidate, error) {
	return nil, nil
}
func (s *stubCandidates) Deactivate(context.Context, uuid.UUID) error { return nil }

type stubOrgs struct {
	orgs []*entity.Organization
}

func (s *stubOrgs) FindByKey(_ context.Context, kind entity.OrgKind, key string) ([]*entity.Organization, error) {
	var hits []*entity.Organization
	for _, o := range s.orgs {
		if o.Kind == kind && o.NormalizedName == key {
			hits = append(hits, o)
		}
	}
	return hits, nil
}

func (s *stubOrgs) GetOrCreate(_ context.Context, kind entity.OrgKind, name string, aliases []string) (*entity.Organization, error) {
	o := &entity.Organization{ID: uuid.New(), Kind: kind, NormalizedName: name, Aliases: aliases}
	s.orgs = append(s.orgs, o)
	return o, nil
}

func (s *stubOrgs) AppendAlias(context.Context, uuid.UUID, string) error { return nil }
func (s *stubOrgs) FlagForReview(context.Context, uuid.UUID) error       { return nil }
func (s *stubOrgs) ListFlagged(context.Context) ([]*entity.Organization, error) {
	return nil, nil
}

type stubTerms struct {
	skills map[string]string
}

func (s *stubTerms) Lookup(_ context.Context, kind entity.TermKind, alias string) (string, error) {
	if kind == entity.TermKindSkill {
		return s.skills[alias], nil
	}
	return "", nil
}
func (s *stubTerms) Add(context.Context, entity.TermKind, string, string) error { return nil }
func (s *stubTerms) Vocabulary(context.Context, entity.TermKind) ([]string, error) {
	return nil, nil
}
func (s *stubTerms) All(context.Context, entity.TermKind) ([]*entity.TermAlias, error) {
	return nil, nil
}

func fixtureService(jobs *stubJobs, candidates *stubCandidates, orgs *stubOrgs, terms *stubTerms) *Service {
	logger := zap.NewNop()
	resolver := canonical.NewResolver(orgs, terms, logger)
	return NewService(jobs, candidates, resolver, nil, logger)
}

func TestIngestJobCanonicalizes(t *testing.T) {
	jobs := &stubJobs{}
	orgs := &stubOrgs{}
	terms := &stubTerms{skills: map[string]string{"k8s": "kubernetes"}}
	svc := fixtureService(jobs, &stubCandidates{}, orgs, terms)

	raw := validRawJob()
	raw.CompanyName = "Acme AB"
	raw.Skills = []string{"K8s", "Go", "go"}
	raw.Languages = []string{"Swedish", "swedish"}

	job, err := svc.IngestJob(context.Background(), raw)
	if err != nil {
		t.Fatalf("IngestJob: %v", err)
	}

	if job.CompanyID == nil {
		t.Error("company name must resolve to an organization link")
	}
	if len(orgs.orgs) != 1 || orgs.orgs[0].NormalizedName != "acme" {
		t.Errorf("organization not canonicalized: %+v", orgs.orgs)
	}
	wantSkills := []string{"kubernetes", "go"}
	if len(job.Skills) != len(wantSkills) {
		t.Fatalf("skills = %v, want %v", job.Skills, wantSkills)
	}
	for i := range wantSkills {
		if job.Skills[i] != wantSkills[i] {
			t.Errorf("skills = %v, want %v", job.Skills, wantSkills)
		}
	}
	if len(job.Languages) != 1 || job.Languages[0] != "swedish" {
		t.Errorf("languages = %v, want deduplicated [swedish]", job.Languages)
	}
	if len(jobs.upserted) != 1 {
		t.Errorf("expected one upsert, got %d", len(jobs.upserted))
	}
}

func TestIngestJobRejectsInvalid(t *testing.T) {
	svc := fixtureService(&stubJobs{}, &stubCandidates{}, &stubOrgs{}, &stubTerms{})

	raw := validRawJob()
	raw.JobUID = ""
	if _, err := svc.IngestJob(context.Background(), raw); err == nil {
		t.Error("expected validation error for missing job_uid")
	}

	raw = validRawJob()
	raw.OnsiteMode = "teleport"
	if _, err := svc.IngestJob(context.Background(), raw); err == nil {
		t.Error("expected validation error for unknown onsite_mode")
	}
}

func TestIngestJobAcceptsPartialRecord(t *testing.T) {
	jobs := &stubJobs{}
	svc := fixtureService(jobs, &stubCandidates{}, &stubOrgs{}, &stubTerms{})

	// Only the required fields; everything else missing is fine.
	job, err := svc.IngestJob(context.Background(), validRawJob())
	if err != nil {
		t.Fatalf("IngestJob: %v", err)
	}
	if job.CompanyID != nil || job.BrokerID != nil {
		t.Error("no organization names given, links must stay empty")
	}
}

func TestIngestCandidate(t *testing.T) {
	candidates := &stubCandidates{}
	svc := fixtureService(&stubJobs{}, candidates, &stubOrgs{}, &stubTerms{})

	cand, err := svc.IngestCandidate(context.Background(), RawCandidate{
		Name:   "Test Candidate",
		Skills: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("IngestCandidate: %v", err)
	}
	if !cand.Active {
		t.Error("new candidates start active")
	}
	if len(candidates.created) != 1 {
		t.Errorf("expected one create, got %d", len(candidates.created))
	}

	if _, err := svc.IngestCandidate(context.Background(), RawCandidate{}); err == nil {
		t.Error("expected validation error for missing name")
	}
}

func TestIngestCandidateUpdatesExisting(t *testing.T) {
	candidates := &stubCandidates{}
	svc := fixtureService(&stubJobs{}, candidates, &stubOrgs{}, &stubTerms{})

	id := uuid.New()
	cand, err := svc.IngestCandidate(context.Background(), RawCandidate{
		ID:     id.String(),
		Name:   "Known Candidate",
		Skills: []string{"Go", "Terraform"},
	})
	if err != nil {
		t.Fatalf("IngestCandidate: %v", err)
	}
	if cand.ID != id {
		t.Errorf("id = %s, want the supplied identity kept", cand.ID)
	}
	if len(candidates.updated) != 1 || len(candidates.created) != 0 {
		t.Errorf("updated=%d created=%d, re-ingest with an id must update",
			len(candidates.updated), len(candidates.created))
	}
	if !cand.Active {
		t.Error("an updated profile returns to the active pool")
	}

	if _, err := svc.IngestCandidate(context.Background(), RawCandidate{
		ID:   "not-a-uuid",
		Name: "Bad ID",
	}); err == nil {
		t.Error("expected validation error for malformed id")
	}
}

func TestIngestFromSourceIsolatesBadRecords(t *testing.T) {
	jobs := &stubJobs{}
	svc := fixtureService(jobs, &stubCandidates{}, &stubOrgs{}, &stubTerms{})

	good := validRawJob()
	bad := validRawJob()
	bad.Title = ""

	results, stats, err := svc.IngestFromSource(context.Background(), staticSource{records: []RawJob{good, bad}})
	if err != nil {
		t.Fatalf("IngestFromSource: %v", err)
	}
	if stats.Succeeded != 1 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want one success and one failure", stats)
	}
	if results[0].Err != "" || results[1].Err == "" {
		t.Errorf("per-record outcomes wrong: %+v", results)
	}
	if len(jobs.upserted) != 1 {
		t.Errorf("only the valid record must be stored, got %d", len(jobs.upserted))
	}
}

type staticSource struct {
	records []RawJob
}

func (s staticSource) Name() string                            { return "static" }
func (s staticSource) Fetch(context.Context) ([]RawJob, error) { return s.records, nil }
