package matching

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/common"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/repository"
	"github.com/nordstaff/consultant-matcher/internal/scoring"
	"github.com/nordstaff/consultant-matcher/internal/search"
)

type stubJobs struct {
	jobs []*entity.Job
}

func (s *stubJobs) Upsert(_ context.Context, in *entity.Job) (*entity.Job, error) { return in, nil }

func (s *stubJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *stubJobs) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range s.jobs {
		for _, id := range ids {
			if j.ID == id {
				out = append(out, j)
			}
		}
	}
	return out, nil
}

func (s *stubJobs) ListRecent(context.Context, int) ([]*entity.Job, error) {
	return s.jobs, nil
}

type stubCandidates struct {
	candidates []*entity.Candidate
}

func (s *stubCandidates) Create(_ context.Context, in *entity.Candidate) (*entity.Candidate, error) {
	return in, nil
}

func (s *stubCandidates) Update(_ context.Context, in *entity.Candidate) (*entity.Candidate, error) {
	return in, nil
}

func (s *stubCandidates) GetByID(_ context.Context, id uuid.UUID) (*entity.Candidate, error) {
	for _, c := range s.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *stubCandidates) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Candidate, error) {
	var out []*entity.Candidate
	for _, c := range s.candidates {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (s *stubCandidates) ListActive(context.Context, int) ([]*entity.Candidate, error) {
	return s.candidates, nil
}

func (s *stubCandidates) Deactivate(context.Context, uuid.UUID) error { return nil }

type stubEmbeddings struct {
	vectors map[uuid.UUID][]float32
}

func (s *stubEmbeddings) Upsert(_ context.Context, _ repository.OwnerType, id uuid.UUID, vec []float32, _ string) error {
	if s.vectors == nil {
		s.vectors = map[uuid.UUID][]float32{}
	}
	s.vectors[id] = vec
	return nil
}

func (s *stubEmbeddings) Get(_ context.Context, _ repository.OwnerType, id uuid.UUID) ([]float32, error) {
	if vec, ok := s.vectors[id]; ok {
		return vec, nil
	}
	return nil, common.ErrNoEmbedding
}

func (s *stubEmbeddings) ListMissing(context.Context, repository.OwnerType, int) ([]uuid.UUID, error) {
	return nil, nil
}

type stubMatches struct {
	mu        sync.Mutex
	upserts   map[string]*entity.Match
	upsertErr error
}

func pairKey(jobID, candidateID uuid.UUID) string {
	return jobID.String() + "/" + candidateID.String()
}

func (s *stubMatches) Upsert(_ context.Context, jobID, candidateID uuid.UUID, score float64, reasoning entity.Breakdown) (*entity.Match, error) {
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.upserts == nil {
		s.upserts = map[string]*entity.Match{}
	}
	m := &entity.Match{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		Score:       score,
		Reasoning:   reasoning,
		CreatedAt:   time.Now(),
	}
	s.upserts[pairKey(jobID, candidateID)] = m
	return m, nil
}

func (s *stubMatches) Query(context.Context, repository.MatchFilter) ([]*entity.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Match
	for _, m := range s.upserts {
		out = append(out, m)
	}
	return out, nil
}

type stubIndex struct {
	neighbors []search.Neighbor
}

func (s *stubIndex) Nearest(context.Context, repository.OwnerType, []float32, int) ([]search.Neighbor, error) {
	return s.neighbors, nil
}

func fixtureService(t *testing.T, jobs []*entity.Job, candidates []*entity.Candidate, matches *stubMatches) *Service {
	t.Helper()
	return NewService(
		&stubJobs{jobs: jobs},
		&stubCandidates{candidates: candidates},
		&stubEmbeddings{},
		matches,
		&stubIndex{},
		nil,
		scoring.BuiltinProfiles(),
		scoring.BuiltinFilters(),
		common.MatchingConfig{Workers: 2, ShortlistSize: 100, MaxResults: 10},
		zap.NewNop(),
	)
}

func fixtureJob() *entity.Job {
	return &entity.Job{
		ID:           uuid.New(),
		JobUID:       "j-1",
		Title:        "Senior Backend Developer",
		Skills:       []string{"go", "postgresql"},
		Role:         "backend developer",
		Seniority:    "senior",
		Languages:    []string{"en"},
		LocationCity: "Stockholm",
	}
}

func fixtureCandidate(name string) *entity.Candidate {
	return &entity.Candidate{
		ID:           uuid.New(),
		Name:         name,
		Skills:       []string{"go", "postgresql"},
		Role:         "backend developer",
		Seniority:    "senior",
		Languages:    []string{"en", "sv"},
		LocationCity: "Stockholm",
		Active:       true,
		UpdatedAt:    time.Now(),
	}
}

func TestRunStoresQualifyingPairs(t *testing.T) {
	job := fixtureJob()
	good := fixtureCandidate("good fit")
	poor := fixtureCandidate("poor fit")
	poor.Skills = []string{"cobol"}
	poor.Seniority = "junior"
	poor.LocationCity = "Berlin"
	poor.Languages = nil

	matches := &stubMatches{}
	svc := fixtureService(t, []*entity.Job{job}, []*entity.Candidate{good, poor}, matches)

	result, err := svc.Run(context.Background(), RunRequest{MinScore: 0.5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Scored != 2 {
		t.Errorf("scored = %d, want 2", result.Scored)
	}
	if result.Stored != 1 {
		t.Errorf("stored = %d, want only the qualifying pair", result.Stored)
	}
	if _, ok := matches.upserts[pairKey(job.ID, good.ID)]; !ok {
		t.Error("qualifying pair was not persisted")
	}
	if _, ok := matches.upserts[pairKey(job.ID, poor.ID)]; ok {
		t.Error("pair below threshold must not be persisted")
	}
}

func TestRunHighThresholdYieldsEmptyResult(t *testing.T) {
	// Without embeddings the semantic factor is unavailable; a threshold
	// above any achievable score returns an empty batch, not an error.
	job := fixtureJob()
	mediocre := fixtureCandidate("mediocre")
	mediocre.Skills = []string{"java"}
	mediocre.Seniority = "junior"

	matches := &stubMatches{}
	svc := fixtureService(t, []*entity.Job{job}, []*entity.Candidate{mediocre}, matches)

	result, err := svc.Run(context.Background(), RunRequest{MinScore: 0.8})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Matches) != 0 || result.Stored != 0 {
		t.Errorf("stored %d matches, want none above 0.8", result.Stored)
	}
	if result.Scored != 1 {
		t.Errorf("scored = %d, scoring must still have happened", result.Scored)
	}
}

func TestRunAppliesHardFilter(t *testing.T) {
	job := fixtureJob()
	junior := fixtureCandidate("junior")
	junior.Seniority = "junior"

	matches := &stubMatches{}
	svc := fixtureService(t, []*entity.Job{job}, []*entity.Candidate{junior}, matches)

	result, err := svc.Run(context.Background(), RunRequest{
		MinScore: 0,
		Filter:   scoring.Filter{MinSeniorityTier: 3},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Excluded != 1 {
		t.Errorf("excluded = %d, want 1", result.Excluded)
	}
	if result.Scored != 0 {
		t.Errorf("scored = %d, filtered candidates must never be scored", result.Scored)
	}
}

func TestRunNamedFilterSet(t *testing.T) {
	job := fixtureJob()
	exec := fixtureCandidate("executive fit")
	exec.Seniority = "principal"
	exec.OnsiteMode = entity.OnsiteModeHybrid
	junior := fixtureCandidate("junior")
	junior.Seniority = "junior"
	junior.OnsiteMode = entity.OnsiteModeHybrid

	matches := &stubMatches{}
	svc := fixtureService(t, []*entity.Job{job}, []*entity.Candidate{exec, junior}, matches)

	result, err := svc.Run(context.Background(), RunRequest{
		MinScore:   0,
		FilterName: "executive",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Excluded != 1 {
		t.Errorf("excluded = %d, the junior must fail the executive seniority floor", result.Excluded)
	}
	if result.Scored != 1 {
		t.Errorf("scored = %d, want only the senior candidate", result.Scored)
	}
}

func TestRunUnknownFilterSet(t *testing.T) {
	svc := fixtureService(t, nil, nil, &stubMatches{})
	_, err := svc.Run(context.Background(), RunRequest{FilterName: "nonexistent"})
	if err == nil {
		t.Fatal("expected error for unknown filter set")
	}
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("error = %v, want an invalid-input error", err)
	}
}

func TestRunExplicitFilterOverridesNamed(t *testing.T) {
	job := fixtureJob()
	junior := fixtureCandidate("junior")
	junior.Seniority = "junior"

	matches := &stubMatches{}
	svc := fixtureService(t, []*entity.Job{job}, []*entity.Candidate{junior}, matches)

	// The explicit filter has no seniority floor, so the named executive set
	// must not apply.
	result, err := svc.Run(context.Background(), RunRequest{
		MinScore:   0,
		FilterName: "executive",
		Filter:     scoring.Filter{RequiredSkills: []string{"go"}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Excluded != 0 {
		t.Errorf("excluded = %d, explicit filter must take precedence", result.Excluded)
	}
	if result.Scored != 1 {
		t.Errorf("scored = %d, want 1", result.Scored)
	}
}

func TestRunUnknownProfile(t *testing.T) {
	svc := fixtureService(t, nil, nil, &stubMatches{})
	if _, err := svc.Run(context.Background(), RunRequest{Profile: "nonexistent"}); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestRunStorageFailureAbortsBatch(t *testing.T) {
	job := fixtureJob()
	cand := fixtureCandidate("fit")
	matches := &stubMatches{upsertErr: errors.New("connection reset")}
	svc := fixtureService(t, []*entity.Job{job}, []*entity.Candidate{cand}, matches)

	if _, err := svc.Run(context.Background(), RunRequest{MinScore: 0.1}); err == nil {
		t.Error("storage failure must abort the batch with an error")
	}
}

func TestRunSemanticFromStoredVectors(t *testing.T) {
	job := fixtureJob()
	cand := fixtureCandidate("fit")

	embeddings := &stubEmbeddings{vectors: map[uuid.UUID][]float32{
		job.ID:  {1, 0, 0},
		cand.ID: {1, 0, 0},
	}}
	matches := &stubMatches{}
	svc := NewService(
		&stubJobs{jobs: []*entity.Job{job}},
		&stubCandidates{candidates: []*entity.Candidate{cand}},
		embeddings,
		matches,
		&stubIndex{},
		nil,
		scoring.BuiltinProfiles(),
		scoring.BuiltinFilters(),
		common.MatchingConfig{Workers: 2, MaxResults: 10},
		zap.NewNop(),
	)

	result, err := svc.Run(context.Background(), RunRequest{MinScore: 0.5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stored != 1 {
		t.Fatalf("stored = %d, want 1", result.Stored)
	}
	m := result.Matches[0]
	sem, ok := m.Reasoning.Factor("semantic")
	if !ok || !sem.Available {
		t.Fatal("semantic factor should be available with stored vectors")
	}
	if sem.Score != 1.0 {
		t.Errorf("identical vectors should give semantic 1.0, got %v", sem.Score)
	}
	if m.Reasoning.Redistributed {
		t.Error("nothing was missing, redistribution flag should be false")
	}
}

func TestRunRanksByScore(t *testing.T) {
	job := fixtureJob()
	best := fixtureCandidate("best")
	weaker := fixtureCandidate("weaker")
	weaker.Skills = []string{"go"} // half the required skills

	matches := &stubMatches{}
	svc := fixtureService(t, []*entity.Job{job}, []*entity.Candidate{weaker, best}, matches)

	result, err := svc.Run(context.Background(), RunRequest{MinScore: 0.1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(result.Matches))
	}
	if result.Matches[0].Score < result.Matches[1].Score {
		t.Error("matches must be ordered by score descending")
	}
	if result.Matches[0].CandidateID != best.ID {
		t.Error("the stronger candidate should rank first")
	}
}

func TestRunMaxResultsCap(t *testing.T) {
	job := fixtureJob()
	var pool []*entity.Candidate
	for i := 0; i < 5; i++ {
		pool = append(pool, fixtureCandidate("candidate"))
	}

	matches := &stubMatches{}
	svc := fixtureService(t, []*entity.Job{job}, pool, matches)

	result, err := svc.Run(context.Background(), RunRequest{MinScore: 0.1, MaxResults: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Matches) != 3 {
		t.Errorf("returned %d matches, want capped at 3", len(result.Matches))
	}
	if result.Stored != 5 {
		t.Errorf("stored = %d; the cap limits the response, not persistence", result.Stored)
	}
}
