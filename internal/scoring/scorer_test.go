package scoring

import (
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func testPair() (*entity.Job, *entity.Candidate) {
	job := &entity.Job{
		Title:        "Senior Backend Developer",
		Skills:       []string{"go", "postgresql"},
		Role:         "backend developer",
		Seniority:    "senior",
		Languages:    []string{"en"},
		LocationCity: "Stockholm",
	}
	cand := &entity.Candidate{
		Name:         "Test Candidate",
		Skills:       []string{"go", "postgresql"},
		Role:         "backend developer",
		Seniority:    "senior",
		Languages:    []string{"en", "sv"},
		LocationCity: "Stockholm",
	}
	return job, cand
}

func TestScoreFullAvailability(t *testing.T) {
	scorer := NewScorer(zap.NewNop())
	job, cand := testPair()
	sim := 0.9

	bd, err := scorer.Score(StandardProfile(), PairInput{Job: job, Candidate: cand, Semantic: &sim})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if bd.Redistributed {
		t.Error("no factor was missing, redistribution flag should be false")
	}
	if bd.Total < 0 || bd.Total > 1 {
		t.Errorf("total %v outside [0,1]", bd.Total)
	}
	// Everything but semantic is a perfect match: 0.45*0.9 + 0.55*1.0.
	want := 0.45*0.9 + 0.55
	if math.Abs(bd.Total-want) > 1e-9 {
		t.Errorf("total = %v, want %v", bd.Total, want)
	}

	// Weighted contributions must reproduce the total.
	var sum float64
	for _, f := range bd.Factors {
		sum += f.Weighted
	}
	if math.Abs(sum-bd.Total) > 1e-9 {
		t.Errorf("factor contributions sum to %v, total is %v", sum, bd.Total)
	}
}

func TestScoreMissingSemanticRedistributes(t *testing.T) {
	scorer := NewScorer(zap.NewNop())
	job, cand := testPair()

	bd, err := scorer.Score(StandardProfile(), PairInput{Job: job, Candidate: cand})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if !bd.Redistributed {
		t.Error("missing semantic factor must set the redistribution flag")
	}
	sem, ok := bd.Factor(FactorSemantic)
	if !ok {
		t.Fatal("semantic factor missing from breakdown")
	}
	if sem.Available {
		t.Error("semantic factor should be marked unavailable")
	}
	if !strings.Contains(sem.Note, "unavailable") {
		t.Errorf("semantic note = %q, want an unavailable marker", sem.Note)
	}
	if sem.Weight != 0 || sem.Weighted != 0 {
		t.Errorf("unavailable factor must not contribute: weight=%v weighted=%v", sem.Weight, sem.Weighted)
	}

	// The remaining factors are perfect matches, so after proportional
	// redistribution the total is 1.0, not 0.55.
	if math.Abs(bd.Total-1.0) > 1e-9 {
		t.Errorf("total = %v, want 1.0 after redistribution", bd.Total)
	}

	// Effective weights of available factors must sum to 1.
	var weightSum float64
	for _, f := range bd.Factors {
		if f.Available {
			weightSum += f.Weight
		}
	}
	if math.Abs(weightSum-1.0) > 1e-9 {
		t.Errorf("effective weights sum to %v, want 1.0", weightSum)
	}
}

func TestScoreRedistributionProportions(t *testing.T) {
	scorer := NewScorer(zap.NewNop())
	job, cand := testPair()

	bd, err := scorer.Score(StandardProfile(), PairInput{Job: job, Candidate: cand})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	// skills held 0.25 of 1.0; with semantic's 0.45 gone it holds 0.25/0.55.
	skills, _ := bd.Factor(FactorSkills)
	want := 0.25 / 0.55
	if math.Abs(skills.Weight-want) > 1e-9 {
		t.Errorf("skills effective weight = %v, want %v", skills.Weight, want)
	}
}

func TestScoreDeterministicFactorOrder(t *testing.T) {
	scorer := NewScorer(zap.NewNop())
	job, cand := testPair()
	sim := 0.5
	in := PairInput{Job: job, Candidate: cand, Semantic: &sim}

	first, err := scorer.Score(StandardProfile(), in)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := scorer.Score(StandardProfile(), in)
		if err != nil {
			t.Fatal(err)
		}
		if again.Total != first.Total {
			t.Fatalf("total changed between runs: %v vs %v", again.Total, first.Total)
		}
		for j := range first.Factors {
			if again.Factors[j].Name != first.Factors[j].Name {
				t.Fatalf("factor order changed between runs")
			}
		}
	}
}

func TestScoreRejectsNilPair(t *testing.T) {
	scorer := NewScorer(zap.NewNop())
	if _, err := scorer.Score(StandardProfile(), PairInput{}); err == nil {
		t.Error("expected error for nil job and candidate")
	}
}

func TestScoreRejectsInvalidProfile(t *testing.T) {
	scorer := NewScorer(zap.NewNop())
	job, cand := testPair()
	bad := WeightProfile{Name: "bad", Weights: map[string]float64{FactorSkills: 0.5}}
	if _, err := scorer.Score(bad, PairInput{Job: job, Candidate: cand}); err == nil {
		t.Error("expected error for profile weights not summing to 1")
	}
}

func TestScoreExecutiveProfile(t *testing.T) {
	scorer := NewScorer(zap.NewNop())
	job := &entity.Job{
		Title:        "Interim CTO",
		Role:         "cto",
		Seniority:    "executive",
		Skills:       []string{"digital transformation"},
		LocationCity: "Stockholm",
	}
	cand := &entity.Candidate{
		Name:         "Exec Candidate",
		Role:         "cto",
		Seniority:    "chief",
		Skills:       []string{"digital transformation"},
		LocationCity: "Stockholm",
	}
	sim := 1.0

	bd, err := scorer.Score(ExecutiveProfile(), PairInput{Job: job, Candidate: cand, Semantic: &sim})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(bd.Total-1.0) > 1e-9 {
		t.Errorf("perfect executive pair total = %v, want 1.0", bd.Total)
	}
	if bd.Profile != "executive" {
		t.Errorf("breakdown profile = %q, want executive", bd.Profile)
	}
}

func TestScoreBreakdownAnnotations(t *testing.T) {
	scorer := NewScorer(zap.NewNop())
	job, cand := testPair()
	sim := 0.9

	bd, err := scorer.Score(StandardProfile(), PairInput{Job: job, Candidate: cand, Semantic: &sim})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if len(bd.Strengths) == 0 {
		t.Error("a near-perfect pair should list strengths")
	}
	if bd.Summary == "" {
		t.Error("summary must always be set")
	}
	if len(bd.SkillsMatched) != 2 {
		t.Errorf("skills matched = %v, want both", bd.SkillsMatched)
	}
}
