package scoring

import (
	"math"
	"testing"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSeniorityTier(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"junior", 1},
		{"Mid-level", 2},
		{"senior", 3},
		{"Senior Developer", 3},
		{"lead", 4},
		{"Principal Engineer", 4},
		{"CTO or chief architect", 5},
		{"", 0},
		{"wizard", 0},
	}
	for _, tt := range tests {
		if got := SeniorityTier(tt.label); got != tt.want {
			t.Errorf("SeniorityTier(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestSeniorityScore(t *testing.T) {
	tests := []struct {
		job, cand string
		want      float64
		wantOK    bool
	}{
		{"senior", "senior", 1.0, true},
		{"senior", "mid", 0.7, true},
		{"senior", "junior", 0.4, true},
		{"junior", "executive", 0, true},      // distance 4, floored
		{"", "senior", 0, false},
		{"senior", "ninja", 0, false},
	}
	for _, tt := range tests {
		got, ok := seniorityScore(tt.job, tt.cand)
		if ok != tt.wantOK || !almostEqual(got, tt.want) {
			t.Errorf("seniorityScore(%q, %q) = (%v, %v), want (%v, %v)",
				tt.job, tt.cand, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSkillOverlap(t *testing.T) {
	// One exact match, one miss: mean of 1.0 and 0.
	score, matched, missing := skillOverlap(
		[]string{"python", "azure"}, []string{"python", "aws"}, 0.80, 0.5)
	if !almostEqual(score, 0.5) {
		t.Errorf("score = %v, want 0.5", score)
	}
	if len(matched) != 1 || matched[0] != "python" {
		t.Errorf("matched = %v, want [python]", matched)
	}
	if len(missing) != 1 || missing[0] != "azure" {
		t.Errorf("missing = %v, want [azure]", missing)
	}
}

func TestSkillOverlapFuzzy(t *testing.T) {
	// "postgres" vs "postgresql" is above the 0.8 similarity threshold and
	// earns the partial credit with an annotation.
	score, matched, _ := skillOverlap(
		[]string{"postgres"}, []string{"postgresql"}, 0.80, 0.5)
	if !almostEqual(score, 0.5) {
		t.Errorf("score = %v, want 0.5", score)
	}
	if len(matched) != 1 || matched[0] != "postgres (~postgresql)" {
		t.Errorf("matched = %v, want fuzzy annotation", matched)
	}
}

func TestSkillOverlapCreditConfigurable(t *testing.T) {
	score, _, _ := skillOverlap(
		[]string{"postgres"}, []string{"postgresql"}, 0.80, 0.8)
	if !almostEqual(score, 0.8) {
		t.Errorf("score = %v, want configured credit 0.8", score)
	}
}

func TestSkillOverlapEmptyRequired(t *testing.T) {
	score, _, _ := skillOverlap(nil, []string{"go"}, 0.80, 0.5)
	if score != 0 {
		t.Errorf("score with no required skills = %v, want 0", score)
	}
}

func TestSkillOverlapCaseInsensitive(t *testing.T) {
	score, _, _ := skillOverlap([]string{"Python"}, []string{"python"}, 0.80, 0.5)
	if !almostEqual(score, 1.0) {
		t.Errorf("score = %v, want 1.0", score)
	}
}

func TestLanguageCoverage(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		offered  []string
		want     float64
	}{
		{"no requirement", nil, []string{"sv"}, 1.0},
		{"full", []string{"sv", "en"}, []string{"en", "sv"}, 1.0},
		{"half", []string{"sv", "en"}, []string{"en"}, 0.5},
		{"none", []string{"sv"}, []string{"de"}, 0},
		{"case folded", []string{"SV"}, []string{"sv"}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := languageCoverage(tt.required, tt.offered); !almostEqual(got, tt.want) {
				t.Errorf("languageCoverage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeographyScore(t *testing.T) {
	tests := []struct {
		name   string
		job    entity.Job
		cand   entity.Candidate
		want   float64
		wantOK bool
	}{
		{
			name:   "same city",
			job:    entity.Job{LocationCity: "Stockholm"},
			cand:   entity.Candidate{LocationCity: "stockholm"},
			want:   geoSameCity,
			wantOK: true,
		},
		{
			name:   "same region",
			job:    entity.Job{LocationCity: "Stockholm"},
			cand:   entity.Candidate{LocationCity: "Solna"},
			want:   geoSameRegion,
			wantOK: true,
		},
		{
			name:   "remote posting flattens distance",
			job:    entity.Job{OnsiteMode: entity.OnsiteModeRemote, LocationCity: "Stockholm"},
			cand:   entity.Candidate{LocationCity: "Malmö"},
			want:   geoRemoteFlat,
			wantOK: true,
		},
		{
			name:   "onsite against remote-only is a hard mismatch",
			job:    entity.Job{OnsiteMode: entity.OnsiteModeOnsite, LocationCity: "Stockholm"},
			cand:   entity.Candidate{OnsiteMode: entity.OnsiteModeRemote},
			want:   0,
			wantOK: true,
		},
		{
			name:   "hybrid against remote-only",
			job:    entity.Job{OnsiteMode: entity.OnsiteModeHybrid, LocationCity: "Stockholm"},
			cand:   entity.Candidate{OnsiteMode: entity.OnsiteModeRemote},
			want:   geoHybridGap,
			wantOK: true,
		},
		{
			name:   "same country different region",
			job:    entity.Job{LocationCity: "Stockholm", LocationCountry: "SE"},
			cand:   entity.Candidate{LocationCity: "Malmö", LocationCountry: "SE"},
			want:   geoSameCountry,
			wantOK: true,
		},
		{
			name:   "no signal on posting",
			job:    entity.Job{},
			cand:   entity.Candidate{LocationCity: "Stockholm"},
			want:   0,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := geographyScore(&tt.job, &tt.cand)
			if ok != tt.wantOK || !almostEqual(got, tt.want) {
				t.Errorf("geographyScore = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRoleSeniorityScore(t *testing.T) {
	job := &entity.Job{Role: "backend developer", Seniority: "senior"}

	full, ok := roleSeniorityScore(job, &entity.Candidate{Role: "backend developer", Seniority: "senior"})
	if !ok || !almostEqual(full, 1.0) {
		t.Errorf("exact pair = (%v, %v), want (1.0, true)", full, ok)
	}

	// Seniority matches, role differs: 0.7*1.0 + 0.3*0.
	partial, ok := roleSeniorityScore(job, &entity.Candidate{Role: "data engineer", Seniority: "senior"})
	if !ok || !almostEqual(partial, 0.7) {
		t.Errorf("role mismatch = (%v, %v), want (0.7, true)", partial, ok)
	}

	// Neither signal available.
	if _, ok := roleSeniorityScore(&entity.Job{}, &entity.Candidate{}); ok {
		t.Error("expected unavailable with no role or seniority")
	}
}

func TestLeadershipScore(t *testing.T) {
	job := &entity.Job{Role: "Interim CTO", Seniority: "executive"}

	high, ok := leadershipScore(job, &entity.Candidate{Role: "CTO", Seniority: "chief"})
	if !ok || !almostEqual(high, 1.0) {
		t.Errorf("executive pair = (%v, %v), want (1.0, true)", high, ok)
	}

	low, ok := leadershipScore(job, &entity.Candidate{Role: "developer", Seniority: "junior"})
	if !ok || low >= high {
		t.Errorf("junior candidate should score below executive: %v >= %v", low, high)
	}
}

func TestIndustryScore(t *testing.T) {
	job := &entity.Job{Skills: []string{"digital transformation", "go"}}

	full, ok := industryScore(job, &entity.Candidate{Skills: []string{"digital transformation"}})
	if !ok || !almostEqual(full, 1.0) {
		t.Errorf("covered domain skill = (%v, %v), want (1.0, true)", full, ok)
	}

	if _, ok := industryScore(&entity.Job{Skills: []string{"go"}}, &entity.Candidate{}); ok {
		t.Error("expected unavailable when the posting lists no domain skills")
	}
}
