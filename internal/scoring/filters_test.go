package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func TestFilterIsZero(t *testing.T) {
	if !(Filter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	if (Filter{MinSeniorityTier: 1}).IsZero() {
		t.Error("filter with a restriction should not be zero")
	}
}

func TestFilterExclude(t *testing.T) {
	senior := &entity.Candidate{
		Seniority:    "senior",
		Skills:       []string{"go", "kubernetes"},
		Languages:    []string{"sv", "en"},
		LocationCity: "Stockholm",
		OnsiteMode:   entity.OnsiteModeHybrid,
		Role:         "backend developer",
	}

	tests := []struct {
		name     string
		filter   Filter
		cand     *entity.Candidate
		excluded bool
	}{
		{"zero filter passes everyone", Filter{}, senior, false},
		{
			"below seniority tier",
			Filter{MinSeniorityTier: 3},
			&entity.Candidate{Seniority: "junior"},
			true,
		},
		{
			"at seniority tier",
			Filter{MinSeniorityTier: 3},
			senior,
			false,
		},
		{
			"missing required skill",
			Filter{RequiredSkills: []string{"go", "rust"}},
			senior,
			true,
		},
		{
			"has required skills case-insensitive",
			Filter{RequiredSkills: []string{"Go", "Kubernetes"}},
			senior,
			false,
		},
		{
			"missing required language",
			Filter{RequiredLanguages: []string{"de"}},
			senior,
			true,
		},
		{
			"outside configured locations",
			Filter{Locations: []string{"Malmö"}},
			senior,
			true,
		},
		{
			"remote candidate passes location restriction",
			Filter{Locations: []string{"Malmö"}},
			&entity.Candidate{OnsiteMode: entity.OnsiteModeRemote, LocationCity: "Stockholm"},
			false,
		},
		{
			"role not in set",
			Filter{Roles: []string{"data engineer"}},
			senior,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			excluded, reason := tt.filter.Exclude(tt.cand)
			if excluded != tt.excluded {
				t.Errorf("Exclude() = (%v, %q), want excluded=%v", excluded, reason, tt.excluded)
			}
			if excluded && reason == "" {
				t.Error("an exclusion must carry a reason")
			}
		})
	}
}

func TestExecutiveFilter(t *testing.T) {
	f := ExecutiveFilter()

	exec := &entity.Candidate{
		Seniority:  "executive",
		Languages:  []string{"sv", "en"},
		OnsiteMode: entity.OnsiteModeHybrid,
	}
	if excluded, reason := f.Exclude(exec); excluded {
		t.Errorf("executive candidate excluded: %s", reason)
	}

	junior := &entity.Candidate{
		Seniority:  "junior",
		Languages:  []string{"sv", "en"},
		OnsiteMode: entity.OnsiteModeHybrid,
	}
	if excluded, _ := f.Exclude(junior); !excluded {
		t.Error("junior candidate should be excluded by the executive filter")
	}
}

func TestLoadFiltersDefaults(t *testing.T) {
	filters, err := LoadFilters("")
	if err != nil {
		t.Fatalf("LoadFilters: %v", err)
	}
	exec, ok := filters["executive"]
	if !ok {
		t.Fatal("builtin executive filter missing")
	}
	if exec.MinSeniorityTier != 3 {
		t.Errorf("executive seniority floor = %d, want 3", exec.MinSeniorityTier)
	}
}

func TestLoadFiltersFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	content := `filters:
  - name: nordics-senior
    min_seniority_tier: 3
    required_languages: [sv, en]
    locations: [stockholm, oslo]
  - name: executive
    min_seniority_tier: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	filters, err := LoadFilters(path)
	if err != nil {
		t.Fatalf("LoadFilters: %v", err)
	}
	nordics, ok := filters["nordics-senior"]
	if !ok {
		t.Fatal("file-defined filter set missing")
	}
	if len(nordics.Locations) != 2 {
		t.Errorf("locations = %v, want two cities", nordics.Locations)
	}
	if got := filters["executive"].MinSeniorityTier; got != 4 {
		t.Errorf("file entry must replace the builtin: floor = %d, want 4", got)
	}
}

func TestLoadFiltersRejectsBadSets(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing name",
			content: `filters:
  - min_seniority_tier: 3
`,
		},
		{
			name: "no restrictions",
			content: `filters:
  - name: empty
`,
		},
		{
			name: "unknown onsite mode",
			content: `filters:
  - name: bad-mode
    onsite_modes: [telepathic]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "profiles.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFilters(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
