package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinProfilesValidate(t *testing.T) {
	for name, p := range BuiltinProfiles() {
		if err := p.Validate(); err != nil {
			t.Errorf("builtin profile %q invalid: %v", name, err)
		}
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile WeightProfile
		wantErr bool
	}{
		{
			name: "valid",
			profile: WeightProfile{
				Name:    "ok",
				Weights: map[string]float64{FactorSemantic: 0.5, FactorSkills: 0.5},
			},
		},
		{
			name: "sum below one",
			profile: WeightProfile{
				Name:    "short",
				Weights: map[string]float64{FactorSemantic: 0.5, FactorSkills: 0.4},
			},
			wantErr: true,
		},
		{
			name: "unknown factor",
			profile: WeightProfile{
				Name:    "bad",
				Weights: map[string]float64{"vibes": 1.0},
			},
			wantErr: true,
		},
		{
			name: "negative weight",
			profile: WeightProfile{
				Name:    "neg",
				Weights: map[string]float64{FactorSemantic: 1.5, FactorSkills: -0.5},
			},
			wantErr: true,
		},
		{
			name:    "no weights",
			profile: WeightProfile{Name: "empty"},
			wantErr: true,
		},
		{
			name: "threshold out of range",
			profile: WeightProfile{
				Name:                "thr",
				Weights:             map[string]float64{FactorSemantic: 1.0},
				FuzzySkillThreshold: 1.5,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProfilesDefaults(t *testing.T) {
	profiles, err := LoadProfiles("")
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}
	if _, ok := profiles["standard"]; !ok {
		t.Error("standard profile missing")
	}
	if _, ok := profiles["executive"]; !ok {
		t.Error("executive profile missing")
	}
}

func TestLoadProfilesFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	content := `profiles:
  - name: standard
    weights:
      semantic: 0.6
      skills: 0.4
  - name: custom
    weights:
      skills: 1.0
    fuzzy_skill_threshold: 0.9
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}

	std := profiles["standard"]
	if got := std.Weights[FactorSemantic]; got != 0.6 {
		t.Errorf("overridden standard semantic weight = %v, want 0.6", got)
	}
	custom, ok := profiles["custom"]
	if !ok {
		t.Fatal("custom profile missing")
	}
	if custom.FuzzySkillThreshold != 0.9 {
		t.Errorf("custom threshold = %v, want 0.9", custom.FuzzySkillThreshold)
	}
	if custom.FuzzySkillCredit != 0.5 {
		t.Errorf("custom credit = %v, want defaulted 0.5", custom.FuzzySkillCredit)
	}
	if _, ok := profiles["executive"]; !ok {
		t.Error("builtin executive profile should survive a file load")
	}
}

func TestLoadProfilesExplicitZeroKnobs(t *testing.T) {
	// An explicit 0 turns fuzzy matching off; it must not be mistaken for an
	// omitted knob and rewritten to the default.
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	content := `profiles:
  - name: strict
    weights:
      skills: 1.0
    fuzzy_skill_threshold: 0
    fuzzy_skill_credit: 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}
	strict := profiles["strict"]
	if strict.FuzzySkillThreshold != 0 {
		t.Errorf("threshold = %v, explicit 0 must be kept", strict.FuzzySkillThreshold)
	}
	if strict.FuzzySkillCredit != 0 {
		t.Errorf("credit = %v, explicit 0 must be kept", strict.FuzzySkillCredit)
	}
}

func TestLoadProfilesRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	content := `profiles:
  - name: broken
    weights:
      semantic: 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfiles(path); err == nil {
		t.Error("expected error for weights not summing to 1")
	}
}
