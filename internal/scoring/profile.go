package scoring

import (
	"fmt"
	"math"

	"github.com/spf13/viper"
)

// Factor names used in weight profiles and reasoning breakdowns.
const (
	FactorSemantic      = "semantic"
	FactorSkills        = "skills"
	FactorRoleSeniority = "role_seniority"
	FactorSeniority     = "seniority"
	FactorRole          = "role"
	FactorLanguages     = "languages"
	FactorGeography     = "geography"
	FactorIndustry      = "industry"
	FactorLeadership    = "leadership"
)

var knownFactors = map[string]bool{
	FactorSemantic:      true,
	FactorSkills:        true,
	FactorRoleSeniority: true,
	FactorSeniority:     true,
	FactorRole:          true,
	FactorLanguages:     true,
	FactorGeography:     true,
	FactorIndustry:      true,
	FactorLeadership:    true,
}

const weightTolerance = 1e-9

// WeightProfile assigns each scoring factor its share of the total score.
// It is passed into the scorer per call, so multiple profiles can run
// concurrently in one process without shared mutable state.
type WeightProfile struct {
	Name    string             `mapstructure:"name"`
	Weights map[string]float64 `mapstructure:"weights"`

	// Fuzzy skill matching knobs; see the deployment defaults below.
	FuzzySkillThreshold float64 `mapstructure:"fuzzy_skill_threshold"`
	FuzzySkillCredit    float64 `mapstructure:"fuzzy_skill_credit"`
}

// Validate checks that every factor is known, no weight is negative, and the
// weights sum to 1 within tolerance.
func (p WeightProfile) Validate() error {
	if len(p.Weights) == 0 {
		return fmt.Errorf("profile %q has no weights", p.Name)
	}
	var sum float64
	for name, w := range p.Weights {
		if !knownFactors[name] {
			return fmt.Errorf("profile %q references unknown factor %q", p.Name, name)
		}
		if w < 0 {
			return fmt.Errorf("profile %q has negative weight for %q", p.Name, name)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("profile %q weights sum to %v, want 1.0", p.Name, sum)
	}
	if p.FuzzySkillThreshold < 0 || p.FuzzySkillThreshold > 1 {
		return fmt.Errorf("profile %q fuzzy skill threshold out of range", p.Name)
	}
	if p.FuzzySkillCredit < 0 || p.FuzzySkillCredit > 1 {
		return fmt.Errorf("profile %q fuzzy skill credit out of range", p.Name)
	}
	return nil
}

// StandardProfile is the default for contract/consultant matching.
func StandardProfile() WeightProfile {
	return WeightProfile{
		Name: "standard",
		Weights: map[string]float64{
			FactorSemantic:      0.45,
			FactorSkills:        0.25,
			FactorRoleSeniority: 0.15,
			FactorLanguages:     0.10,
			FactorGeography:     0.05,
		},
		FuzzySkillThreshold: 0.80,
		FuzzySkillCredit:    0.5,
	}
}

// ExecutiveProfile weights seniority and leadership signals over raw skill
// overlap, for interim-executive placements.
func ExecutiveProfile() WeightProfile {
	return WeightProfile{
		Name: "executive",
		Weights: map[string]float64{
			FactorSemantic:   0.35,
			FactorSeniority:  0.25,
			FactorRole:       0.15,
			FactorIndustry:   0.10,
			FactorLeadership: 0.10,
			FactorGeography:  0.05,
		},
		FuzzySkillThreshold: 0.80,
		FuzzySkillCredit:    0.5,
	}
}

// BuiltinProfiles returns the shipped profiles keyed by name.
func BuiltinProfiles() map[string]WeightProfile {
	std, exec := StandardProfile(), ExecutiveProfile()
	return map[string]WeightProfile{
		std.Name:  std,
		exec.Name: exec,
	}
}

// LoadProfiles reads additional or overriding weight profiles from a YAML
// file. The result always contains the builtin profiles; file entries with
// the same name replace them.
//
// File layout:
//
//	profiles:
//	  - name: standard
//	    weights:
//	      semantic: 0.5
//	      skills: 0.5
//	    fuzzy_skill_threshold: 0.8
//	    fuzzy_skill_credit: 0.5
func LoadProfiles(path string) (map[string]WeightProfile, error) {
	out := BuiltinProfiles()
	if path == "" {
		return out, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read weight profiles: %w", err)
	}

	// Pointer fields distinguish an explicit 0 from an omitted knob, so a
	// profile can turn fuzzy credit off entirely.
	var file struct {
		Profiles []struct {
			Name                string             `mapstructure:"name"`
			Weights             map[string]float64 `mapstructure:"weights"`
			FuzzySkillThreshold *float64           `mapstructure:"fuzzy_skill_threshold"`
			FuzzySkillCredit    *float64           `mapstructure:"fuzzy_skill_credit"`
		} `mapstructure:"profiles"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode weight profiles: %w", err)
	}

	for _, raw := range file.Profiles {
		p := WeightProfile{
			Name:                raw.Name,
			Weights:             raw.Weights,
			FuzzySkillThreshold: 0.80,
			FuzzySkillCredit:    0.5,
		}
		if raw.FuzzySkillThreshold != nil {
			p.FuzzySkillThreshold = *raw.FuzzySkillThreshold
		}
		if raw.FuzzySkillCredit != nil {
			p.FuzzySkillCredit = *raw.FuzzySkillCredit
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out[p.Name] = p
	}
	return out, nil
}
