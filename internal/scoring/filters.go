package scoring

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

// Filter is a set of hard excludes from scanning configuration, applied
// before scoring. A filtered-out candidate is never scored, as opposed to
// being scored with a penalty.
type Filter struct {
	// Name identifies a configured filter set; empty for ad-hoc filters.
	Name string `mapstructure:"name"`
	// MinSeniorityTier excludes candidates below the tier (see SeniorityTier).
	MinSeniorityTier int `mapstructure:"min_seniority_tier"`
	// RequiredSkills must all be present as canonical tokens.
	RequiredSkills []string `mapstructure:"required_skills"`
	// RequiredLanguages must all be listed by the candidate.
	RequiredLanguages []string `mapstructure:"required_languages"`
	// Locations restricts candidates to the named cities; remote-only
	// candidates pass regardless.
	Locations []string `mapstructure:"locations"`
	// OnsiteModes restricts the candidate's onsite-mode preference.
	OnsiteModes []string `mapstructure:"onsite_modes"`
	// Roles restricts the candidate's canonical role title.
	Roles []string `mapstructure:"roles"`
}

// IsZero reports whether no restriction is configured.
func (f Filter) IsZero() bool {
	return f.MinSeniorityTier == 0 &&
		len(f.RequiredSkills) == 0 &&
		len(f.RequiredLanguages) == 0 &&
		len(f.Locations) == 0 &&
		len(f.OnsiteModes) == 0 &&
		len(f.Roles) == 0
}

// Exclude reports whether the candidate fails a required restriction, with
// the first failing reason.
func (f Filter) Exclude(c *entity.Candidate) (bool, string) {
	if f.MinSeniorityTier > 0 && SeniorityTier(c.Seniority) < f.MinSeniorityTier {
		return true, "below required seniority tier"
	}

	if len(f.RequiredSkills) > 0 {
		have := foldSet(c.Skills)
		for _, s := range f.RequiredSkills {
			if !have[strings.ToLower(s)] {
				return true, "missing required skill: " + s
			}
		}
	}

	if len(f.RequiredLanguages) > 0 {
		have := foldSet(c.Languages)
		for _, l := range f.RequiredLanguages {
			if !have[strings.ToLower(l)] {
				return true, "missing required language: " + l
			}
		}
	}

	if len(f.Locations) > 0 && c.OnsiteMode != entity.OnsiteModeRemote {
		if !containsFold(f.Locations, c.LocationCity) {
			return true, "outside configured locations"
		}
	}

	if len(f.OnsiteModes) > 0 && !containsFold(f.OnsiteModes, string(c.OnsiteMode)) {
		return true, "onsite-mode preference not accepted"
	}

	if len(f.Roles) > 0 && !containsFold(f.Roles, c.Role) {
		return true, "role not in configured set"
	}

	return false, ""
}

// ExecutiveFilter is the shipped default restriction set for the executive
// profile.
func ExecutiveFilter() Filter {
	return Filter{
		Name:              "executive",
		MinSeniorityTier:  3,
		RequiredLanguages: []string{"sv", "en"},
		OnsiteModes:       []string{"onsite", "hybrid", "remote"},
	}
}

// BuiltinFilters returns the shipped filter sets keyed by name.
func BuiltinFilters() map[string]Filter {
	exec := ExecutiveFilter()
	return map[string]Filter{exec.Name: exec}
}

// LoadFilters reads named hard-filter sets from a YAML file, usually the
// same one that carries the weight profiles. The result always contains the
// builtin sets; file entries with the same name replace them.
//
// File layout:
//
//	filters:
//	  - name: nordics-senior
//	    min_seniority_tier: 3
//	    required_languages: [sv, en]
//	    locations: [stockholm, oslo]
func LoadFilters(path string) (map[string]Filter, error) {
	out := BuiltinFilters()
	if path == "" {
		return out, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read filter sets: %w", err)
	}

	var file struct {
		Filters []Filter `mapstructure:"filters"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode filter sets: %w", err)
	}

	for _, f := range file.Filters {
		if f.Name == "" {
			return nil, fmt.Errorf("filter set without a name")
		}
		if f.IsZero() {
			return nil, fmt.Errorf("filter set %q has no restrictions", f.Name)
		}
		for _, m := range f.OnsiteModes {
			if _, ok := entity.ParseOnsiteMode(m); !ok {
				return nil, fmt.Errorf("filter set %q: unknown onsite mode %q", f.Name, m)
			}
		}
		out[f.Name] = f
	}
	return out, nil
}

func foldSet(list []string) map[string]bool {
	m := make(map[string]bool, len(list))
	for _, s := range list {
		m[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return m
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
