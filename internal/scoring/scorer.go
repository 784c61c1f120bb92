package scoring

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

// PairInput is one already-canonicalized (job, candidate) pair. Semantic is
// the cosine similarity of their embeddings when both exist; nil marks the
// semantic factor unavailable.
type PairInput struct {
	Job       *entity.Job
	Candidate *entity.Candidate
	Semantic  *float64
}

// Scorer computes the multi-factor compatibility score for a pair. It holds
// no mutable state; the weight profile is an argument, so different profiles
// can score concurrently.
type Scorer struct {
	logger *zap.Logger
}

func NewScorer(logger *zap.Logger) *Scorer {
	return &Scorer{logger: logger}
}

type factorResult struct {
	score     float64
	available bool
	note      string
}

// Score returns the total in [0,1] plus the full reasoning breakdown. When a
// factor is unavailable its weight is redistributed proportionally across
// the remaining factors, never silently scored as zero; the redistribution
// is recorded in the breakdown so it is auditable.
func (s *Scorer) Score(profile WeightProfile, in PairInput) (entity.Breakdown, error) {
	if in.Job == nil || in.Candidate == nil {
		return entity.Breakdown{}, fmt.Errorf("scoring pair: job and candidate are required")
	}
	if err := profile.Validate(); err != nil {
		return entity.Breakdown{}, err
	}

	bd := entity.Breakdown{Profile: profile.Name}
	results := make(map[string]factorResult, len(profile.Weights))

	for name := range profile.Weights {
		results[name] = s.computeFactor(name, profile, in, &bd)
	}

	// Effective weight: proportional share of the available factors' weights.
	var availableWeight float64
	for name, w := range profile.Weights {
		if results[name].available {
			availableWeight += w
		}
	}

	names := make([]string, 0, len(profile.Weights))
	for name := range profile.Weights {
		names = append(names, name)
	}
	sort.Strings(names)

	var total float64
	for _, name := range names {
		res := results[name]
		fs := entity.FactorScore{
			Name:      name,
			Available: res.available,
			Score:     res.score,
			Note:      res.note,
		}
		if res.available && availableWeight > 0 {
			fs.Weight = profile.Weights[name] / availableWeight
			fs.Weighted = fs.Weight * res.score
			total += fs.Weighted
		} else if !res.available {
			bd.Redistributed = true
			if fs.Note == "" {
				fs.Note = "unavailable"
			}
		}
		bd.Factors = append(bd.Factors, fs)
	}

	if total < 0 {
		total = 0
	}
	if total > 1 {
		total = 1
	}
	bd.Total = total
	s.annotate(&bd, in)
	return bd, nil
}

func (s *Scorer) computeFactor(name string, profile WeightProfile, in PairInput, bd *entity.Breakdown) factorResult {
	job, cand := in.Job, in.Candidate

	switch name {
	case FactorSemantic:
		if in.Semantic == nil {
			return factorResult{note: "unavailable: missing embedding"}
		}
		return factorResult{score: *in.Semantic, available: true}

	case FactorSkills:
		score, matched, missing := skillOverlap(job.Skills, cand.Skills,
			profile.FuzzySkillThreshold, profile.FuzzySkillCredit)
		bd.SkillsMatched = matched
		bd.SkillsMissing = missing
		return factorResult{score: score, available: true}

	case FactorRoleSeniority:
		score, ok := roleSeniorityScore(job, cand)
		if !ok {
			return factorResult{note: "unavailable: no role or seniority on record"}
		}
		return factorResult{score: score, available: true}

	case FactorSeniority:
		score, ok := seniorityScore(job.Seniority, cand.Seniority)
		if !ok {
			return factorResult{note: "unavailable: no seniority signal"}
		}
		return factorResult{score: score, available: true}

	case FactorRole:
		score, ok := roleScore(job.Role, cand.Role)
		if !ok {
			return factorResult{note: "unavailable: no role on record"}
		}
		return factorResult{score: score, available: true}

	case FactorLanguages:
		return factorResult{score: languageCoverage(job.Languages, cand.Languages), available: true}

	case FactorGeography:
		score, ok := geographyScore(job, cand)
		if !ok {
			return factorResult{note: "unavailable: no location on posting"}
		}
		return factorResult{score: score, available: true}

	case FactorIndustry:
		score, ok := industryScore(job, cand)
		if !ok {
			return factorResult{note: "unavailable: no domain skills on posting"}
		}
		return factorResult{score: score, available: true}

	case FactorLeadership:
		score, ok := leadershipScore(job, cand)
		if !ok {
			return factorResult{note: "unavailable: no leadership signal"}
		}
		return factorResult{score: score, available: true}
	}

	// Validate rejects unknown factors; this is unreachable with a valid profile.
	return factorResult{note: "unavailable: unknown factor"}
}

// annotate fills the human-facing strengths/concerns summary carried inside
// the reasoning breakdown.
func (s *Scorer) annotate(bd *entity.Breakdown, in PairInput) {
	if f, ok := bd.Factor(FactorSemantic); ok && f.Available && f.Score >= 0.7 {
		bd.Strengths = append(bd.Strengths, "strong overall profile match")
	}
	if f, ok := bd.Factor(FactorSkills); ok && f.Available {
		switch {
		case f.Score >= 0.8:
			bd.Strengths = append(bd.Strengths,
				fmt.Sprintf("excellent skills match (%d/%d required)", len(bd.SkillsMatched), len(in.Job.Skills)))
		case f.Score >= 0.6:
			bd.Strengths = append(bd.Strengths,
				fmt.Sprintf("good skills match (%d/%d required)", len(bd.SkillsMatched), len(in.Job.Skills)))
		default:
			bd.Concerns = append(bd.Concerns,
				fmt.Sprintf("limited skills match (%d/%d required)", len(bd.SkillsMatched), len(in.Job.Skills)))
		}
	}
	for _, name := range []string{FactorRoleSeniority, FactorSeniority} {
		if f, ok := bd.Factor(name); ok && f.Available {
			if f.Score >= 0.9 {
				bd.Strengths = append(bd.Strengths, "seniority level matches")
			} else if f.Score <= 0.3 {
				bd.Concerns = append(bd.Concerns, "seniority level mismatch")
			}
			break
		}
	}
	if f, ok := bd.Factor(FactorLanguages); ok && f.Available {
		if f.Score >= 0.999 {
			bd.Strengths = append(bd.Strengths, "meets language requirements")
		} else if f.Score < 0.999 && len(in.Job.Languages) > 0 {
			bd.Concerns = append(bd.Concerns, "may not meet all language requirements")
		}
	}
	if f, ok := bd.Factor(FactorGeography); ok && f.Available {
		if f.Score >= 0.6 {
			bd.Strengths = append(bd.Strengths, "good location match")
		} else if f.Score <= 0.3 {
			bd.Concerns = append(bd.Concerns, "location mismatch")
		}
	}
	if in.Candidate.AvailabilityFrom != nil {
		bd.Strengths = append(bd.Strengths,
			"available from "+in.Candidate.AvailabilityFrom.Format("2006-01-02"))
	}

	switch {
	case bd.Total >= 0.8:
		bd.Summary = fmt.Sprintf("match score %.0f%%: excellent candidate for this position", bd.Total*100)
	case bd.Total >= 0.6:
		bd.Summary = fmt.Sprintf("match score %.0f%%: good candidate worth considering", bd.Total*100)
	default:
		bd.Summary = fmt.Sprintf("match score %.0f%%: potential candidate with some gaps", bd.Total*100)
	}
}
