package entity

import (
	"time"

	"github.com/google/uuid"
)

// FactorScore is one factor's contribution to a match score. Weight is the
// effective weight after any redistribution of unavailable factors, so the
// sum of weighted contributions always reproduces the total.
type FactorScore struct {
	Name      string  `json:"name"`
	Available bool    `json:"available"`
	Score     float64 `json:"score"`
	Weight    float64 `json:"weight"`
	Weighted  float64 `json:"weighted"`
	Note      string  `json:"note,omitempty"`
}

// Breakdown is the structured reasoning persisted with every match. It is
// sufficient for a caller to render "why this match" without re-deriving
// anything.
type Breakdown struct {
	Profile       string        `json:"profile"`
	Total         float64       `json:"total"`
	Factors       []FactorScore `json:"factors"`
	Redistributed bool          `json:"redistributed"`
	SkillsMatched []string      `json:"skills_matched,omitempty"`
	SkillsMissing []string      `json:"skills_missing,omitempty"`
	Strengths     []string      `json:"strengths,omitempty"`
	Concerns      []string      `json:"concerns,omitempty"`
	Summary       string        `json:"summary,omitempty"`
}

// Factor returns the named factor score, if present.
func (b Breakdown) Factor(name string) (FactorScore, bool) {
	for _, f := range b.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return FactorScore{}, false
}

// Match is a scored (job, candidate) pair.
type Match struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Score       float64   `json:"score"`
	Reasoning   Breakdown `json:"reasoning"`
	CreatedAt   time.Time `json:"created_at"`

	// Populated on ranked queries for deterministic tie-breaking.
	JobPostedAt        *time.Time `json:"job_posted_at,omitempty"`
	CandidateUpdatedAt *time.Time `json:"candidate_updated_at,omitempty"`
}
