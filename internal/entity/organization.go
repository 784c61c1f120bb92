package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrgKind distinguishes end clients from staffing brokers. Both resolve
// through the same alias machinery.
type OrgKind string

const (
	OrgKindCompany OrgKind = "company"
	OrgKindBroker  OrgKind = "broker"
)

// Organization is a canonical company or broker identity plus every raw
// spelling it has been seen under.
type Organization struct {
	ID             uuid.UUID `json:"id"`
	Kind           OrgKind   `json:"kind"`
	NormalizedName string    `json:"normalized_name"`
	Aliases        []string  `json:"aliases"`
	PortalURL      string    `json:"portal_url,omitempty"`
	NeedsReview    bool      `json:"needs_review"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TermKind selects the skill or role vocabulary.
type TermKind string

const (
	TermKindSkill TermKind = "skill"
	TermKindRole  TermKind = "role"
)

// TermAlias maps a raw skill/role spelling to its canonical term.
type TermAlias struct {
	Kind      TermKind `json:"kind"`
	Canonical string   `json:"canonical"`
	Alias     string   `json:"alias"`
}
