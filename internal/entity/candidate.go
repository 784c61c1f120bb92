package entity

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents a consultant profile for data transfer between layers.
type Candidate struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Role             string     `json:"role,omitempty"`
	Seniority        string     `json:"seniority,omitempty"`
	Skills           []string   `json:"skills,omitempty"`
	Languages        []string   `json:"languages,omitempty"`
	LocationCity     string     `json:"location_city,omitempty"`
	LocationCountry  string     `json:"location_country,omitempty"`
	OnsiteMode       OnsiteMode `json:"onsite_mode,omitempty"`
	AvailabilityFrom *time.Time `json:"availability_from,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	ProfileURL       string     `json:"profile_url,omitempty"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
