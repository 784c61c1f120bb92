package entity

import (
	"time"

	"github.com/google/uuid"
)

// OnsiteMode describes where the work happens.
type OnsiteMode string

const (
	OnsiteModeOnsite OnsiteMode = "onsite"
	OnsiteModeRemote OnsiteMode = "remote"
	OnsiteModeHybrid OnsiteMode = "hybrid"
)

// ParseOnsiteMode validates a raw onsite-mode string. Empty input is accepted
// and returned as-is since most sources omit the field.
func ParseOnsiteMode(s string) (OnsiteMode, bool) {
	switch OnsiteMode(s) {
	case "", OnsiteModeOnsite, OnsiteModeRemote, OnsiteModeHybrid:
		return OnsiteMode(s), true
	}
	return "", false
}

// Job represents a job posting for data transfer between layers.
type Job struct {
	ID              uuid.UUID  `json:"id"`
	JobUID          string     `json:"job_uid"`
	Source          string     `json:"source"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Skills          []string   `json:"skills,omitempty"`
	Role            string     `json:"role,omitempty"`
	Seniority       string     `json:"seniority,omitempty"`
	Languages       []string   `json:"languages,omitempty"`
	LocationCity    string     `json:"location_city,omitempty"`
	LocationCountry string     `json:"location_country,omitempty"`
	OnsiteMode      OnsiteMode `json:"onsite_mode,omitempty"`
	Duration        string     `json:"duration,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	CompanyID       *uuid.UUID `json:"company_id,omitempty"`
	BrokerID        *uuid.UUID `json:"broker_id,omitempty"`
	URL             string     `json:"url"`
	PostedAt        *time.Time `json:"posted_at,omitempty"`
	ETag            string     `json:"etag,omitempty"`
	LastModified    string     `json:"last_modified,omitempty"`
	ScrapedAt       time.Time  `json:"scraped_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
