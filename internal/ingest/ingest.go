// Package ingest accepts raw job and candidate records from external
// sources, validates them, canonicalizes names and terms, and persists the
// normalized result. Embedding generation is queued asynchronously so a slow
// or unavailable embedding backend never blocks ingestion.
package ingest

import (
	"context"
	"time"
)

// RawJob is a source-supplied posting before canonicalization. Organization
// names arrive as free text and are resolved to canonical records during
// ingestion.
type RawJob struct {
	JobUID          string     `json:"job_uid"`
	Source          string     `json:"source"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	CompanyName     string     `json:"company_name,omitempty"`
	BrokerName      string     `json:"broker_name,omitempty"`
	Skills          []string   `json:"skills,omitempty"`
	Role            string     `json:"role,omitempty"`
	Seniority       string     `json:"seniority,omitempty"`
	Languages       []string   `json:"languages,omitempty"`
	LocationCity    string     `json:"location_city,omitempty"`
	LocationCountry string     `json:"location_country,omitempty"`
	OnsiteMode      string     `json:"onsite_mode,omitempty"`
	Duration        string     `json:"duration,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	URL             string     `json:"url"`
	PostedAt        *time.Time `json:"posted_at,omitempty"`
	ETag            string     `json:"etag,omitempty"`
	LastModified    string     `json:"last_modified,omitempty"`
}

// RawCandidate is a consultant profile as supplied by the staffing team.
// A set ID updates the existing profile instead of creating a new one.
type RawCandidate struct {
	ID               string     `json:"id,omitempty"`
	Name             string     `json:"name"`
	Role             string     `json:"role,omitempty"`
	Seniority        string     `json:"seniority,omitempty"`
	Skills           []string   `json:"skills,omitempty"`
	Languages        []string   `json:"languages,omitempty"`
	LocationCity     string     `json:"location_city,omitempty"`
	LocationCountry  string     `json:"location_country,omitempty"`
	OnsiteMode       string     `json:"onsite_mode,omitempty"`
	AvailabilityFrom *time.Time `json:"availability_from,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	ProfileURL       string     `json:"profile_url,omitempty"`
}

// Result is the per-record ingest outcome.
type Result struct {
	JobUID string
	ID     string
	Err    string
}

// Stats summarizes a bulk ingest.
type Stats struct {
	Total     int
	Succeeded int
	Failed    int
}

// Source is anything that produces normalized job records: a scraper, a file
// import, a webhook payload.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]RawJob, error)
}
