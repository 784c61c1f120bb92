package utils

import (
	"github.com/nordstaff/consultant-matcher/gen/ent"
	"github.com/nordstaff/consultant-matcher/internal/entity"
)

func ToJob(e *ent.Job) *entity.Job {
	return &entity.Job{
		ID:              e.ID,
		JobUID:          e.JobUID,
		Source:          e.Source,
		Title:           e.Title,
		Description:     e.Description,
		Skills:          e.Skills,
		Role:            e.Role,
		Seniority:       e.Seniority,
		Languages:       e.Languages,
		LocationCity:    e.LocationCity,
		LocationCountry: e.LocationCountry,
		OnsiteMode:      entity.OnsiteMode(e.OnsiteMode),
		Duration:        e.Duration,
		StartDate:       e.StartDate,
		CompanyID:       e.CompanyID,
		BrokerID:        e.BrokerID,
		URL:             e.URL,
		PostedAt:        e.PostedAt,
		ETag:            e.Etag,
		LastModified:    e.LastModified,
		ScrapedAt:       e.ScrapedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToCandidate(e *ent.Candidate) *entity.Candidate {
	return &entity.Candidate{
		ID:               e.ID,
		Name:             e.Name,
		Role:             e.Role,
		Seniority:        e.Seniority,
		Skills:           e.Skills,
		Languages:        e.Languages,
		LocationCity:     e.LocationCity,
		LocationCountry:  e.LocationCountry,
		OnsiteMode:       entity.OnsiteMode(e.OnsiteMode),
		AvailabilityFrom: e.AvailabilityFrom,
		Notes:            e.Notes,
		ProfileURL:       e.ProfileURL,
		Active:           e.Active,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToOrganization(e *ent.Organization) *entity.Organization {
	return &entity.Organization{
		ID:             e.ID,
		Kind:           entity.OrgKind(e.Kind),
		NormalizedName: e.NormalizedName,
		Aliases:        e.Aliases,
		PortalURL:      e.PortalURL,
		NeedsReview:    e.NeedsReview,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToMatch(e *ent.Match) *entity.Match {
	m := &entity.Match{
		ID:          e.ID,
		JobID:       e.JobID,
		CandidateID: e.CandidateID,
		Score:       e.Score,
		Reasoning:   e.Reasoning,
		CreatedAt:   e.CreatedAt,
	}
	if e.Edges.Job != nil {
		m.JobPostedAt = e.Edges.Job.PostedAt
	}
	if e.Edges.Candidate != nil {
		t := e.Edges.Candidate.UpdatedAt
		m.CandidateUpdatedAt = &t
	}
	return m
}
