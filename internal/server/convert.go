package server

import (
	"time"

	matcherv1 "github.com/nordstaff/consultant-matcher/gen/matcher/v1"
	"github.com/nordstaff/consultant-matcher/internal/entity"
	"github.com/nordstaff/consultant-matcher/internal/ingest"
)

func toPBJob(j *entity.Job) *matcherv1.Job {
	return &matcherv1.Job{
		Id:              j.ID.String(),
		JobUid:          j.JobUID,
		Source:          j.Source,
		Title:           j.Title,
		Description:     j.Description,
		Skills:          j.Skills,
		Role:            j.Role,
		Seniority:       j.Seniority,
		Languages:       j.Languages,
		LocationCity:    j.LocationCity,
		LocationCountry: j.LocationCountry,
		OnsiteMode:      string(j.OnsiteMode),
		Duration:        j.Duration,
		StartDate:       formatTimePtr(j.StartDate, "2006-01-02"),
		Url:             j.URL,
		PostedAt:        formatTimePtr(j.PostedAt, time.RFC3339Nano),
	}
}

func toPBCandidate(c *entity.Candidate) *matcherv1.Candidate {
	return &matcherv1.Candidate{
		Id:               c.ID.String(),
		Name:             c.Name,
		Role:             c.Role,
		Seniority:        c.Seniority,
		Skills:           c.Skills,
		Languages:        c.Languages,
		LocationCity:     c.LocationCity,
		LocationCountry:  c.LocationCountry,
		OnsiteMode:       string(c.OnsiteMode),
		AvailabilityFrom: formatTimePtr(c.AvailabilityFrom, "2006-01-02"),
		Notes:            c.Notes,
		ProfileUrl:       c.ProfileURL,
		Active:           c.Active,
	}
}

func toPBMatch(m *entity.Match) *matcherv1.Match {
	return &matcherv1.Match{
		Id:          m.ID.String(),
		JobId:       m.JobID.String(),
		CandidateId: m.CandidateID.String(),
		Score:       m.Score,
		Reasoning:   toPBBreakdown(m.Reasoning),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339Nano),
	}
}

func toPBBreakdown(b entity.Breakdown) *matcherv1.Breakdown {
	factors := make([]*matcherv1.FactorScore, 0, len(b.Factors))
	for _, f := range b.Factors {
		factors = append(factors, &matcherv1.FactorScore{
			Name:      f.Name,
			Available: f.Available,
			Score:     f.Score,
			Weight:    f.Weight,
			Weighted:  f.Weighted,
			Note:      f.Note,
		})
	}
	return &matcherv1.Breakdown{
		Profile:       b.Profile,
		Total:         b.Total,
		Factors:       factors,
		Redistributed: b.Redistributed,
		SkillsMatched: b.SkillsMatched,
		SkillsMissing: b.SkillsMissing,
		Strengths:     b.Strengths,
		Concerns:      b.Concerns,
		Summary:       b.Summary,
	}
}

func fromPBJob(j *matcherv1.Job) (ingest.RawJob, error) {
	raw := ingest.RawJob{
		JobUID:          j.GetJobUid(),
		Source:          j.GetSource(),
		Title:           j.GetTitle(),
		Description:     j.GetDescription(),
		CompanyName:     j.GetCompanyName(),
		BrokerName:      j.GetBrokerName(),
		Skills:          j.GetSkills(),
		Role:            j.GetRole(),
		Seniority:       j.GetSeniority(),
		Languages:       j.GetLanguages(),
		LocationCity:    j.GetLocationCity(),
		LocationCountry: j.GetLocationCountry(),
		OnsiteMode:      j.GetOnsiteMode(),
		Duration:        j.GetDuration(),
		URL:             j.GetUrl(),
	}
	var err error
	if raw.StartDate, err = parseTimePtr(j.GetStartDate()); err != nil {
		return raw, err
	}
	if raw.PostedAt, err = parseTimePtr(j.GetPostedAt()); err != nil {
		return raw, err
	}
	return raw, nil
}

func fromPBCandidate(c *matcherv1.Candidate) (ingest.RawCandidate, error) {
	raw := ingest.RawCandidate{
		ID:              c.GetId(),
		Name:            c.GetName(),
		Role:            c.GetRole(),
		Seniority:       c.GetSeniority(),
		Skills:          c.GetSkills(),
		Languages:       c.GetLanguages(),
		LocationCity:    c.GetLocationCity(),
		LocationCountry: c.GetLocationCountry(),
		OnsiteMode:      c.GetOnsiteMode(),
		Notes:           c.GetNotes(),
		ProfileURL:      c.GetProfileUrl(),
	}
	var err error
	if raw.AvailabilityFrom, err = parseTimePtr(c.GetAvailabilityFrom()); err != nil {
		return raw, err
	}
	return raw, nil
}

func formatTimePtr(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.Format(layout)
}

// parseTimePtr accepts RFC 3339 timestamps and bare dates; sources disagree
// on which they send.
func parseTimePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	t, err := time.Parse(time.RFC3339, s)
	return &t, err
}
