package embedding

import (
	"strings"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

const maxNotesLen = 2000

// PrepareJobText builds the text embedded for a job. The template is
// deterministic: identical input always yields byte-identical output, which
// reproducibility of local-backend vectors depends on.
func PrepareJobText(job *entity.Job) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}

	add("Title", job.Title)
	add("Role", job.Role)
	add("Seniority", job.Seniority)
	add("Description", job.Description)
	if len(job.Skills) > 0 {
		add("Skills", strings.Join(job.Skills, ", "))
	}
	if len(job.Languages) > 0 {
		add("Languages", strings.Join(job.Languages, ", "))
	}
	add("City", job.LocationCity)
	add("Country", job.LocationCountry)
	add("Work mode", string(job.OnsiteMode))
	add("Duration", job.Duration)

	return strings.Join(parts, "\n")
}

// PrepareCandidateText builds the text embedded for a candidate profile.
func PrepareCandidateText(c *entity.Candidate) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}

	add("Name", c.Name)
	add("Role", c.Role)
	add("Seniority", c.Seniority)
	if len(c.Skills) > 0 {
		add("Skills", strings.Join(c.Skills, ", "))
	}
	if len(c.Languages) > 0 {
		add("Languages", strings.Join(c.Languages, ", "))
	}
	add("City", c.LocationCity)
	add("Country", c.LocationCountry)
	add("Work mode", string(c.OnsiteMode))
	if c.Notes != "" {
		notes := c.Notes
		if len(notes) > maxNotesLen {
			notes = notes[:maxNotesLen]
		}
		add("Notes", notes)
	}

	return strings.Join(parts, "\n")
}
