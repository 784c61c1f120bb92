package ingest

import "testing"

func validRawJob() RawJob {
	return RawJob{
		JobUID: "src-1234",
		Source: "portal",
		Title:  "Senior Backend Developer",
		URL:    "https://example.com/jobs/1234",
	}
}

func TestValidateJob(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RawJob)
		wantErr bool
	}{
		{"minimal valid record", func(*RawJob) {}, false},
		{
			"partial record with optional fields empty is accepted",
			func(r *RawJob) { r.Description = ""; r.Skills = nil; r.Seniority = "" },
			false,
		},
		{
			"full record",
			func(r *RawJob) {
				r.Skills = []string{"go", "postgresql"}
				r.OnsiteMode = "hybrid"
				r.LocationCity = "Stockholm"
			},
			false,
		},
		{"missing job_uid", func(r *RawJob) { r.JobUID = "" }, true},
		{"missing source", func(r *RawJob) { r.Source = "" }, true},
		{"missing title", func(r *RawJob) { r.Title = "" }, true},
		{"missing url", func(r *RawJob) { r.URL = "" }, true},
		{"bad onsite_mode", func(r *RawJob) { r.OnsiteMode = "telepathic" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawJob()
			tt.mutate(&raw)
			err := ValidateJob(raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJob() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawCandidate
		wantErr bool
	}{
		{"minimal", RawCandidate{Name: "Test Candidate"}, false},
		{"missing name", RawCandidate{Role: "developer"}, true},
		{"bad onsite_mode", RawCandidate{Name: "T", OnsiteMode: "sometimes"}, true},
		{
			"full",
			RawCandidate{
				Name:      "Test Candidate",
				Skills:    []string{"go"},
				Languages: []string{"sv", "en"},
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCandidate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
