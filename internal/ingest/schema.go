package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Records missing optional fields are accepted; the scorer treats the gaps
// as unavailable factors. Only structural problems are rejected here.
const jobSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["job_uid", "source", "title", "url"],
	"properties": {
		"job_uid":          {"type": "string", "minLength": 1},
		"source":           {"type": "string", "minLength": 1},
		"title":            {"type": "string", "minLength": 1},
		"description":      {"type": "string"},
		"company_name":     {"type": "string"},
		"broker_name":      {"type": "string"},
		"skills":           {"type": "array", "items": {"type": "string"}},
		"role":             {"type": "string"},
		"seniority":        {"type": "string"},
		"languages":        {"type": "array", "items": {"type": "string"}},
		"location_city":    {"type": "string"},
		"location_country": {"type": "string"},
		"onsite_mode":      {"enum": ["", "onsite", "remote", "hybrid"]},
		"duration":         {"type": "string"},
		"start_date":       {"type": "string", "format": "date-time"},
		"url":              {"type": "string", "minLength": 1},
		"posted_at":        {"type": "string", "format": "date-time"},
		"etag":             {"type": "string"},
		"last_modified":    {"type": "string"}
	}
}`

const candidateSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name"],
	"properties": {
		"id":                {"type": "string"},
		"name":              {"type": "string", "minLength": 1},
		"role":              {"type": "string"},
		"seniority":         {"type": "string"},
		"skills":            {"type": "array", "items": {"type": "string"}},
		"languages":         {"type": "array", "items": {"type": "string"}},
		"location_city":     {"type": "string"},
		"location_country":  {"type": "string"},
		"onsite_mode":       {"enum": ["", "onsite", "remote", "hybrid"]},
		"availability_from": {"type": "string", "format": "date-time"},
		"notes":             {"type": "string"},
		"profile_url":       {"type": "string"}
	}
}`

var (
	jobSchema       = jsonschema.MustCompileString("job.schema.json", jobSchemaJSON)
	candidateSchema = jsonschema.MustCompileString("candidate.schema.json", candidateSchemaJSON)
)

// validateAgainst round-trips the record through JSON so schema validation
// sees exactly what an external caller would have sent.
func validateAgainst(schema *jsonschema.Schema, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return schema.Validate(doc)
}

// ValidateJob rejects structurally invalid job records.
func ValidateJob(record any) error {
	return validateAgainst(jobSchema, record)
}

// ValidateCandidate rejects structurally invalid candidate records.
func ValidateCandidate(record any) error {
	return validateAgainst(candidateSchema, record)
}
