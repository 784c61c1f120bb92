// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/nordstaff/consultant-matcher/db/ent/schema"
	"github.com/nordstaff/consultant-matcher/gen/ent/candidate"
	"github.com/nordstaff/consultant-matcher/gen/ent/job"
	"github.com/nordstaff/consultant-matcher/gen/ent/match"
	"github.com/nordstaff/consultant-matcher/gen/ent/organization"
	"github.com/nordstaff/consultant-matcher/gen/ent/termalias"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescName is the schema descriptor for name field.
	candidateDescName := candidateFields[1].Descriptor()
	// candidate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	candidate.NameValidator = candidateDescName.Validators[0].(func(string) error)
	// candidateDescActive is the schema descriptor for active field.
	candidateDescActive := candidateFields[12].Descriptor()
	// candidate.DefaultActive holds the default value on creation for the active field.
	candidate.DefaultActive = candidateDescActive.Default.(bool)
	// candidateDescCreatedAt is the schema descriptor for created_at field.
	candidateDescCreatedAt := candidateFields[13].Descriptor()
	// candidate.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidate.DefaultCreatedAt = candidateDescCreatedAt.Default.(func() time.Time)
	// candidateDescUpdatedAt is the schema descriptor for updated_at field.
	candidateDescUpdatedAt := candidateFields[14].Descriptor()
	// candidate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	candidate.DefaultUpdatedAt = candidateDescUpdatedAt.Default.(func() time.Time)
	// candidate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	candidate.UpdateDefaultUpdatedAt = candidateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// candidateDescID is the schema descriptor for id field.
	candidateDescID := candidateFields[0].Descriptor()
	// candidate.DefaultID holds the default value on creation for the id field.
	candidate.DefaultID = candidateDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescJobUID is the schema descriptor for job_uid field.
	jobDescJobUID := jobFields[1].Descriptor()
	// job.JobUIDValidator is a validator for the "job_uid" field. It is called by the builders before save.
	job.JobUIDValidator = jobDescJobUID.Validators[0].(func(string) error)
	// jobDescSource is the schema descriptor for source field.
	jobDescSource := jobFields[2].Descriptor()
	// job.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	job.SourceValidator = jobDescSource.Validators[0].(func(string) error)
	// jobDescTitle is the schema descriptor for title field.
	jobDescTitle := jobFields[3].Descriptor()
	// job.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	job.TitleValidator = jobDescTitle.Validators[0].(func(string) error)
	// jobDescURL is the schema descriptor for url field.
	jobDescURL := jobFields[16].Descriptor()
	// job.URLValidator is a validator for the "url" field. It is called by the builders before save.
	job.URLValidator = jobDescURL.Validators[0].(func(string) error)
	// jobDescScrapedAt is the schema descriptor for scraped_at field.
	jobDescScrapedAt := jobFields[20].Descriptor()
	// job.DefaultScrapedAt holds the default value on creation for the scraped_at field.
	job.DefaultScrapedAt = jobDescScrapedAt.Default.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[21].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[22].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	matchFields := schema.Match{}.Fields()
	_ = matchFields
	// matchDescCreatedAt is the schema descriptor for created_at field.
	matchDescCreatedAt := matchFields[5].Descriptor()
	// match.DefaultCreatedAt holds the default value on creation for the created_at field.
	match.DefaultCreatedAt = matchDescCreatedAt.Default.(func() time.Time)
	// match.UpdateDefaultCreatedAt holds the default value on update for the created_at field.
	match.UpdateDefaultCreatedAt = matchDescCreatedAt.UpdateDefault.(func() time.Time)
	// matchDescID is the schema descriptor for id field.
	matchDescID := matchFields[0].Descriptor()
	// match.DefaultID holds the default value on creation for the id field.
	match.DefaultID = matchDescID.Default.(func() uuid.UUID)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescNormalizedName is the schema descriptor for normalized_name field.
	organizationDescNormalizedName := organizationFields[2].Descriptor()
	// organization.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	organization.NormalizedNameValidator = organizationDescNormalizedName.Validators[0].(func(string) error)
	// organizationDescNeedsReview is the schema descriptor for needs_review field.
	organizationDescNeedsReview := organizationFields[5].Descriptor()
	// organization.DefaultNeedsReview holds the default value on creation for the needs_review field.
	organization.DefaultNeedsReview = organizationDescNeedsReview.Default.(bool)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[6].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[7].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationFields[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() uuid.UUID)
	termaliasFields := schema.TermAlias{}.Fields()
	_ = termaliasFields
	// termaliasDescCanonical is the schema descriptor for canonical field.
	termaliasDescCanonical := termaliasFields[1].Descriptor()
	// termalias.CanonicalValidator is a validator for the "canonical" field. It is called by the builders before save.
	termalias.CanonicalValidator = termaliasDescCanonical.Validators[0].(func(string) error)
	// termaliasDescAlias is the schema descriptor for alias field.
	termaliasDescAlias := termaliasFields[2].Descriptor()
	// termalias.AliasValidator is a validator for the "alias" field. It is called by the builders before save.
	termalias.AliasValidator = termaliasDescAlias.Validators[0].(func(string) error)
}
