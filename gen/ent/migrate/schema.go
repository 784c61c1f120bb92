// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CandidatesColumns holds the columns for the "candidates" table.
	CandidatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "seniority", Type: field.TypeString, Nullable: true},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "languages", Type: field.TypeJSON, Nullable: true},
		{Name: "location_city", Type: field.TypeString, Nullable: true},
		{Name: "location_country", Type: field.TypeString, Nullable: true},
		{Name: "onsite_mode", Type: field.TypeEnum, Nullable: true, Enums: []string{"onsite", "remote", "hybrid"}},
		{Name: "availability_from", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "profile_url", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CandidatesTable holds the schema information for the "candidates" table.
	CandidatesTable = &schema.Table{
		Name:       "candidates",
		Columns:    CandidatesColumns,
		PrimaryKey: []*schema.Column{CandidatesColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_uid", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "seniority", Type: field.TypeString, Nullable: true},
		{Name: "languages", Type: field.TypeJSON, Nullable: true},
		{Name: "location_city", Type: field.TypeString, Nullable: true},
		{Name: "location_country", Type: field.TypeString, Nullable: true},
		{Name: "onsite_mode", Type: field.TypeEnum, Nullable: true, Enums: []string{"onsite", "remote", "hybrid"}},
		{Name: "duration", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "url", Type: field.TypeString},
		{Name: "posted_at", Type: field.TypeTime, Nullable: true},
		{Name: "etag", Type: field.TypeString, Nullable: true},
		{Name: "last_modified", Type: field.TypeString, Nullable: true},
		{Name: "scraped_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID, Nullable: true},
		{Name: "broker_id", Type: field.TypeUUID, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_organizations_company_jobs",
				Columns:    []*schema.Column{JobsColumns[21]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "jobs_organizations_broker_jobs",
				Columns:    []*schema.Column{JobsColumns[22]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// MatchesColumns holds the columns for the "matches" table.
	MatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "double precision"}},
		{Name: "reasoning", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// MatchesTable holds the schema information for the "matches" table.
	MatchesTable = &schema.Table{
		Name:       "matches",
		Columns:    MatchesColumns,
		PrimaryKey: []*schema.Column{MatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matches_candidates_matches",
				Columns:    []*schema.Column{MatchesColumns[4]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "matches_jobs_matches",
				Columns:    []*schema.Column{MatchesColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "match_job_id_candidate_id",
				Unique:  true,
				Columns: []*schema.Column{MatchesColumns[5], MatchesColumns[4]},
			},
			{
				Name:    "match_score",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[1]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"company", "broker"}},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "aliases", Type: field.TypeJSON},
		{Name: "portal_url", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "organization_kind_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{OrganizationsColumns[1], OrganizationsColumns[2]},
			},
		},
	}
	// TermAliasesColumns holds the columns for the "term_aliases" table.
	TermAliasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"skill", "role"}},
		{Name: "canonical", Type: field.TypeString},
		{Name: "alias", Type: field.TypeString},
	}
	// TermAliasesTable holds the schema information for the "term_aliases" table.
	TermAliasesTable = &schema.Table{
		Name:       "term_aliases",
		Columns:    TermAliasesColumns,
		PrimaryKey: []*schema.Column{TermAliasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "termalias_kind_alias",
				Unique:  true,
				Columns: []*schema.Column{TermAliasesColumns[1], TermAliasesColumns[3]},
			},
			{
				Name:    "termalias_kind_canonical",
				Unique:  false,
				Columns: []*schema.Column{TermAliasesColumns[1], TermAliasesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CandidatesTable,
		JobsTable,
		MatchesTable,
		OrganizationsTable,
		TermAliasesTable,
	}
)

func init() {
	CandidatesTable.Annotation = &entsql.Annotation{
		Table: "candidates",
	}
	JobsTable.ForeignKeys[0].RefTable = OrganizationsTable
	JobsTable.ForeignKeys[1].RefTable = OrganizationsTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	MatchesTable.ForeignKeys[0].RefTable = CandidatesTable
	MatchesTable.ForeignKeys[1].RefTable = JobsTable
	MatchesTable.Annotation = &entsql.Annotation{
		Table: "matches",
	}
	OrganizationsTable.Annotation = &entsql.Annotation{
		Table: "organizations",
	}
	TermAliasesTable.Annotation = &entsql.Annotation{
		Table: "term_aliases",
	}
}
