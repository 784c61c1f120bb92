package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Globally unique identifier assigned by the source portal.
		field.String("job_uid").NotEmpty().Unique(),
		field.String("source").NotEmpty(),
		field.String("title").NotEmpty(),
		field.Text("description").Optional(),
		field.Strings("skills").Optional(),
		field.String("role").Optional(),
		field.String("seniority").Optional(),
		field.Strings("languages").Optional(),
		field.String("location_city").Optional(),
		field.String("location_country").Optional(),
		field.Enum("onsite_mode").
			Values("onsite", "remote", "hybrid").
			Optional(),
		field.String("duration").Optional(),
		field.Time("start_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Optional().Nillable(),
		field.UUID("company_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("broker_id", uuid.UUID{}).Optional().Nillable(),
		field.String("url").NotEmpty(),
		field.Time("posted_at").Optional().Nillable(),
		// Conditional-fetch tokens from the last retrieval.
		field.String("etag").Optional(),
		field.String("last_modified").Optional(),
		field.Time("scraped_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs -> ONE company (FK: jobs.company_id)
		edge.From("company", Organization.Type).
			Ref("company_jobs").
			Field("company_id").
			Unique(),
		// MANY jobs -> ONE broker (FK: jobs.broker_id)
		edge.From("broker", Organization.Type).
			Ref("broker_jobs").
			Field("broker_id").
			Unique(),
		// ONE job -> MANY matches
		edge.To("matches", Match.Type),
	}
}
