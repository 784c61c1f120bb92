package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

type Match struct{ ent.Schema }

func (Match) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "matches"},
	}
}

func (Match) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("job_id", uuid.UUID{}),
		field.UUID("candidate_id", uuid.UUID{}),
		field.Float("score").
			SchemaType(map[string]string{dialect.Postgres: "double precision"}),
		field.JSON("reasoning", entity.Breakdown{}),
		field.Time("created_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Match) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY matches -> ONE job (FK: matches.job_id)
		edge.From("job", Job.Type).
			Ref("matches").
			Field("job_id").
			Required().
			Unique(),
		// MANY matches -> ONE candidate (FK: matches.candidate_id)
		edge.From("candidate", Candidate.Type).
			Ref("matches").
			Field("candidate_id").
			Required().
			Unique(),
	}
}

func (Match) Indexes() []ent.Index {
	return []ent.Index{
		// At most one row per pair; re-scoring overwrites it.
		index.Fields("job_id", "candidate_id").Unique(),
		index.Fields("score"),
	}
}
