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

type Candidate struct{ ent.Schema }

func (Candidate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidates"},
	}
}

func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("role").Optional(),
		field.String("seniority").Optional(),
		field.Strings("skills").Optional(),
		field.Strings("languages").Optional(),
		field.String("location_city").Optional(),
		field.String("location_country").Optional(),
		field.Enum("onsite_mode").
			Values("onsite", "remote", "hybrid").
			Optional(),
		field.Time("availability_from").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Optional().Nillable(),
		field.Text("notes").Optional(),
		field.String("profile_url").Optional(),
		// Soft-deactivation only; rows are never deleted while matches reference them.
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("matches", Match.Type),
	}
}
