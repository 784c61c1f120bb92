package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Organization is a canonical company or broker identity. All raw spellings
// ever seen for it are accumulated in the aliases set.
type Organization struct{ ent.Schema }

func (Organization) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "organizations"},
	}
}

func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Enum("kind").Values("company", "broker"),
		field.String("normalized_name").NotEmpty(),
		field.Strings("aliases"),
		field.String("portal_url").Optional(),
		// Set when an alias collision across two canonical rows was detected;
		// resolution stays first-match-wins until an admin merges out of band.
		field.Bool("needs_review").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Organization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("company_jobs", Job.Type),
		edge.To("broker_jobs", Job.Type),
	}
}

func (Organization) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "normalized_name").Unique(),
	}
}
