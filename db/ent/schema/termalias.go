package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TermAlias maps a raw skill or role spelling to its canonical term. The same
// table doubles as the base vocabulary for skill-overlap scoring.
type TermAlias struct{ ent.Schema }

func (TermAlias) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "term_aliases"},
	}
}

func (TermAlias) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("kind").Values("skill", "role"),
		field.String("canonical").NotEmpty(),
		field.String("alias").NotEmpty(),
	}
}

func (TermAlias) Indexes() []ent.Index {
	return []ent.Index{
		// One canonical term per raw spelling within a vocabulary.
		index.Fields("kind", "alias").Unique(),
		index.Fields("kind", "canonical"),
	}
}
