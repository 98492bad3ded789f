package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Question is one binary-choice item of the question bank.
type Question struct {
	ent.Schema
}

func (Question) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "questions"},
	}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text").
			NotEmpty(),
		field.Text("optiona").
			NotEmpty().
			Comment("Option A wording"),
		field.Text("optionb").
			NotEmpty().
			Comment("Option B wording"),
		field.String("type").
			MaxLen(16).
			Comment("Category pair token, e.g. R-I: option A scores R, option B scores I"),
		field.Int64("created_at").
			Immutable().
			Comment("Unix milliseconds"),
		field.Int64("updated_at").
			Comment("Unix milliseconds"),
	}
}
