package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one submitted quiz attempt.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quiz_events"},
	}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Comment("UUID of the attempt"),
		field.Enum("origin").
			Values("tui", "http"),
		field.Int("answered"),
		field.Int("total"),
		field.Text("counts").
			Comment("JSON object of category tallies"),
		field.Text("dominant").
			Comment("JSON array of dominant categories in canonical order"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}
