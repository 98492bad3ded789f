package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ent.Schema
}

func (ContactMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contact_messages"},
	}
}

func (ContactMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty(),
		field.Text("message").NotEmpty(),
		field.Int64("created_at").Immutable(),
	}
}
