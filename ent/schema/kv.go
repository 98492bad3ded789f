package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// KV stores small typed settings and the last submitted result snapshot.
type KV struct {
	ent.Schema
}

func (KV) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "kv"},
	}
}

func (KV) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			Comment("e.g. darkModeEnabled, riasec_test_results"),
		field.Text("value"),
		field.Int64("updated_at"),
	}
}
