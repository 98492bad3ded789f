package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	sqlschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/minatgo/minatgo/ent/schema"
)

// entities are the schemas the store migrates. Each one names its table
// with an entsql annotation. Timestamps are unix milliseconds.
var entities = []ent.Interface{
	entschema.Question{},
	entschema.KV{},
	entschema.QuizEvent{},
	entschema.LLMRequestEvent{},
	entschema.ContactMessage{},
}

// migrate creates missing tables, columns and indexes with ent's migration
// engine.
func migrate(ctx context.Context, drv dialect.Driver) error {
	tables, err := Tables()
	if err != nil {
		return err
	}
	m, err := sqlschema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("init migration: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Tables converts the ent schemas into migration tables. Mixin fields come
// first, and a schema without an "id" field gets an auto-increment integer key.
func Tables() ([]*sqlschema.Table, error) {
	tables := make([]*sqlschema.Table, 0, len(entities))
	for _, e := range entities {
		t, err := tableOf(e)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func tableOf(e ent.Interface) (*sqlschema.Table, error) {
	name := tableName(e)
	if name == "" {
		return nil, fmt.Errorf("schema %T: missing entsql table annotation", e)
	}

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range e.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, e.Fields()...)
	indexes = append(indexes, e.Indexes()...)

	t := &sqlschema.Table{Name: name}
	byField := make(map[string]*sqlschema.Column, len(fields)+1)
	var pk *sqlschema.Column
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		c := column(d)
		byField[d.Name] = c
		if d.Name == "id" {
			pk = c
			continue
		}
		t.Columns = append(t.Columns, c)
	}
	if pk == nil {
		pk = &sqlschema.Column{Name: "id", Type: field.TypeInt, Increment: true}
		byField["id"] = pk
	}
	t.Columns = append([]*sqlschema.Column{pk}, t.Columns...)
	t.PrimaryKey = []*sqlschema.Column{pk}

	for _, idx := range indexes {
		d := idx.Descriptor()
		ix := &sqlschema.Index{Name: d.StorageKey, Unique: d.Unique}
		if ix.Name == "" {
			ix.Name = name + "_" + strings.Join(d.Fields, "_")
		}
		for _, fname := range d.Fields {
			c, ok := byField[fname]
			if !ok {
				return nil, fmt.Errorf("%s: index %s on unknown field %q", name, ix.Name, fname)
			}
			ix.Columns = append(ix.Columns, c)
		}
		t.Indexes = append(t.Indexes, ix)
	}
	return t, nil
}

func column(d *field.Descriptor) *sqlschema.Column {
	c := &sqlschema.Column{
		Name:       d.Name,
		Type:       d.Info.Type,
		Size:       int64(d.Size),
		Unique:     d.Unique,
		Nullable:   d.Optional,
		SchemaType: d.SchemaType,
	}
	if d.StorageKey != "" {
		c.Name = d.StorageKey
	}
	for _, e := range d.Enums {
		c.Enums = append(c.Enums, e.V)
	}
	// Function defaults are applied by generated builders, not the database.
	if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
		c.Default = d.Default
	}
	return c
}

func tableName(e ent.Interface) string {
	for _, a := range e.Annotations() {
		switch a := a.(type) {
		case entsql.Annotation:
			return a.Table
		case *entsql.Annotation:
			if a != nil {
				return a.Table
			}
		}
	}
	return ""
}
