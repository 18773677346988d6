package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChangeRecord holds the schema definition for the change-feed log. Every
// feed-visible write appends one row in the same transaction as the document
// write; the serial id is the continuation-token ordinate.
type ChangeRecord struct {
	ent.Schema
}

// Fields of the ChangeRecord.
func (ChangeRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Comment("bigserial; assigned by the database"),
		field.String("container"),
		field.String("doc_id"),
		field.String("partition_key"),
		field.JSON("doc", map[string]interface{}{}).
			Comment("Document snapshot at write time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChangeRecord.
func (ChangeRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("container", "id"),
	}
}
