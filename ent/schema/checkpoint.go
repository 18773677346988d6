package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Checkpoint holds the schema definition for a persisted change-feed
// continuation token: id = "change-feed-token-<container>".
type Checkpoint struct {
	ent.Schema
}

// Mixin of the Checkpoint.
func (Checkpoint) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("container"),
		field.String("token").
			Comment("Opaque to the processor; decimal change_records id"),
	}
}
