package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Revision holds the schema definition for an edition content snapshot,
// used for history and revert. sequence is strictly increasing per edition.
type Revision struct {
	ent.Schema
}

// Mixin of the Revision.
func (Revision) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Revision.
func (Revision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("revision_id").
			Unique().
			Immutable(),
		field.String("edition_id").
			Comment("Partition key"),
		field.Int("sequence"),
		field.Enum("source").
			Values("draft", "edit", "revert"),
		field.String("trigger_id"),
		field.JSON("content", map[string]interface{}{}),
		field.String("summary").
			Optional(),
	}
}

// Indexes of the Revision.
func (Revision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("edition_id", "sequence").
			Unique(),
	}
}
