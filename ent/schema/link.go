package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Link holds the schema definition for a submitted URL tracked through
// the pipeline: submitted → fetching → reviewed → drafted (or failed).
type Link struct {
	ent.Schema
}

// Mixin of the Link.
func (Link) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Link.
func (Link) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("link_id").
			Unique().
			Immutable(),
		field.String("url"),
		field.String("title").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("submitted", "fetching", "reviewed", "drafted", "failed").
			Default("submitted"),
		field.Text("content").
			Optional().
			Nillable().
			Comment("Fetched page content (markdown)"),
		field.Text("review").
			Optional().
			Nillable().
			Comment("Review stage summary"),
		field.String("edition_id").
			Optional().
			Nillable().
			Comment("Partition key; unattached links use the sentinel partition"),
	}
}

// Indexes of the Link.
func (Link) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("edition_id"),
		index.Fields("status", "created_at"),
	}
}
