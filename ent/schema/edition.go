package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Edition holds the schema definition for the living newsletter document
// assembled from reviewed links.
type Edition struct {
	ent.Schema
}

// Mixin of the Edition.
func (Edition) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the Edition.
func (Edition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("edition_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("created", "drafting", "in_review", "published").
			Default("created"),
		field.JSON("content", map[string]interface{}{}).
			Optional().
			Comment("Structured content, keyed by section"),
		field.JSON("link_ids", []string{}).
			Optional().
			Comment("Ordered, duplicate-free; a link appears iff it reached drafted"),
		field.Time("published_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Edition.
func (Edition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
