package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the agent-run ledger: one row per
// orchestrator or stage invocation, partitioned by trigger_id.
//
// A partial unique index guarantees at most one running run per
// (trigger_id, stage); it cannot be expressed in ent and is created by
// pkg/database.CreatePartialUniqueIndexes.
type AgentRun struct {
	ent.Schema
}

// Mixin of the AgentRun.
func (AgentRun) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Enum("stage").
			Values("orchestrator", "fetch", "review", "draft", "edit", "publish"),
		field.String("trigger_id").
			Comment("Link id, feedback id, or edition id for publish runs"),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.JSON("input", map[string]interface{}{}).
			Optional(),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger_id"),
		index.Fields("stage"),
		index.Fields("status", "started_at"),
	}
}
