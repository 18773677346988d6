// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"orchestrator", "fetch", "review", "draft", "edit", "publish"}},
		{Name: "trigger_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
			{
				Name:    "agentrun_trigger_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[5]},
			},
			{
				Name:    "agentrun_stage",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[4]},
			},
			{
				Name:    "agentrun_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[6], AgentRunsColumns[12]},
			},
		},
	}
	// ChangeRecordsColumns holds the columns for the "change_records" table.
	ChangeRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "container", Type: field.TypeString},
		{Name: "doc_id", Type: field.TypeString},
		{Name: "partition_key", Type: field.TypeString},
		{Name: "doc", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChangeRecordsTable holds the schema information for the "change_records" table.
	ChangeRecordsTable = &schema.Table{
		Name:       "change_records",
		Columns:    ChangeRecordsColumns,
		PrimaryKey: []*schema.Column{ChangeRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "changerecord_container_id",
				Unique:  false,
				Columns: []*schema.Column{ChangeRecordsColumns[1], ChangeRecordsColumns[0]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "container", Type: field.TypeString},
		{Name: "token", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// EditionsColumns holds the columns for the "editions" table.
	EditionsColumns = []*schema.Column{
		{Name: "edition_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "drafting", "in_review", "published"}, Default: "created"},
		{Name: "content", Type: field.TypeJSON, Nullable: true},
		{Name: "link_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
	}
	// EditionsTable holds the schema information for the "editions" table.
	EditionsTable = &schema.Table{
		Name:       "editions",
		Columns:    EditionsColumns,
		PrimaryKey: []*schema.Column{EditionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "edition_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{EditionsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
			{
				Name:    "edition_status",
				Unique:  false,
				Columns: []*schema.Column{EditionsColumns[4]},
			},
		},
	}
	// FeedbackColumns holds the columns for the "feedback" table.
	FeedbackColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "edition_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "comment", Type: field.TypeString, Size: 2147483647},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "learn_from_feedback", Type: field.TypeBool, Default: true},
	}
	// FeedbackTable holds the schema information for the "feedback" table.
	FeedbackTable = &schema.Table{
		Name:       "feedback",
		Columns:    FeedbackColumns,
		PrimaryKey: []*schema.Column{FeedbackColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
			{
				Name:    "feedback_edition_id_resolved",
				Unique:  false,
				Columns: []*schema.Column{FeedbackColumns[4], FeedbackColumns[7]},
			},
		},
	}
	// LinksColumns holds the columns for the "links" table.
	LinksColumns = []*schema.Column{
		{Name: "link_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "url", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "fetching", "reviewed", "drafted", "failed"}, Default: "submitted"},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "review", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "edition_id", Type: field.TypeString, Nullable: true},
	}
	// LinksTable holds the schema information for the "links" table.
	LinksTable = &schema.Table{
		Name:       "links",
		Columns:    LinksColumns,
		PrimaryKey: []*schema.Column{LinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "link_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{LinksColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
			{
				Name:    "link_status",
				Unique:  false,
				Columns: []*schema.Column{LinksColumns[6]},
			},
			{
				Name:    "link_edition_id",
				Unique:  false,
				Columns: []*schema.Column{LinksColumns[9]},
			},
			{
				Name:    "link_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{LinksColumns[6], LinksColumns[1]},
			},
		},
	}
	// RevisionsColumns holds the columns for the "revisions" table.
	RevisionsColumns = []*schema.Column{
		{Name: "revision_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "edition_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"draft", "edit", "revert"}},
		{Name: "trigger_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeJSON},
		{Name: "summary", Type: field.TypeString, Nullable: true},
	}
	// RevisionsTable holds the schema information for the "revisions" table.
	RevisionsTable = &schema.Table{
		Name:       "revisions",
		Columns:    RevisionsColumns,
		PrimaryKey: []*schema.Column{RevisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "revision_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{RevisionsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
			{
				Name:    "revision_edition_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{RevisionsColumns[4], RevisionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRunsTable,
		ChangeRecordsTable,
		CheckpointsTable,
		EditionsTable,
		FeedbackTable,
		LinksTable,
		RevisionsTable,
	}
)

func init() {
	FeedbackTable.Annotation = &entsql.Annotation{
		Table: "feedback",
	}
}
