// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// ChangeRecord is the predicate function for changerecord builders.
type ChangeRecord func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Edition is the predicate function for edition builders.
type Edition func(*sql.Selector)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// Link is the predicate function for link builders.
type Link func(*sql.Selector)

// Revision is the predicate function for revision builders.
type Revision func(*sql.Selector)
