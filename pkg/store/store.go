// Package store is the typed document-store adapter: CRUD with soft-delete
// semantics, parameterized queries, and a change-feed log with continuation
// tokens. Every feed-visible write appends a change record in the same
// transaction as the document write.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ljtill/curate/ent"
)

// Container names. These are the "collections" of the document model; each
// maps to one table.
const (
	ContainerLinks     = "links"
	ContainerEditions  = "editions"
	ContainerFeedback  = "feedback"
	ContainerAgentRuns = "agent_runs"
	ContainerRevisions = "revisions"
	ContainerMetadata  = "metadata"
)

// UnattachedPartition is the partition key sentinel for links without an
// edition.
const UnattachedPartition = "_unattached"

// Store wraps the ent client with document-store semantics.
type Store struct {
	client *ent.Client
	slow   time.Duration
}

// New creates a Store. slowThreshold is the operation duration above which a
// warning is logged; zero disables slow-operation logging.
func New(client *ent.Client, slowThreshold time.Duration) *Store {
	return &Store{client: client, slow: slowThreshold}
}

// Client exposes the underlying ent client for callers that need raw access
// (tests, migrations).
func (s *Store) Client() *ent.Client { return s.client }

// observe records operation latency. Call as:
//
//	defer s.observe("links.create", time.Now())
func (s *Store) observe(op string, start time.Time) {
	d := time.Since(start)
	if s.slow > 0 && d >= s.slow {
		slog.Warn("Slow repository operation", "operation", op, "duration_ms", d.Milliseconds())
		return
	}
	slog.Debug("Repository operation", "operation", op, "duration_ms", d.Milliseconds())
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return &TransportError{Op: "tx.begin", Err: err}
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return &TransportError{Op: "tx.commit", Err: err}
	}
	return nil
}

// appendChange writes a change-feed record within the given transaction.
func appendChange(ctx context.Context, tx *ent.Tx, container, docID, partitionKey string, doc map[string]interface{}) error {
	_, err := tx.ChangeRecord.Create().
		SetContainer(container).
		SetDocID(docID).
		SetPartitionKey(partitionKey).
		SetDoc(doc).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append change record: %w", err)
	}
	return nil
}
