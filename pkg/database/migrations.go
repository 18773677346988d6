package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one running run per (trigger_id, stage). This is the ledger's
	// duplicate-run guard; the claim set is the first line of defense.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agent_runs_trigger_stage_running
		ON agent_runs (trigger_id, stage)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create running-run index: %w", err)
	}

	return nil
}
