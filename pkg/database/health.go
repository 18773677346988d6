package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the /healthz payload: connectivity, pool statistics, and the
// age of each change-feed checkpoint. A checkpoint that stops advancing shows
// up here well before the pipeline visibly stalls.
type HealthStatus struct {
	Status          string           `json:"status"`
	ResponseTime    int64            `json:"response_time_ms"`
	OpenConnections int              `json:"open_connections"`
	InUse           int              `json:"in_use"`
	Idle            int              `json:"idle"`
	WaitCount       int64            `json:"wait_count"`
	WaitDuration    int64            `json:"wait_duration_ms"`
	MaxOpenConns    int              `json:"max_open_conns"`
	FeedCheckpoints map[string]int64 `json:"feed_checkpoint_age_s,omitempty"`
}

// Health pings the database and collects pool stats plus per-container
// checkpoint staleness. A failed ping reports unhealthy with the error; a
// failed checkpoint query only omits the staleness map, since connectivity is
// the signal that matters for liveness.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()

	return &HealthStatus{
		Status:          "healthy",
		ResponseTime:    time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
		FeedCheckpoints: checkpointAges(ctx, db),
	}, nil
}

// checkpointAges returns seconds since each change-feed checkpoint was last
// written, keyed by container. Nil when there are no checkpoints yet or the
// query fails.
func checkpointAges(ctx context.Context, db *sql.DB) map[string]int64 {
	rows, err := db.QueryContext(ctx,
		`SELECT container, updated_at FROM checkpoints WHERE deleted_at IS NULL`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	ages := make(map[string]int64)
	for rows.Next() {
		var container string
		var updatedAt time.Time
		if err := rows.Scan(&container, &updatedAt); err != nil {
			return nil
		}
		ages[container] = int64(time.Since(updatedAt).Seconds())
	}
	if err := rows.Err(); err != nil || len(ages) == 0 {
		return nil
	}
	return ages
}
