package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ljtill/curate/ent"
	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/services"
	"github.com/ljtill/curate/pkg/store"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of the embedded SQL files
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestHealthReportsCheckpointAges(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// No checkpoints yet: the staleness map is omitted entirely.
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Nil(t, health.FeedCheckpoints)

	_, err = client.Checkpoint.Create().
		SetID("change-feed-token-links").
		SetContainer("links").
		SetToken("42").
		Save(ctx)
	require.NoError(t, err)

	health, err = Health(ctx, client.DB())
	require.NoError(t, err)
	require.Contains(t, health.FeedCheckpoints, "links")
	assert.GreaterOrEqual(t, health.FeedCheckpoints["links"], int64(0))
}

func TestRunningRunUniqueIndex(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.AgentRun.Create().
		SetID("run-1").
		SetStage(agentrun.StageOrchestrator).
		SetTriggerID("link-1").
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	// Second running run for the same trigger and stage must be rejected.
	_, err = client.AgentRun.Create().
		SetID("run-2").
		SetStage(agentrun.StageOrchestrator).
		SetTriggerID("link-1").
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.Error(t, err)

	// A different stage for the same trigger is fine.
	_, err = client.AgentRun.Create().
		SetID("run-3").
		SetStage(agentrun.StageFetch).
		SetTriggerID("link-1").
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	// The index only covers running runs; once run-1 completes a new
	// orchestrator run may start.
	err = client.AgentRun.UpdateOneID("run-1").
		SetStatus(agentrun.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	_, err = client.AgentRun.Create().
		SetID("run-4").
		SetStage(agentrun.StageOrchestrator).
		SetTriggerID("link-1").
		SetStatus(agentrun.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
}

func TestDuplicateRunningRunMapsToAlreadyExists(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	runs := services.NewRunService(
		store.New(client.Client, 0), events.NewManager(10, nil))

	_, err := runs.RecordStageStart(ctx, agentrun.StageFetch, "link-1", nil)
	require.NoError(t, err)

	_, err = runs.RecordStageStart(ctx, agentrun.StageFetch, "link-1", nil)
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "curate", cfg.User)
				assert.Equal(t, "curate", cfg.Database)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":    "db.example.com",
				"DB_PORT":    "5433",
				"DB_USER":    "admin",
				"DB_NAME":    "production",
				"DB_SSLMODE": "require",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
			},
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT": "invalid",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host: "localhost", Port: 5432, User: "curate",
		Password: "secret", Database: "curate", SSLMode: "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0))
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be in milliseconds, not nanoseconds")
}
