// Package config loads application configuration from the environment with
// built-in defaults. Database settings live in pkg/database; everything else
// is here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Pipeline *PipelineConfig
	Events   *EventsConfig
	Bus      *BusConfig
	Storage  *StorageConfig
	LLM      *LLMConfig
}

// EventsConfig contains in-process event fan-out configuration.
type EventsConfig struct {
	// QueueMaxSize is the per-subscriber queue capacity. A full queue drops
	// its oldest message to admit the new one.
	QueueMaxSize int

	// SSEPingInterval is the keep-alive ping period on the /events stream.
	SSEPingInterval time.Duration
}

// BusConfig contains the optional external message bus settings.
type BusConfig struct {
	// ConnectionString is the AMQP URL. Empty disables the external bus.
	ConnectionString string

	// Exchange is the durable topic the worker publishes to.
	Exchange string

	// Subscription is the queue the front-end consumer reads from.
	Subscription string
}

// Enabled reports whether the external bus path is configured.
func (c *BusConfig) Enabled() bool { return c.ConnectionString != "" }

// StorageConfig contains object-store settings for published artifacts.
type StorageConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// LLMConfig contains agent model settings.
type LLMConfig struct {
	// APIKey overrides the SDK's default environment lookup when set.
	APIKey    string
	Model     string
	MaxTokens int64
	// MaxToolTurns bounds the tool-use loop per agent invocation.
	MaxToolTurns int
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Pipeline: DefaultPipelineConfig(),
		Events: &EventsConfig{
			QueueMaxSize:    200,
			SSEPingInterval: 15 * time.Second,
		},
		Bus: &BusConfig{
			ConnectionString: os.Getenv("BUS_CONNECTION_STRING"),
			Exchange:         getEnv("BUS_EXCHANGE", "pipeline-events"),
			Subscription:     getEnv("BUS_SUBSCRIPTION", "web-consumer"),
		},
		Storage: &StorageConfig{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    getEnv("S3_BUCKET", "curate-site"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
		LLM: &LLMConfig{
			APIKey:       os.Getenv("ANTHROPIC_API_KEY"),
			Model:        getEnv("LLM_MODEL", "claude-sonnet-4-5"),
			MaxTokens:    int64(getEnvInt("LLM_MAX_TOKENS", 4096)),
			MaxToolTurns: getEnvInt("LLM_MAX_TOOL_TURNS", 20),
		},
	}

	cfg.Pipeline.MaxConcurrentHandlers = getEnvInt("MAX_CONCURRENT_HANDLERS", cfg.Pipeline.MaxConcurrentHandlers)
	cfg.Pipeline.ChangeFeedPageSize = getEnvInt("CHANGE_FEED_PAGE_SIZE", cfg.Pipeline.ChangeFeedPageSize)
	cfg.Pipeline.SlowRepositoryThreshold = time.Duration(getEnvInt("SLOW_REPOSITORY_MS", 250)) * time.Millisecond
	cfg.Events.QueueMaxSize = getEnvInt("EVENT_QUEUE_MAXSIZE", cfg.Events.QueueMaxSize)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Pipeline.MaxConcurrentHandlers <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_HANDLERS must be positive, got %d", c.Pipeline.MaxConcurrentHandlers)
	}
	if c.Pipeline.ChangeFeedPageSize <= 0 {
		return fmt.Errorf("CHANGE_FEED_PAGE_SIZE must be positive, got %d", c.Pipeline.ChangeFeedPageSize)
	}
	if c.Events.QueueMaxSize <= 0 {
		return fmt.Errorf("EVENT_QUEUE_MAXSIZE must be positive, got %d", c.Events.QueueMaxSize)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}
