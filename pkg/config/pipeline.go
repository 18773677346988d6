package config

import "time"

// PipelineConfig contains change-feed processor and handler configuration.
type PipelineConfig struct {
	// MaxConcurrentHandlers bounds in-flight handler goroutines spawned by the
	// change-feed processor.
	MaxConcurrentHandlers int

	// ChangeFeedPageSize is the max_item_count per change-feed poll.
	ChangeFeedPageSize int

	// PollInterval is the sleep between clean poll passes.
	PollInterval time.Duration

	// MaxBackoff caps the exponential back-off applied on consecutive
	// poll errors.
	MaxBackoff time.Duration

	// SlowRepositoryThreshold is the store-operation duration above which a
	// warning is logged.
	SlowRepositoryThreshold time.Duration

	// AgentMaxRetries is the number of retries (beyond the first attempt)
	// the stage executor applies to agent invocations.
	AgentMaxRetries int

	// AgentRetryBaseDelay is the base of the executor's exponential back-off.
	AgentRetryBaseDelay time.Duration

	// AgentRetryMaxDelay caps the executor's back-off.
	AgentRetryMaxDelay time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight handlers
	// during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxConcurrentHandlers:   25,
		ChangeFeedPageSize:      100,
		PollInterval:            1 * time.Second,
		MaxBackoff:              30 * time.Second,
		SlowRepositoryThreshold: 250 * time.Millisecond,
		AgentMaxRetries:         2,
		AgentRetryBaseDelay:     1 * time.Second,
		AgentRetryMaxDelay:      30 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}
