// Curate pipeline server: hosts the HTTP API, the change-feed processor,
// and the agent pipeline in one process.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ljtill/curate/pkg/agent"
	"github.com/ljtill/curate/pkg/api"
	"github.com/ljtill/curate/pkg/config"
	"github.com/ljtill/curate/pkg/database"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/llm"
	"github.com/ljtill/curate/pkg/pipeline"
	"github.com/ljtill/curate/pkg/publish"
	"github.com/ljtill/curate/pkg/services"
	"github.com/ljtill/curate/pkg/store"
	"github.com/ljtill/curate/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting curate", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	docStore := store.New(dbClient.Client, cfg.Pipeline.SlowRepositoryThreshold)

	// 3. Events: optional external bus, then the in-process manager
	var bus *events.Bus
	var busPublisher events.BusPublisher
	if cfg.Bus.Enabled() {
		bus, err = events.NewBus(cfg.Bus.ConnectionString, cfg.Bus.Exchange)
		if err != nil {
			slog.Error("Failed to connect to event bus", "error", err)
			os.Exit(1)
		}
		defer bus.Close()
		busPublisher = bus
		slog.Info("Event bus connected", "exchange", cfg.Bus.Exchange)
	}
	eventManager := events.NewManager(cfg.Events.QueueMaxSize, busPublisher)
	if bus != nil {
		go func() {
			if err := bus.Consume(cfg.Bus.Subscription, eventManager); err != nil {
				slog.Error("Event bus consumer stopped", "error", err)
			}
		}()
	}

	// 4. Run ledger; orphan recovery before the processor starts
	runService := services.NewRunService(docStore, eventManager)
	recovered, err := runService.RecoverOrphanedRuns(ctx)
	if err != nil {
		slog.Error("Failed to recover orphaned runs", "error", err)
		os.Exit(1)
	}
	if recovered > 0 {
		slog.Info("Recovered orphaned runs from previous process", "count", recovered)
	}

	// 5. Publish collaborators
	uploader, err := publish.NewS3Uploader(ctx, *cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	publisher := publish.NewPublisher(docStore, uploader)

	// 6. Agent, executor, orchestrator, processor
	agentClient := llm.NewClient(
		cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.MaxTokens, cfg.LLM.MaxToolTurns)
	executor := agent.NewExecutor(
		cfg.Pipeline.AgentMaxRetries,
		cfg.Pipeline.AgentRetryBaseDelay,
		cfg.Pipeline.AgentRetryMaxDelay)
	controller := pipeline.NewController(int64(cfg.Pipeline.MaxConcurrentHandlers))
	orchestrator := pipeline.NewOrchestrator(
		docStore, runService, eventManager, executor, agentClient, publisher, controller)

	processor := pipeline.NewProcessor(
		docStore, orchestrator, controller,
		cfg.Pipeline.ChangeFeedPageSize,
		cfg.Pipeline.PollInterval,
		cfg.Pipeline.MaxBackoff)
	if err := processor.Start(ctx); err != nil {
		slog.Error("Failed to start change-feed processor", "error", err)
		os.Exit(1)
	}

	// 7. HTTP server
	engine := gin.Default()
	apiServer := api.NewServer(
		dbClient, docStore, runService, eventManager, orchestrator,
		cfg.Events.SSEPingInterval)
	apiServer.Routes(engine)

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: engine,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Curate started successfully",
		"max_concurrent_handlers", cfg.Pipeline.MaxConcurrentHandlers)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: processor first, then the HTTP server.
	// Handlers that miss the timeout leave running ledger rows; the next
	// startup orphan-recovers them.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Pipeline.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		processor.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Change-feed processor stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
