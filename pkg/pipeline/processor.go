package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ljtill/curate/pkg/store"
)

// Processor is the change-feed poll loop: a single goroutine reading the
// links and feedback containers, spawning bounded handler goroutines for
// each change, and persisting continuation tokens as it goes.
type Processor struct {
	store *store.Store
	orch  *Orchestrator
	ctrl  *Controller

	pageSize     int
	pollInterval time.Duration
	maxBackoff   time.Duration

	tokens map[string]string

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu      sync.Mutex
	running bool
}

// NewProcessor creates a Processor. Call Start to begin polling.
func NewProcessor(s *store.Store, orch *Orchestrator, ctrl *Controller, pageSize int, pollInterval, maxBackoff time.Duration) *Processor {
	return &Processor{
		store:        s,
		orch:         orch,
		ctrl:         ctrl,
		pageSize:     pageSize,
		pollInterval: pollInterval,
		maxBackoff:   maxBackoff,
		tokens:       make(map[string]string),
	}
}

// Start loads persisted continuation tokens and launches the poll loop.
// Returns once the loop goroutine is running.
func (p *Processor) Start(ctx context.Context) error {
	for _, container := range []string{store.ContainerLinks, store.ContainerFeedback} {
		token, err := p.store.LoadCheckpoint(ctx, container)
		if err != nil {
			return err
		}
		p.tokens[container] = token
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Lock()
	p.running = true
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.pollLoop(ctx)
	}()
	slog.Info("Change-feed processor started",
		"page_size", p.pageSize, "poll_interval", p.pollInterval)
	return nil
}

// Stop cancels the poll loop and all in-flight handlers, then waits for
// them to finish.
func (p *Processor) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	slog.Info("Change-feed processor stopped")
}

func (p *Processor) pollLoop(ctx context.Context) {
	consecutiveErrors := 0
	for {
		if ctx.Err() != nil {
			return
		}

		pollErr := p.pollOnce(ctx)
		if ctx.Err() != nil {
			return
		}

		var delay time.Duration
		if pollErr != nil {
			consecutiveErrors++
			delay = backoffDelay(p.pollInterval, consecutiveErrors, p.maxBackoff)
			if consecutiveErrors == 1 {
				slog.Error("Change-feed poll failed", "error", pollErr)
			} else {
				slog.Warn("Change-feed poll failing",
					"consecutive_errors", consecutiveErrors, "retry_in", delay, "error", pollErr)
			}
		} else {
			consecutiveErrors = 0
			delay = p.pollInterval
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// pollOnce reads one page from each container and dispatches its changes.
func (p *Processor) pollOnce(ctx context.Context) error {
	var firstErr error
	for _, container := range []string{store.ContainerLinks, store.ContainerFeedback} {
		if err := p.pollContainer(ctx, container); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *Processor) pollContainer(ctx context.Context, container string) error {
	changes, next, err := p.store.ReadChangeFeed(ctx, container, p.tokens[container], p.pageSize)
	if err != nil {
		// Some emulators fail the connection instead of returning an
		// empty feed; treat that exact failure as "no changes".
		if store.IsTransport(err) && strings.Contains(err.Error(), "Expected HTTP/") {
			slog.Debug("Empty change feed (emulator quirk)", "container", container)
			return nil
		}
		return err
	}

	for _, change := range changes {
		p.spawnHandler(ctx, container, change)
	}

	if next != p.tokens[container] {
		p.tokens[container] = next
		// Token persistence is best effort; losing it means replaying a
		// page, which the claim set absorbs.
		if err := p.store.SaveCheckpoint(ctx, container, next); err != nil {
			slog.Warn("Failed to persist continuation token",
				"container", container, "error", err)
		}
	}
	return nil
}

// spawnHandler runs one change through the orchestrator on its own tracked
// goroutine, gated by the handler semaphore.
func (p *Processor) spawnHandler(ctx context.Context, container string, change store.Change) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.ctrl.AcquireSlot(ctx); err != nil {
			return
		}
		defer p.ctrl.ReleaseSlot()

		var err error
		switch container {
		case store.ContainerLinks:
			err = p.orch.HandleLinkChange(ctx, change.Doc)
		case store.ContainerFeedback:
			err = p.orch.HandleFeedbackChange(ctx, change.Doc)
		}
		if err != nil && ctx.Err() == nil {
			slog.Error("Change handler failed",
				"container", container, "doc_id", change.DocID, "error", err)
		}
	}()
}

// backoffDelay returns min(base * 2^n, max) for the nth consecutive error.
func backoffDelay(base time.Duration, consecutiveErrors int, max time.Duration) time.Duration {
	delay := base
	for i := 0; i < consecutiveErrors; i++ {
		delay *= 2
		if delay >= max {
			return max
		}
	}
	return delay
}
