// Package pipeline drives links and feedback through the agent stages: the
// change-feed processor polls for document changes, the concurrency
// controller serializes conflicting work, and the orchestrator runs the
// agent against each change.
package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/ljtill/curate/ent/link"
	"github.com/ljtill/curate/pkg/store"
)

// Controller holds the three concurrency structures: the per-link claim set,
// the per-edition mutex map, and the handler semaphore.
//
// The link claim prevents replayed change events from creating duplicate
// runs; the edition mutex serializes feedback edits on one edition; the
// semaphore bounds in-flight handlers under a burst.
type Controller struct {
	mu      sync.Mutex
	claimed map[string]struct{}

	editionMu sync.Mutex
	editions  map[string]*sync.Mutex

	sem *semaphore.Weighted
}

// NewController creates a Controller with the given handler capacity.
func NewController(maxHandlers int64) *Controller {
	return &Controller{
		claimed:  make(map[string]struct{}),
		editions: make(map[string]*sync.Mutex),
		sem:      semaphore.NewWeighted(maxHandlers),
	}
}

// ClaimLink claims a link for processing. The claim succeeds only when:
// the link exists and is not failed, the event carries the initial
// submitted status, the link's current status still matches it (a replayed
// event for an already-advanced link is stale), and no handler holds the
// link already. Returns a release func, or false without side effects.
func (c *Controller) ClaimLink(ctx context.Context, s *store.Store, linkID, eventStatus string) (func(), bool) {
	if eventStatus != string(link.StatusSubmitted) {
		return nil, false
	}

	c.mu.Lock()
	if _, held := c.claimed[linkID]; held {
		c.mu.Unlock()
		return nil, false
	}
	c.claimed[linkID] = struct{}{}
	c.mu.Unlock()

	release := func() {
		c.mu.Lock()
		delete(c.claimed, linkID)
		c.mu.Unlock()
	}

	l, err := s.GetLink(ctx, linkID)
	if err != nil || l == nil || l.Status != link.StatusSubmitted {
		release()
		return nil, false
	}
	return release, true
}

// EditionLock returns the mutex for an edition, creating it on first use.
func (c *Controller) EditionLock(editionID string) *sync.Mutex {
	c.editionMu.Lock()
	defer c.editionMu.Unlock()
	m, ok := c.editions[editionID]
	if !ok {
		m = &sync.Mutex{}
		c.editions[editionID] = m
	}
	return m
}

// AcquireSlot blocks until a handler slot is free or ctx is cancelled.
func (c *Controller) AcquireSlot(ctx context.Context) error {
	return c.sem.Acquire(ctx, 1)
}

// ReleaseSlot frees a handler slot.
func (c *Controller) ReleaseSlot() {
	c.sem.Release(1)
}

// claimCount returns the number of held claims. Used by tests.
func (c *Controller) claimCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.claimed)
}
