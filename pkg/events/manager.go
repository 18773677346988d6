package events

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// BusPublisher forwards events to an external bus. Implemented by Bus; nil
// when no bus is configured.
type BusPublisher interface {
	Publish(event Event) error
}

// Subscription is one subscriber's bounded event queue. Events arrive on C;
// when the queue is full the oldest event is dropped to make room.
type Subscription struct {
	ID string
	C  chan Event
}

// Manager fans events out to in-process subscribers and, when configured, an
// external bus. Each process has one Manager instance.
type Manager struct {
	subscribers map[string]*Subscription
	mu          sync.RWMutex

	queueSize int
	bus       BusPublisher
}

// NewManager creates a Manager. queueSize bounds each subscriber's queue. bus
// may be nil; a single warning is logged and external delivery is skipped.
func NewManager(queueSize int, bus BusPublisher) *Manager {
	m := &Manager{
		subscribers: make(map[string]*Subscription),
		queueSize:   queueSize,
		bus:         bus,
	}
	// Warn exactly once at construction instead of on every publish.
	if bus == nil {
		slog.Warn("Event bus not configured; events are delivered in-process only")
	}
	return m
}

// Subscribe registers a new subscriber and returns its queue.
func (m *Manager) Subscribe() *Subscription {
	sub := &Subscription{
		ID: uuid.New().String(),
		C:  make(chan Event, m.queueSize),
	}
	m.mu.Lock()
	m.subscribers[sub.ID] = sub
	m.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscriber and closes its queue. The close happens
// under the write lock while Deliver sends under the read lock, so a racing
// publish can never hit a closed channel.
func (m *Manager) Unsubscribe(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sub, ok := m.subscribers[id]; ok {
		delete(m.subscribers, id)
		close(sub.C)
	}
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers)
}

// Publish delivers an event to every subscriber and the bus. Never blocks:
// a full subscriber queue drops its oldest event to admit the new one.
func (m *Manager) Publish(event Event) {
	m.Deliver(event)

	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(event); err != nil {
		// Bus delivery is best effort. The document write already
		// committed; the change feed remains the source of truth.
		slog.Warn("Failed to publish event to bus", "event_type", event.Type, "error", err)
	}
}

// Deliver fans an event out to in-process subscribers only. Used directly by
// the bus consumer so remote events don't echo back onto the bus. Sends are
// non-blocking, so holding the read lock for the whole fan-out is safe and
// keeps every send ordered before any Unsubscribe close.
func (m *Manager) Deliver(event Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub.C <- event:
		default:
			// Queue full. Evict the oldest, then retry once; a racing
			// reader may have drained the queue in between.
			select {
			case dropped := <-sub.C:
				slog.Warn("Subscriber queue full, dropped oldest event",
					"subscriber_id", sub.ID, "dropped_type", dropped.Type)
			default:
			}
			select {
			case sub.C <- event:
			default:
			}
		}
	}
}
