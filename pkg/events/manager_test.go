package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBus struct {
	published []Event
	err       error
}

func (b *recordingBus) Publish(event Event) error {
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, event)
	return nil
}

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	m := NewManager(10, nil)
	a := m.Subscribe()
	b := m.Subscribe()
	defer m.Unsubscribe(a.ID)
	defer m.Unsubscribe(b.ID)

	m.Publish(AgentRunStart("run-1", "fetch", "link-1"))

	for _, sub := range []*Subscription{a, b} {
		select {
		case evt := <-sub.C:
			assert.Equal(t, EventTypeAgentRunStart, evt.Type)
			assert.Equal(t, "run-1", evt.Data["run_id"])
		default:
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestFullQueueDropsOldest(t *testing.T) {
	m := NewManager(2, nil)
	sub := m.Subscribe()
	defer m.Unsubscribe(sub.ID)

	m.Publish(LinkUpdate("link-1", "submitted", ""))
	m.Publish(LinkUpdate("link-2", "submitted", ""))
	m.Publish(LinkUpdate("link-3", "submitted", ""))

	first := <-sub.C
	second := <-sub.C
	assert.Equal(t, "link-2", first.Data["link_id"])
	assert.Equal(t, "link-3", second.Data["link_id"])

	select {
	case <-sub.C:
		t.Fatal("queue should hold exactly two events")
	default:
	}
}

func TestPublishNeverBlocksWithoutReaders(t *testing.T) {
	m := NewManager(1, nil)
	sub := m.Subscribe()
	defer m.Unsubscribe(sub.ID)

	// Far more events than the queue holds; Publish must return every time.
	for i := 0; i < 100; i++ {
		m.Publish(AgentRunComplete("run-1", "fetch", "link-1", "completed", 10))
	}
}

func TestUnsubscribeClosesQueue(t *testing.T) {
	m := NewManager(10, nil)
	sub := m.Subscribe()
	require.Equal(t, 1, m.SubscriberCount())

	m.Unsubscribe(sub.ID)
	assert.Equal(t, 0, m.SubscriberCount())

	_, open := <-sub.C
	assert.False(t, open)

	// Publishing after all subscribers leave is a no-op.
	m.Publish(LinkUpdate("link-1", "failed", ""))
}

func TestPublishRacingUnsubscribeDoesNotPanic(t *testing.T) {
	m := NewManager(2, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			m.Publish(LinkUpdate("link-1", "submitted", ""))
		}
	}()

	// Subscribers churn while the publisher runs; a send must never hit a
	// closed queue.
	for i := 0; i < 500; i++ {
		sub := m.Subscribe()
		m.Unsubscribe(sub.ID)
	}
	<-done
}

func TestPublishForwardsToBus(t *testing.T) {
	bus := &recordingBus{}
	m := NewManager(10, bus)

	m.Publish(AgentRunStart("run-1", "orchestrator", "link-1"))

	require.Len(t, bus.published, 1)
	assert.Equal(t, EventTypeAgentRunStart, bus.published[0].Type)
}

func TestBusFailureDoesNotAffectLocalDelivery(t *testing.T) {
	bus := &recordingBus{err: errors.New("broker unavailable")}
	m := NewManager(10, bus)
	sub := m.Subscribe()
	defer m.Unsubscribe(sub.ID)

	m.Publish(LinkUpdate("link-1", "reviewed", "<tr></tr>"))

	select {
	case evt := <-sub.C:
		assert.Equal(t, EventTypeLinkUpdate, evt.Type)
	default:
		t.Fatal("local delivery should survive bus failure")
	}
}

func TestDeliverSkipsBus(t *testing.T) {
	bus := &recordingBus{}
	m := NewManager(10, bus)
	sub := m.Subscribe()
	defer m.Unsubscribe(sub.ID)

	m.Deliver(LinkUpdate("link-1", "drafted", ""))

	assert.Empty(t, bus.published)
	select {
	case evt := <-sub.C:
		assert.Equal(t, "link-1", evt.Data["link_id"])
	default:
		t.Fatal("subscriber did not receive event")
	}
}
