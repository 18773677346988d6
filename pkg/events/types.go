// Package events provides in-process event fanout for the pipeline plus an
// optional external bus for cross-process delivery. Delivery is best effort:
// subscribers with full queues lose their oldest events, and bus failures are
// logged and swallowed so persistence never depends on event delivery.
package events

// Event types published by the pipeline.
const (
	// EventTypeAgentRunStart fires when an agent stage begins.
	EventTypeAgentRunStart = "agent-run-start"

	// EventTypeAgentRunComplete fires when an agent stage finishes,
	// successfully or not.
	EventTypeAgentRunComplete = "agent-run-complete"

	// EventTypeLinkUpdate carries a rendered HTML fragment for the link's
	// current row state. Consumed by web clients over SSE.
	EventTypeLinkUpdate = "link-update"
)

// Event is a single pipeline event. Data is JSON-shaped; the bus serializes
// it verbatim.
type Event struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// AgentRunStart builds the start-of-stage event payload.
func AgentRunStart(runID, stage, triggerID string) Event {
	return Event{
		Type: EventTypeAgentRunStart,
		Data: map[string]interface{}{
			"run_id":     runID,
			"stage":      stage,
			"trigger_id": triggerID,
		},
	}
}

// AgentRunComplete builds the end-of-stage event payload.
func AgentRunComplete(runID, stage, triggerID, status string, totalTokens int) Event {
	return Event{
		Type: EventTypeAgentRunComplete,
		Data: map[string]interface{}{
			"run_id":       runID,
			"stage":        stage,
			"trigger_id":   triggerID,
			"status":       status,
			"total_tokens": totalTokens,
		},
	}
}

// LinkUpdate builds the link row refresh event. html is a rendered fragment,
// not a document.
func LinkUpdate(linkID, status, html string) Event {
	return Event{
		Type: EventTypeLinkUpdate,
		Data: map[string]interface{}{
			"link_id": linkID,
			"status":  status,
			"html":    html,
		},
	}
}
