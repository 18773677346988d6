// Package agent defines the contract between the pipeline and the external
// LLM agent: a black-box callable plus the tool surface it drives the
// pipeline through. Stage semantics live in the tools; the agent decides
// which to call.
package agent

import "context"

// Result is what one agent invocation produces. Usage carries the provider's
// raw token accounting; the run ledger normalizes key names.
type Result struct {
	Text  string
	Usage map[string]interface{}
}

// Agent is the external orchestrator callable. Run receives a task
// description and a per-run tool set, and blocks until the agent finishes or
// ctx is cancelled.
type Agent interface {
	Run(ctx context.Context, task string, tools *ToolSet) (*Result, error)
}
