// Package llm implements the external agent contract on the Anthropic
// Messages API: a tool-use loop that hands tool calls to the run's dispatch
// table and accumulates token usage across turns.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ljtill/curate/pkg/agent"
)

// draftReminder is the single corrective follow-up sent when a drafting run
// ends without a saved draft.
const draftReminder = "You finished without calling save_draft or mark_failed. " +
	"Either save the drafted section with save_draft, or call mark_failed if the link cannot be drafted."

// Client is the Anthropic-backed agent.
type Client struct {
	client       anthropic.Client
	model        anthropic.Model
	maxTokens    int64
	maxToolTurns int
}

// NewClient creates a Client. The API key comes from the environment via the
// SDK's defaults; pass apiKey to override.
func NewClient(apiKey, model string, maxTokens int64, maxToolTurns int) *Client {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &Client{
		client:       anthropic.NewClient(opts...),
		model:        anthropic.Model(model),
		maxTokens:    maxTokens,
		maxToolTurns: maxToolTurns,
	}
}

// Run drives one agent conversation: send the task, execute tool calls until
// the model stops asking for them, and return the final text plus usage.
// A drafting run that ends without save_draft or mark_failed gets exactly one
// corrective follow-up before failing.
func (c *Client) Run(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
	toolParams := toolParams(tools)
	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(task)),
	}

	var inputTokens, outputTokens int64
	corrected := false

	for turn := 0; turn < c.maxToolTurns; turn++ {
		msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     c.model,
			MaxTokens: c.maxTokens,
			Messages:  messages,
			Tools:     toolParams,
		})
		if err != nil {
			return nil, fmt.Errorf("messages request failed: %w", err)
		}
		inputTokens += msg.Usage.InputTokens
		outputTokens += msg.Usage.OutputTokens

		if msg.StopReason == anthropic.StopReasonToolUse {
			messages = append(messages, msg.ToParam())
			results := make([]anthropic.ContentBlockParamUnion, 0, len(msg.Content))
			for _, block := range msg.Content {
				if block.Type != "tool_use" {
					continue
				}
				out := tools.Dispatch(ctx, block.Name, block.Input)
				isError := strings.HasPrefix(out, `{"error"`)
				if isError {
					slog.Debug("Tool returned error to agent", "tool", block.Name)
				}
				results = append(results, anthropic.NewToolResultBlock(block.ID, out, isError))
			}
			messages = append(messages, anthropic.NewUserMessage(results...))
			continue
		}

		// Terminal turn.
		if tools != nil && tools.ExpectDraft && !tools.DraftSaved() && !tools.MarkedFailed() {
			if !corrected {
				corrected = true
				messages = append(messages, msg.ToParam(),
					anthropic.NewUserMessage(anthropic.NewTextBlock(draftReminder)))
				continue
			}
			return nil, errors.New("agent finished without saving a draft")
		}

		return &agent.Result{
			Text: finalText(msg),
			Usage: map[string]interface{}{
				"input_token_count":  int(inputTokens),
				"output_token_count": int(outputTokens),
			},
		}, nil
	}

	return nil, fmt.Errorf("agent exceeded %d tool turns", c.maxToolTurns)
}

func finalText(msg *anthropic.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// toolParams converts the dispatch table to the API's tool declarations.
func toolParams(tools *agent.ToolSet) []anthropic.ToolUnionParam {
	if tools == nil {
		return nil
	}
	defs := tools.Definitions()
	params := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		properties, _ := def.InputSchema["properties"]
		required, _ := def.InputSchema["required"].([]string)
		tool := anthropic.ToolParam{
			Name:        def.Name,
			Description: anthropic.String(def.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: properties,
				Required:   required,
			},
		}
		params = append(params, anthropic.ToolUnionParam{OfTool: &tool})
	}
	return params
}
