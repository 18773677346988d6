package agent

import (
	"fmt"
	"strings"
)

// LinkTask builds the orchestrator prompt for a link-driven run. The agent
// advances the link through fetch, review, and draft using the tool set,
// recording each stage as it goes.
func LinkTask(linkID, url, status, editionID string) string {
	var b strings.Builder
	b.WriteString("You are the editorial pipeline orchestrator.\n\n")
	fmt.Fprintf(&b, "A link changed:\n  id: %s\n  url: %s\n  status: %s\n", linkID, url, status)
	if editionID != "" {
		fmt.Fprintf(&b, "  edition_id: %s\n", editionID)
	}
	b.WriteString(`
Advance this link through the pipeline. The stage order is
fetch -> review -> draft; the incoming status tells you which stage is next
(submitted -> fetch, fetching -> review, reviewed -> draft). Before each stage
call record_stage_start; after it call record_stage_complete with the stage's
token usage. Use save_content, save_review, and save_draft to persist stage
results. If a stage cannot complete, call mark_failed and stop.`)
	return b.String()
}

// EditTask builds the orchestrator prompt for a feedback-driven edit run.
// The feedback comment is appended only when the author opted in to having
// the system learn from it.
func EditTask(editionID, section, comment string, includeComment bool) string {
	var b strings.Builder
	b.WriteString("You are the editorial pipeline orchestrator.\n\n")
	fmt.Fprintf(&b, "Feedback arrived on edition %s, section %q.\n", editionID, section)
	if includeComment {
		fmt.Fprintf(&b, "The feedback comment:\n%s\n", comment)
	}
	b.WriteString(`
Record the edit stage with record_stage_start and record_stage_complete,
revise the section to address the feedback, and persist the result with
save_edit.`)
	return b.String()
}

// PublishTask builds the orchestrator prompt for a publish command.
func PublishTask(editionID string) string {
	return fmt.Sprintf(`You are the editorial pipeline orchestrator.

Edition %s is ready to publish. Record the publish stage with
record_stage_start and record_stage_complete, and call publish_edition to
render and upload it.`, editionID)
}
