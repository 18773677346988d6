// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/ent/changerecord"
	"github.com/ljtill/curate/ent/checkpoint"
	"github.com/ljtill/curate/ent/edition"
	"github.com/ljtill/curate/ent/feedback"
	"github.com/ljtill/curate/ent/link"
	"github.com/ljtill/curate/ent/revision"
	"github.com/ljtill/curate/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrunMixin := schema.AgentRun{}.Mixin()
	agentrunMixinFields0 := agentrunMixin[0].Fields()
	_ = agentrunMixinFields0
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunMixinFields0[0].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	// agentrunDescUpdatedAt is the schema descriptor for updated_at field.
	agentrunDescUpdatedAt := agentrunMixinFields0[1].Descriptor()
	// agentrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentrun.DefaultUpdatedAt = agentrunDescUpdatedAt.Default.(func() time.Time)
	// agentrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentrun.UpdateDefaultUpdatedAt = agentrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agentrunDescInputTokens is the schema descriptor for input_tokens field.
	agentrunDescInputTokens := agentrunFields[6].Descriptor()
	// agentrun.DefaultInputTokens holds the default value on creation for the input_tokens field.
	agentrun.DefaultInputTokens = agentrunDescInputTokens.Default.(int)
	// agentrunDescOutputTokens is the schema descriptor for output_tokens field.
	agentrunDescOutputTokens := agentrunFields[7].Descriptor()
	// agentrun.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	agentrun.DefaultOutputTokens = agentrunDescOutputTokens.Default.(int)
	// agentrunDescTotalTokens is the schema descriptor for total_tokens field.
	agentrunDescTotalTokens := agentrunFields[8].Descriptor()
	// agentrun.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	agentrun.DefaultTotalTokens = agentrunDescTotalTokens.Default.(int)
	// agentrunDescStartedAt is the schema descriptor for started_at field.
	agentrunDescStartedAt := agentrunFields[9].Descriptor()
	// agentrun.DefaultStartedAt holds the default value on creation for the started_at field.
	agentrun.DefaultStartedAt = agentrunDescStartedAt.Default.(func() time.Time)
	changerecordFields := schema.ChangeRecord{}.Fields()
	_ = changerecordFields
	// changerecordDescCreatedAt is the schema descriptor for created_at field.
	changerecordDescCreatedAt := changerecordFields[5].Descriptor()
	// changerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	changerecord.DefaultCreatedAt = changerecordDescCreatedAt.Default.(func() time.Time)
	checkpointMixin := schema.Checkpoint{}.Mixin()
	checkpointMixinFields0 := checkpointMixin[0].Fields()
	_ = checkpointMixinFields0
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointMixinFields0[0].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointMixinFields0[1].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	// checkpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpoint.UpdateDefaultUpdatedAt = checkpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	editionMixin := schema.Edition{}.Mixin()
	editionMixinFields0 := editionMixin[0].Fields()
	_ = editionMixinFields0
	editionFields := schema.Edition{}.Fields()
	_ = editionFields
	// editionDescCreatedAt is the schema descriptor for created_at field.
	editionDescCreatedAt := editionMixinFields0[0].Descriptor()
	// edition.DefaultCreatedAt holds the default value on creation for the created_at field.
	edition.DefaultCreatedAt = editionDescCreatedAt.Default.(func() time.Time)
	// editionDescUpdatedAt is the schema descriptor for updated_at field.
	editionDescUpdatedAt := editionMixinFields0[1].Descriptor()
	// edition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	edition.DefaultUpdatedAt = editionDescUpdatedAt.Default.(func() time.Time)
	// edition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	edition.UpdateDefaultUpdatedAt = editionDescUpdatedAt.UpdateDefault.(func() time.Time)
	feedbackMixin := schema.Feedback{}.Mixin()
	feedbackMixinFields0 := feedbackMixin[0].Fields()
	_ = feedbackMixinFields0
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackMixinFields0[0].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	// feedbackDescUpdatedAt is the schema descriptor for updated_at field.
	feedbackDescUpdatedAt := feedbackMixinFields0[1].Descriptor()
	// feedback.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	feedback.DefaultUpdatedAt = feedbackDescUpdatedAt.Default.(func() time.Time)
	// feedback.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	feedback.UpdateDefaultUpdatedAt = feedbackDescUpdatedAt.UpdateDefault.(func() time.Time)
	// feedbackDescResolved is the schema descriptor for resolved field.
	feedbackDescResolved := feedbackFields[4].Descriptor()
	// feedback.DefaultResolved holds the default value on creation for the resolved field.
	feedback.DefaultResolved = feedbackDescResolved.Default.(bool)
	// feedbackDescLearnFromFeedback is the schema descriptor for learn_from_feedback field.
	feedbackDescLearnFromFeedback := feedbackFields[5].Descriptor()
	// feedback.DefaultLearnFromFeedback holds the default value on creation for the learn_from_feedback field.
	feedback.DefaultLearnFromFeedback = feedbackDescLearnFromFeedback.Default.(bool)
	linkMixin := schema.Link{}.Mixin()
	linkMixinFields0 := linkMixin[0].Fields()
	_ = linkMixinFields0
	linkFields := schema.Link{}.Fields()
	_ = linkFields
	// linkDescCreatedAt is the schema descriptor for created_at field.
	linkDescCreatedAt := linkMixinFields0[0].Descriptor()
	// link.DefaultCreatedAt holds the default value on creation for the created_at field.
	link.DefaultCreatedAt = linkDescCreatedAt.Default.(func() time.Time)
	// linkDescUpdatedAt is the schema descriptor for updated_at field.
	linkDescUpdatedAt := linkMixinFields0[1].Descriptor()
	// link.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	link.DefaultUpdatedAt = linkDescUpdatedAt.Default.(func() time.Time)
	// link.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	link.UpdateDefaultUpdatedAt = linkDescUpdatedAt.UpdateDefault.(func() time.Time)
	revisionMixin := schema.Revision{}.Mixin()
	revisionMixinFields0 := revisionMixin[0].Fields()
	_ = revisionMixinFields0
	revisionFields := schema.Revision{}.Fields()
	_ = revisionFields
	// revisionDescCreatedAt is the schema descriptor for created_at field.
	revisionDescCreatedAt := revisionMixinFields0[0].Descriptor()
	// revision.DefaultCreatedAt holds the default value on creation for the created_at field.
	revision.DefaultCreatedAt = revisionDescCreatedAt.Default.(func() time.Time)
	// revisionDescUpdatedAt is the schema descriptor for updated_at field.
	revisionDescUpdatedAt := revisionMixinFields0[1].Descriptor()
	// revision.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	revision.DefaultUpdatedAt = revisionDescUpdatedAt.Default.(func() time.Time)
	// revision.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	revision.UpdateDefaultUpdatedAt = revisionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
