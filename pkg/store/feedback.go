package store

import (
	"context"
	"time"

	"github.com/ljtill/curate/ent"
	"github.com/ljtill/curate/ent/feedback"
)

func feedbackDoc(f *ent.Feedback) map[string]interface{} {
	return map[string]interface{}{
		"id":                  f.ID,
		"edition_id":          f.EditionID,
		"section":             f.Section,
		"comment":             f.Comment,
		"resolved":            f.Resolved,
		"learn_from_feedback": f.LearnFromFeedback,
	}
}

// CreateFeedback persists a new feedback document and appends its change
// record.
func (s *Store) CreateFeedback(ctx context.Context, id, editionID, section, comment string, learn bool) (*ent.Feedback, error) {
	defer s.observe("feedback.create", time.Now())

	var created *ent.Feedback
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		f, err := tx.Feedback.Create().
			SetID(id).
			SetEditionID(editionID).
			SetSection(section).
			SetComment(comment).
			SetLearnFromFeedback(learn).
			Save(ctx)
		if err != nil {
			return &TransportError{Op: "feedback.create", Err: err}
		}
		created = f
		return appendChange(ctx, tx, ContainerFeedback, f.ID, f.EditionID, feedbackDoc(f))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetFeedback returns the feedback by id, or nil when absent or soft-deleted.
func (s *Store) GetFeedback(ctx context.Context, id string) (*ent.Feedback, error) {
	defer s.observe("feedback.get", time.Now())

	f, err := s.client.Feedback.Query().
		Where(feedback.IDEQ(id), feedback.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &TransportError{Op: "feedback.get", Err: err}
	}
	return f, nil
}

// ResolveFeedback marks the feedback consumed by the edit stage. The change
// record is still appended; the orchestrator ignores resolved feedback on
// replay.
func (s *Store) ResolveFeedback(ctx context.Context, id string) (*ent.Feedback, error) {
	defer s.observe("feedback.resolve", time.Now())

	var updated *ent.Feedback
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		f, err := tx.Feedback.UpdateOneID(id).
			SetResolved(true).
			Save(ctx)
		if err != nil {
			return &TransportError{Op: "feedback.resolve", Err: err}
		}
		updated = f
		return appendChange(ctx, tx, ContainerFeedback, f.ID, f.EditionID, feedbackDoc(f))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListUnresolvedFeedback returns pending feedback for an edition, oldest
// first.
func (s *Store) ListUnresolvedFeedback(ctx context.Context, editionID string) ([]*ent.Feedback, error) {
	defer s.observe("feedback.list_unresolved", time.Now())

	items, err := s.client.Feedback.Query().
		Where(
			feedback.EditionIDEQ(editionID),
			feedback.ResolvedEQ(false),
			feedback.DeletedAtIsNil(),
		).
		Order(ent.Asc(feedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "feedback.list_unresolved", Err: err}
	}
	return items, nil
}
