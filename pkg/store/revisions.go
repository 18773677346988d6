package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ljtill/curate/ent"
	"github.com/ljtill/curate/ent/revision"
)

// CreateRevision snapshots edition content with the next sequence number.
// Callers must hold the edition mutex; the unique (edition_id, sequence)
// index rejects racing writers that don't.
func (s *Store) CreateRevision(ctx context.Context, id, editionID, triggerID string, source revision.Source, content map[string]interface{}, summary string) (*ent.Revision, error) {
	defer s.observe("revisions.create", time.Now())

	var created *ent.Revision
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		// Next sequence = max + 1 for this edition.
		last, err := tx.Revision.Query().
			Where(revision.EditionIDEQ(editionID)).
			Order(ent.Desc(revision.FieldSequence)).
			First(ctx)
		next := 1
		switch {
		case err == nil:
			next = last.Sequence + 1
		case !ent.IsNotFound(err):
			return &TransportError{Op: "revisions.next_sequence", Err: err}
		}

		r, err := tx.Revision.Create().
			SetID(id).
			SetEditionID(editionID).
			SetSequence(next).
			SetSource(source).
			SetTriggerID(triggerID).
			SetContent(content).
			SetSummary(summary).
			Save(ctx)
		if err != nil {
			return &TransportError{Op: "revisions.create", Err: err}
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RevertEdition restores an edition's content to an earlier revision and
// records the revert itself as a new revision, so history stays append-only.
// Returns nil when the edition or the target sequence does not exist.
func (s *Store) RevertEdition(ctx context.Context, id, editionID string, sequence int) (*ent.Revision, error) {
	defer s.observe("editions.revert", time.Now())

	var created *ent.Revision
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		target, err := tx.Revision.Query().
			Where(
				revision.EditionIDEQ(editionID),
				revision.SequenceEQ(sequence),
				revision.DeletedAtIsNil(),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil
			}
			return &TransportError{Op: "revisions.revert_target", Err: err}
		}

		last, err := tx.Revision.Query().
			Where(revision.EditionIDEQ(editionID)).
			Order(ent.Desc(revision.FieldSequence)).
			First(ctx)
		if err != nil {
			return &TransportError{Op: "revisions.next_sequence", Err: err}
		}

		err = tx.Edition.UpdateOneID(editionID).
			SetContent(target.Content).
			Exec(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil
			}
			return &TransportError{Op: "editions.revert", Err: err}
		}

		r, err := tx.Revision.Create().
			SetID(id).
			SetEditionID(editionID).
			SetSequence(last.Sequence + 1).
			SetSource(revision.SourceRevert).
			SetTriggerID(target.ID).
			SetContent(target.Content).
			SetSummary(fmt.Sprintf("Reverted to revision %d", sequence)).
			Save(ctx)
		if err != nil {
			return &TransportError{Op: "revisions.create", Err: err}
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListRevisions returns an edition's revisions, newest first.
func (s *Store) ListRevisions(ctx context.Context, editionID string, limit int) ([]*ent.Revision, error) {
	defer s.observe("revisions.list", time.Now())

	revs, err := s.client.Revision.Query().
		Where(revision.EditionIDEQ(editionID), revision.DeletedAtIsNil()).
		Order(ent.Desc(revision.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "revisions.list", Err: err}
	}
	return revs, nil
}

// GetRevision returns a single revision by id, or nil when absent.
func (s *Store) GetRevision(ctx context.Context, id string) (*ent.Revision, error) {
	defer s.observe("revisions.get", time.Now())

	r, err := s.client.Revision.Query().
		Where(revision.IDEQ(id), revision.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &TransportError{Op: "revisions.get", Err: err}
	}
	return r, nil
}
