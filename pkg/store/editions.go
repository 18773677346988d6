package store

import (
	"context"
	"time"

	"github.com/ljtill/curate/ent"
	"github.com/ljtill/curate/ent/edition"
)

// CreateEdition persists a new edition. Editions are not feed-visible; the
// pipeline is driven by link and feedback changes only.
func (s *Store) CreateEdition(ctx context.Context, id string) (*ent.Edition, error) {
	defer s.observe("editions.create", time.Now())

	e, err := s.client.Edition.Create().
		SetID(id).
		SetContent(map[string]interface{}{}).
		SetLinkIds([]string{}).
		Save(ctx)
	if err != nil {
		return nil, &TransportError{Op: "editions.create", Err: err}
	}
	return e, nil
}

// GetEdition returns the edition by id, or nil when absent or soft-deleted.
func (s *Store) GetEdition(ctx context.Context, id string) (*ent.Edition, error) {
	defer s.observe("editions.get", time.Now())

	e, err := s.client.Edition.Query().
		Where(edition.IDEQ(id), edition.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &TransportError{Op: "editions.get", Err: err}
	}
	return e, nil
}

// UpdateEdition replaces the edition's mutable fields and refreshes
// updated_at.
func (s *Store) UpdateEdition(ctx context.Context, e *ent.Edition) (*ent.Edition, error) {
	defer s.observe("editions.update", time.Now())

	upd := s.client.Edition.UpdateOneID(e.ID).
		SetStatus(e.Status).
		SetContent(e.Content).
		SetLinkIds(e.LinkIds).
		SetNillablePublishedAt(e.PublishedAt)
	saved, err := upd.Save(ctx)
	if err != nil {
		return nil, &TransportError{Op: "editions.update", Err: err}
	}
	return saved, nil
}

// SoftDeleteEdition sets the tombstone.
func (s *Store) SoftDeleteEdition(ctx context.Context, id string) error {
	defer s.observe("editions.soft_delete", time.Now())

	err := s.client.Edition.UpdateOneID(id).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return &TransportError{Op: "editions.soft_delete", Err: err}
	}
	return nil
}

// ListEditions returns non-deleted editions, newest first.
func (s *Store) ListEditions(ctx context.Context, limit int) ([]*ent.Edition, error) {
	defer s.observe("editions.list", time.Now())

	editions, err := s.client.Edition.Query().
		Where(edition.DeletedAtIsNil()).
		Order(ent.Desc(edition.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "editions.list", Err: err}
	}
	return editions, nil
}
