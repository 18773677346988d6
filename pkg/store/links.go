package store

import (
	"context"
	"time"

	"github.com/ljtill/curate/ent"
	"github.com/ljtill/curate/ent/link"
)

// LinkPartition returns the partition key for a link: its edition id, or the
// sentinel when unattached.
func LinkPartition(editionID *string) string {
	if editionID == nil || *editionID == "" {
		return UnattachedPartition
	}
	return *editionID
}

// linkDoc is the change-feed snapshot of a link. Only the fields the
// orchestrator routes on are included.
func linkDoc(l *ent.Link) map[string]interface{} {
	doc := map[string]interface{}{
		"id":     l.ID,
		"url":    l.URL,
		"status": string(l.Status),
	}
	if l.EditionID != nil {
		doc["edition_id"] = *l.EditionID
	}
	return doc
}

// CreateLink persists a new link and appends its change record.
func (s *Store) CreateLink(ctx context.Context, id, url string, title, editionID *string) (*ent.Link, error) {
	defer s.observe("links.create", time.Now())

	var created *ent.Link
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		l, err := tx.Link.Create().
			SetID(id).
			SetURL(url).
			SetNillableTitle(title).
			SetNillableEditionID(editionID).
			Save(ctx)
		if err != nil {
			return &TransportError{Op: "links.create", Err: err}
		}
		created = l
		return appendChange(ctx, tx, ContainerLinks, l.ID, LinkPartition(l.EditionID), linkDoc(l))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetLink returns the link by id, or nil when it does not exist or is
// soft-deleted.
func (s *Store) GetLink(ctx context.Context, id string) (*ent.Link, error) {
	defer s.observe("links.get", time.Now())

	l, err := s.client.Link.Query().
		Where(link.IDEQ(id), link.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &TransportError{Op: "links.get", Err: err}
	}
	return l, nil
}

// UpdateLink replaces the link's mutable fields, refreshes updated_at, and
// appends a change record reflecting the new state.
func (s *Store) UpdateLink(ctx context.Context, l *ent.Link) (*ent.Link, error) {
	defer s.observe("links.update", time.Now())

	var updated *ent.Link
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		upd := tx.Link.UpdateOneID(l.ID).
			SetURL(l.URL).
			SetStatus(l.Status).
			SetNillableTitle(l.Title).
			SetNillableContent(l.Content).
			SetNillableReview(l.Review).
			SetNillableEditionID(l.EditionID)
		saved, err := upd.Save(ctx)
		if err != nil {
			return &TransportError{Op: "links.update", Err: err}
		}
		updated = saved
		return appendChange(ctx, tx, ContainerLinks, saved.ID, LinkPartition(saved.EditionID), linkDoc(saved))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetLinkStatus transitions only the status field. Used by the orchestrator's
// post-run fix-up and by agent tools.
func (s *Store) SetLinkStatus(ctx context.Context, id string, status link.Status) (*ent.Link, error) {
	defer s.observe("links.set_status", time.Now())

	var updated *ent.Link
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		saved, err := tx.Link.UpdateOneID(id).
			SetStatus(status).
			Save(ctx)
		if err != nil {
			return &TransportError{Op: "links.set_status", Err: err}
		}
		updated = saved
		return appendChange(ctx, tx, ContainerLinks, saved.ID, LinkPartition(saved.EditionID), linkDoc(saved))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SoftDeleteLink sets the tombstone; the link disappears from all reads.
func (s *Store) SoftDeleteLink(ctx context.Context, id string) error {
	defer s.observe("links.soft_delete", time.Now())

	return s.withTx(ctx, func(tx *ent.Tx) error {
		saved, err := tx.Link.UpdateOneID(id).
			SetDeletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return &TransportError{Op: "links.soft_delete", Err: err}
		}
		doc := linkDoc(saved)
		doc["deleted"] = true
		return appendChange(ctx, tx, ContainerLinks, saved.ID, LinkPartition(saved.EditionID), doc)
	})
}

// ListLinks returns non-deleted links, newest first.
func (s *Store) ListLinks(ctx context.Context, limit int) ([]*ent.Link, error) {
	defer s.observe("links.list", time.Now())

	links, err := s.client.Link.Query().
		Where(link.DeletedAtIsNil()).
		Order(ent.Desc(link.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "links.list", Err: err}
	}
	return links, nil
}

// ListLinksByEdition returns non-deleted links attached to an edition,
// oldest first.
func (s *Store) ListLinksByEdition(ctx context.Context, editionID string) ([]*ent.Link, error) {
	defer s.observe("links.list_by_edition", time.Now())

	links, err := s.client.Link.Query().
		Where(link.EditionIDEQ(editionID), link.DeletedAtIsNil()).
		Order(ent.Asc(link.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "links.list_by_edition", Err: err}
	}
	return links, nil
}
