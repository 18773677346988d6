package publish

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ljtill/curate/ent/edition"
	"github.com/ljtill/curate/pkg/store"
)

const contentTypeHTML = "text/html; charset=utf-8"

// Publisher renders an edition and its index page and uploads both. It is
// the concrete EditionPublisher behind the publish_edition tool.
type Publisher struct {
	store    *store.Store
	uploader Uploader
}

// NewPublisher creates a Publisher.
func NewPublisher(s *store.Store, uploader Uploader) *Publisher {
	return &Publisher{store: s, uploader: uploader}
}

// PublishEdition renders the edition, uploads editions/<id>.html and a
// refreshed index.html, and marks the edition published.
func (p *Publisher) PublishEdition(ctx context.Context, editionID string) error {
	e, err := p.store.GetEdition(ctx, editionID)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("edition %s not found", editionID)
	}

	links, err := p.store.ListLinksByEdition(ctx, editionID)
	if err != nil {
		return err
	}

	now := time.Now()
	e.Status = edition.StatusPublished
	e.PublishedAt = &now

	page, err := RenderEdition(e, links)
	if err != nil {
		return err
	}
	if err := p.uploader.Upload(ctx, fmt.Sprintf("editions/%s.html", editionID), page, contentTypeHTML); err != nil {
		return err
	}

	if _, err := p.store.UpdateEdition(ctx, e); err != nil {
		return err
	}

	// The index reflects whatever is published at upload time; failure
	// here leaves a stale index, not a broken edition.
	editions, err := p.store.ListEditions(ctx, 100)
	if err != nil {
		return err
	}
	published := editions[:0:0]
	for _, ed := range editions {
		if ed.Status == edition.StatusPublished {
			published = append(published, ed)
		}
	}
	index, err := RenderIndex(published)
	if err != nil {
		return err
	}
	if err := p.uploader.Upload(ctx, "index.html", index, contentTypeHTML); err != nil {
		slog.Warn("Failed to refresh site index", "edition_id", editionID, "error", err)
	}

	slog.Info("Edition published", "edition_id", editionID, "links", len(links))
	return nil
}
