package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// Create creates a new draft content item for the current creator.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.ContentItem, error) {
	creator, err := s.requireOwnProfile(ctx)
	if err != nil {
		return domain.ContentItem{}, err
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := input.Validate(); err != nil {
		return domain.ContentItem{}, err
	}

	now := time.Now().UTC()
	item, err := s.items.Create(ctx, domain.ContentItem{
		ID:           uuid.New(),
		CreatorID:    creator.ID,
		Title:        input.Title,
		Type:         input.Type,
		IsPremium:    input.IsPremium,
		RequiredTier: input.RequiredTier,
		Status:       domain.ContentStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("content.Create: %w", err)
	}

	s.log.InfoContext(ctx, "content item created",
		slog.String("item_id", item.ID.String()))

	return item, nil
}

// Update updates a content item owned by the current creator.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (domain.ContentItem, error) {
	item, err := s.ownedItem(ctx, id)
	if err != nil {
		return domain.ContentItem{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.ContentItem{}, err
	}

	if input.Title != nil {
		item.Title = strings.TrimSpace(*input.Title)
	}
	if input.Type != nil {
		item.Type = *input.Type
	}
	if input.IsPremium != nil {
		item.IsPremium = *input.IsPremium
	}
	if input.RequiredTier != nil {
		item.RequiredTier = input.RequiredTier
	}
	if input.ClearTier {
		item.RequiredTier = nil
	}
	if !item.IsPremium {
		item.RequiredTier = nil
	}
	item.UpdatedAt = time.Now().UTC()

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("content.Update: %w", err)
	}
	return updated, nil
}

// Publish moves a draft item to PUBLISHED and records the event.
// Publishing an already published item returns ErrConflict.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	item, err := s.ownedItem(ctx, id)
	if err != nil {
		return domain.ContentItem{}, err
	}

	if item.IsPublished() {
		return domain.ContentItem{}, fmt.Errorf("content.Publish: already published: %w", domain.ErrConflict)
	}

	now := time.Now().UTC()
	item.Status = domain.ContentStatusPublished
	item.PublishedAt = &now
	item.UpdatedAt = now

	published, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("content.Publish: %w", err)
	}

	if err := s.activity.Log(ctx, domain.EventContentPublished, nil, &item.CreatorID,
		map[string]any{"item_id": item.ID.String(), "title": item.Title}); err != nil {
		s.log.WarnContext(ctx, "failed to record publish event", slog.Any("error", err))
	}

	s.log.InfoContext(ctx, "content item published",
		slog.String("item_id", item.ID.String()))

	return published, nil
}

// Delete removes a content item owned by the current creator.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ownedItem(ctx, id); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("content.Delete: %w", err)
	}
	return nil
}

// Get returns one content item, applying the viewer's access level.
// Drafts are visible only to their owner. Premium published items require
// a sufficient subscription tier; insufficient access yields ErrForbidden.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("content.Get: %w", err)
	}

	owner, err := s.isOwner(ctx, item.CreatorID)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("content.Get: %w", err)
	}
	if owner {
		return item, nil
	}

	if !item.IsPublished() {
		// Hide the existence of drafts from non-owners.
		return domain.ContentItem{}, fmt.Errorf("content.Get: %w", domain.ErrNotFound)
	}

	tier, err := s.viewerTier(ctx, item.CreatorID)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("content.Get: %w", err)
	}
	if !domain.CanAccess(tier, item) {
		return domain.ContentItem{}, fmt.Errorf("content.Get: %w", domain.ErrForbidden)
	}

	return item, nil
}

// ListByCreator returns a creator's content as seen by the current viewer.
// The owner sees everything including drafts; everyone else sees published
// items their subscription tier grants access to.
func (s *Service) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.ContentItem, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	owner, err := s.isOwner(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("content.ListByCreator: %w", err)
	}

	if owner {
		items, err := s.items.ListByCreator(ctx, creatorID, false, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("content.ListByCreator: %w", err)
		}
		return items, nil
	}

	tier, err := s.viewerTier(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("content.ListByCreator: %w", err)
	}

	items, err := s.items.ListByCreator(ctx, creatorID, true, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("content.ListByCreator: %w", err)
	}

	accessible := items[:0]
	for _, item := range items {
		if domain.CanAccess(tier, item) {
			accessible = append(accessible, item)
		}
	}
	return accessible, nil
}

func (s *Service) ownedItem(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	creator, err := s.requireOwnProfile(ctx)
	if err != nil {
		return domain.ContentItem{}, err
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("get content item: %w", err)
	}
	if item.CreatorID != creator.ID {
		return domain.ContentItem{}, domain.ErrForbidden
	}
	return item, nil
}
