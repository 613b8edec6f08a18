// Package content implements content item management and the tier-based
// access checks applied when other users view a creator's catalog.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// contentRepo defines the repository interface needed by the content service.
type contentRepo interface {
	Create(ctx context.Context, c domain.ContentItem) (domain.ContentItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)
	Update(ctx context.Context, c domain.ContentItem) (domain.ContentItem, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, publishedOnly bool, limit, offset int) ([]domain.ContentItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// creatorRepo defines the creator lookups needed by the content service.
type creatorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error)
}

// subscriberRepo resolves a viewer's subscription tier with a creator.
type subscriberRepo interface {
	GetByUserAndCreator(ctx context.Context, userID, creatorID uuid.UUID) (domain.SubscriberProfile, error)
}

// activityLog records domain events in the activity log.
type activityLog interface {
	Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error
}

// Service implements content operations.
type Service struct {
	log         *slog.Logger
	items       contentRepo
	creators    creatorRepo
	subscribers subscriberRepo
	activity    activityLog
}

// NewService creates a new content service instance.
func NewService(logger *slog.Logger, items contentRepo, creators creatorRepo, subscribers subscriberRepo, activity activityLog) *Service {
	return &Service{
		log:         logger.With("service", "content"),
		items:       items,
		creators:    creators,
		subscribers: subscribers,
		activity:    activity,
	}
}

// requireOwnProfile returns the creator profile owned by the current user.
func (s *Service) requireOwnProfile(ctx context.Context) (domain.CreatorProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CreatorProfile{}, domain.ErrUnauthorized
	}

	profile, err := s.creators.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CreatorProfile{}, domain.ErrForbidden
		}
		return domain.CreatorProfile{}, fmt.Errorf("get own creator profile: %w", err)
	}
	return profile, nil
}

// viewerTier resolves the current user's subscription tier with a creator.
// Anonymous users and non-subscribers get the zero Tier, which fails every
// premium check.
func (s *Service) viewerTier(ctx context.Context, creatorID uuid.UUID) (domain.Tier, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", nil
	}

	sub, err := s.subscribers.GetByUserAndCreator(ctx, userID, creatorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("resolve viewer tier: %w", err)
	}
	return sub.Tier, nil
}

// isOwner reports whether the current user owns the given creator profile.
func (s *Service) isOwner(ctx context.Context, creatorID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, nil
	}

	creator, err := s.creators.GetByID(ctx, creatorID)
	if err != nil {
		return false, fmt.Errorf("get creator: %w", err)
	}
	return creator.UserID == userID, nil
}
