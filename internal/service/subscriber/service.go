// Package subscriber implements subscription management: starting a
// subscription, changing tiers, and creator-facing subscriber listings.
package subscriber

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// subscriberRepo defines the repository interface needed by the subscriber service.
type subscriberRepo interface {
	Upsert(ctx context.Context, s domain.SubscriberProfile) (domain.SubscriberProfile, bool, error)
	GetByUserAndCreator(ctx context.Context, userID, creatorID uuid.UUID) (domain.SubscriberProfile, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SubscriberProfile, error)
	CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error)
}

// creatorRepo defines the creator lookups needed by the subscriber service.
type creatorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error)
}

// activityLog records domain events in the activity log.
type activityLog interface {
	Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error
}

// Service implements subscription operations.
type Service struct {
	log         *slog.Logger
	subscribers subscriberRepo
	creators    creatorRepo
	activity    activityLog
}

// NewService creates a new subscriber service instance.
func NewService(logger *slog.Logger, subscribers subscriberRepo, creators creatorRepo, activity activityLog) *Service {
	return &Service{
		log:         logger.With("service", "subscriber"),
		subscribers: subscribers,
		creators:    creators,
		activity:    activity,
	}
}
