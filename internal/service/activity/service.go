// Package activity implements the append-only activity log: recording
// events from other services and serving the admin-facing query and
// statistics operations.
package activity

import (
	"context"
	"log/slog"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// activityRepo defines the repository interface needed by the activity service.
type activityRepo interface {
	Create(ctx context.Context, e domain.ActivityEvent) (domain.ActivityEvent, error)
	Query(ctx context.Context, f domain.ActivityFilter, limit, offset int) ([]domain.ActivityEvent, int, error)
	Stats(ctx context.Context, f domain.ActivityFilter) (domain.ActivityStats, error)
}

// Service implements activity log operations.
type Service struct {
	log    *slog.Logger
	events activityRepo
}

// NewService creates a new activity service instance.
func NewService(logger *slog.Logger, events activityRepo) *Service {
	return &Service{
		log:    logger.With("service", "activity"),
		events: events,
	}
}
