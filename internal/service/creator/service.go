// Package creator implements creator profile management.
package creator

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// creatorRepo defines the repository interface needed by the creator service.
type creatorRepo interface {
	Create(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error)
	Update(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error)
	List(ctx context.Context, limit, offset int) ([]domain.CreatorProfile, error)
}

// Service implements creator profile operations.
type Service struct {
	log      *slog.Logger
	creators creatorRepo
}

// NewService creates a new creator service instance.
func NewService(logger *slog.Logger, creators creatorRepo) *Service {
	return &Service{
		log:      logger.With("service", "creator"),
		creators: creators,
	}
}
