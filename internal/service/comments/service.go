// Package comments implements comment batch import: parsing the three
// supported payload encodings and persisting immutable batch records.
package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/config"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// batchRepo defines the repository interface needed by the comments service.
type batchRepo interface {
	Create(ctx context.Context, b domain.CommentBatch) (domain.CommentBatch, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.CommentBatch, int, error)
}

// creatorRepo defines the creator lookups needed by the comments service.
type creatorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
}

// activityLog records domain events in the activity log.
type activityLog interface {
	Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error
}

// Service implements comment batch operations.
type Service struct {
	log      *slog.Logger
	batches  batchRepo
	creators creatorRepo
	activity activityLog
	cfg      config.PipelineConfig
}

// NewService creates a new comments service instance.
func NewService(logger *slog.Logger, batches batchRepo, creators creatorRepo, activity activityLog, cfg config.PipelineConfig) *Service {
	return &Service{
		log:      logger.With("service", "comments"),
		batches:  batches,
		creators: creators,
		activity: activity,
		cfg:      cfg,
	}
}

// requireCreatorOwner checks that the current user owns the creator profile
// or is an admin. Returns the profile on success.
func (s *Service) requireCreatorOwner(ctx context.Context, creatorID uuid.UUID) (domain.CreatorProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CreatorProfile{}, domain.ErrUnauthorized
	}

	creator, err := s.creators.GetByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CreatorProfile{}, domain.NewValidationError("creator_id", "creator profile not found")
		}
		return domain.CreatorProfile{}, fmt.Errorf("get creator: %w", err)
	}

	if creator.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return domain.CreatorProfile{}, domain.ErrForbidden
	}
	return creator, nil
}
