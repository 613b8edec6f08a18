// Package sentiment implements the comment analysis pipeline: chunked
// classification calls to the text-generation provider, neutral fallback on
// chunk failure, and aggregation into persisted snapshots.
//
// This service favors availability over correctness: a chunk that times out
// or returns garbage degrades to neutral classifications instead of failing
// the batch. The degraded chunk count is reported so callers can tell a
// clean run from a degraded one.
package sentiment

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

// batchRepo defines the comment batch access needed by the sentiment service.
type batchRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error
}

// snapshotRepo defines the snapshot repository interface needed by the service.
type snapshotRepo interface {
	Create(ctx context.Context, s domain.SentimentSnapshot) (domain.SentimentSnapshot, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error)
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.SentimentSnapshot, error)
}

// creatorRepo defines the creator lookups needed by the sentiment service.
type creatorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
}

// textGenerator is the single call shape used against the external model.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// activityLog records domain events in the activity log.
type activityLog interface {
	Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error
}

// Service implements sentiment analysis operations.
type Service struct {
	log        *slog.Logger
	batches    batchRepo
	snapshots  snapshotRepo
	creators   creatorRepo
	provider   textGenerator
	activity   activityLog
	cfg        config.PipelineConfig
	configured bool
}

// NewService creates a new sentiment service instance. provider may be nil
// when no API key is configured; analysis then runs fully degraded, with
// every chunk classified neutral and no network calls made.
func NewService(
	logger *slog.Logger,
	batches batchRepo,
	snapshots snapshotRepo,
	creators creatorRepo,
	provider textGenerator,
	activity activityLog,
	cfg config.PipelineConfig,
	configured bool,
) *Service {
	return &Service{
		log:        logger.With("service", "sentiment"),
		batches:    batches,
		snapshots:  snapshots,
		creators:   creators,
		provider:   provider,
		activity:   activity,
		cfg:        cfg,
		configured: configured && provider != nil,
	}
}

// requireCreatorOwner checks that the current user owns the creator profile
// or is an admin.
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

// GetSnapshot returns a snapshot readable by its creator's owner or an admin.
func (s *Service) GetSnapshot(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error) {
	snap, err := s.snapshots.GetByID(ctx, id)
	if err != nil {
		return domain.SentimentSnapshot{}, fmt.Errorf("sentiment.GetSnapshot: %w", err)
	}

	if _, err := s.requireCreatorOwner(ctx, snap.CreatorID); err != nil {
		return domain.SentimentSnapshot{}, err
	}
	return snap, nil
}

// ListSnapshots returns a creator's snapshots, newest first. Owner or admin only.
func (s *Service) ListSnapshots(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error) {
	if _, err := s.requireCreatorOwner(ctx, creatorID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	snaps, err := s.snapshots.ListByCreator(ctx, creatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("sentiment.ListSnapshots: %w", err)
	}
	return snaps, nil
}
