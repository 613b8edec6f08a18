// Package ideas implements AI idea generation from sentiment snapshots.
//
// Unlike sentiment analysis, this service fails loudly: a missing provider
// key, a timed-out call, or an unparsable response propagates as an error
// instead of degrading, since an empty idea list would read as "no insights".
package ideas

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

// ideaRepo defines the idea suggestion repository interface needed by the service.
type ideaRepo interface {
	CreateBatch(ctx context.Context, ideas []domain.IdeaSuggestion) ([]domain.IdeaSuggestion, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.IdeaSuggestion, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (domain.IdeaSuggestion, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, status *domain.IdeaStatus, limit, offset int) ([]domain.IdeaSuggestion, error)
	ListBySnapshot(ctx context.Context, snapshotID uuid.UUID) ([]domain.IdeaSuggestion, error)
}

// snapshotRepo defines the snapshot lookup needed by the ideas service.
type snapshotRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error)
}

// batchRepo advances the source comment batch through the pipeline.
type batchRepo interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error
}

// creatorRepo defines the creator lookups needed by the ideas service.
type creatorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
}

// textGenerator is the single call shape used against the external model.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// txManager runs a function within a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// activityLog records domain events in the activity log.
type activityLog interface {
	Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error
}

// Service implements idea generation and the idea lifecycle.
type Service struct {
	log        *slog.Logger
	ideas      ideaRepo
	snapshots  snapshotRepo
	batches    batchRepo
	creators   creatorRepo
	provider   textGenerator
	tx         txManager
	activity   activityLog
	cfg        config.PipelineConfig
	configured bool
}

// NewService creates a new ideas service instance. provider may be nil when
// no API key is configured; Generate then fails fast with a configuration
// error instead of attempting any network call.
func NewService(
	logger *slog.Logger,
	ideas ideaRepo,
	snapshots snapshotRepo,
	batches batchRepo,
	creators creatorRepo,
	provider textGenerator,
	tx txManager,
	activity activityLog,
	cfg config.PipelineConfig,
	configured bool,
) *Service {
	return &Service{
		log:        logger.With("service", "ideas"),
		ideas:      ideas,
		snapshots:  snapshots,
		batches:    batches,
		creators:   creators,
		provider:   provider,
		tx:         tx,
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
