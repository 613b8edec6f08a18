package comments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// ImportInput holds parameters for the import operation. Payload carries the
// raw upload in the encoding implied by Source.
type ImportInput struct {
	CreatorID           uuid.UUID
	Source              domain.BatchSource
	Payload             string
	LinkedContentItemID *uuid.UUID
}

// Validate validates the import input.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if i.CreatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "creator_id", Message: "required"})
	}
	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "unknown batch source"})
	}
	if i.Payload == "" {
		errs = append(errs, domain.FieldError{Field: "payload", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Import parses and persists one immutable comment batch for a creator.
// The caller must own the creator profile or be an admin. Comments are
// never deduplicated against prior batches.
func (s *Service) Import(ctx context.Context, input ImportInput) (domain.CommentBatch, error) {
	if err := input.Validate(); err != nil {
		return domain.CommentBatch{}, err
	}

	creator, err := s.requireCreatorOwner(ctx, input.CreatorID)
	if err != nil {
		return domain.CommentBatch{}, err
	}

	now := time.Now().UTC()
	comments, err := ParseRawComments(input.Source, input.Payload, now)
	if err != nil {
		return domain.CommentBatch{}, err
	}

	if len(comments) == 0 {
		return domain.CommentBatch{}, domain.NewValidationError("payload", "no comments found in payload")
	}
	if len(comments) > s.cfg.MaxCommentsPerBatch {
		return domain.CommentBatch{}, domain.NewValidationError("payload",
			fmt.Sprintf("too many comments: %d exceeds limit of %d", len(comments), s.cfg.MaxCommentsPerBatch))
	}

	batch, err := s.batches.Create(ctx, domain.CommentBatch{
		ID:                  uuid.New(),
		CreatorID:           creator.ID,
		Source:              input.Source,
		RawComments:         comments,
		Status:              domain.BatchStatusImported,
		LinkedContentItemID: input.LinkedContentItemID,
		ImportedAt:          now,
	})
	if err != nil {
		return domain.CommentBatch{}, fmt.Errorf("comments.Import: %w", err)
	}

	if err := s.activity.Log(ctx, domain.EventCommentBatchImported, nil, &creator.ID, map[string]any{
		"batch_id":      batch.ID.String(),
		"comment_count": batch.CommentCount(),
		"source":        batch.Source.String(),
	}); err != nil {
		s.log.WarnContext(ctx, "failed to record import event", slog.Any("error", err))
	}

	s.log.InfoContext(ctx, "comment batch imported",
		slog.String("batch_id", batch.ID.String()),
		slog.Int("comments", batch.CommentCount()),
		slog.String("source", batch.Source.String()))

	return batch, nil
}

// GetBatch returns a batch readable by its creator's owner or an admin.
func (s *Service) GetBatch(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error) {
	batch, err := s.batches.GetByID(ctx, id)
	if err != nil {
		return domain.CommentBatch{}, fmt.Errorf("comments.GetBatch: %w", err)
	}

	if _, err := s.requireCreatorOwner(ctx, batch.CreatorID); err != nil {
		return domain.CommentBatch{}, err
	}
	return batch, nil
}

// ListBatches returns a creator's batches plus the total count, newest
// first. Owner or admin only.
func (s *Service) ListBatches(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.CommentBatch, int, error) {
	if _, err := s.requireCreatorOwner(ctx, creatorID); err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	batches, total, err := s.batches.ListByCreator(ctx, creatorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("comments.ListBatches: %w", err)
	}
	return batches, total, nil
}
