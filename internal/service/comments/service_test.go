package comments

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/config"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCfg() config.PipelineConfig {
	return config.PipelineConfig{MaxCommentsPerBatch: 2000}
}

func ownedCreator(ownerUserID, creatorID uuid.UUID) *creatorRepoMock {
	return &creatorRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
			if id != creatorID {
				return domain.CreatorProfile{}, domain.ErrNotFound
			}
			return domain.CreatorProfile{ID: creatorID, UserID: ownerUserID}, nil
		},
	}
}

func TestService_Import_ManualPaste(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	creatorID := uuid.New()

	var created domain.CommentBatch
	var loggedMeta map[string]any
	batches := &batchRepoMock{
		CreateFunc: func(ctx context.Context, b domain.CommentBatch) (domain.CommentBatch, error) {
			created = b
			return b, nil
		},
	}
	activity := &activityLogMock{
		LogFunc: func(ctx context.Context, eventType domain.EventType, userID, cid *uuid.UUID, metadata map[string]any) error {
			if eventType != domain.EventCommentBatchImported {
				t.Errorf("expected COMMENT_BATCH_IMPORTED, got %s", eventType)
			}
			loggedMeta = metadata
			return nil
		},
	}
	svc := NewService(testLogger(), batches, ownedCreator(ownerID, creatorID), activity, testCfg())

	ctx := ctxutil.WithUserID(context.Background(), ownerID)
	batch, err := svc.Import(ctx, ImportInput{
		CreatorID: creatorID,
		Source:    domain.BatchSourceManualPaste,
		Payload:   "a\nb\nc",
	})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	if batch.CommentCount() != 3 {
		t.Errorf("expected 3 comments, got %d", batch.CommentCount())
	}
	for _, c := range created.RawComments {
		if c.Author != "Anonymous" {
			t.Errorf("expected Anonymous author, got %q", c.Author)
		}
	}
	if created.Status != domain.BatchStatusImported {
		t.Errorf("expected status IMPORTED, got %s", created.Status)
	}
	if loggedMeta["comment_count"] != 3 {
		t.Errorf("expected comment_count 3 in event metadata, got %v", loggedMeta["comment_count"])
	}
}

func TestService_Import_EmptyPayload(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	creatorID := uuid.New()
	svc := NewService(testLogger(), &batchRepoMock{}, ownedCreator(ownerID, creatorID), &activityLogMock{}, testCfg())

	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	_, err := svc.Import(ctx, ImportInput{CreatorID: creatorID, Source: domain.BatchSourceManualPaste, Payload: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty payload: expected ErrValidation, got %v", err)
	}

	// Whitespace-only payload parses to zero comments.
	_, err = svc.Import(ctx, ImportInput{CreatorID: creatorID, Source: domain.BatchSourceManualPaste, Payload: "\n  \n"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank payload: expected ErrValidation, got %v", err)
	}
}

func TestService_Import_NotOwner(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	svc := NewService(testLogger(), &batchRepoMock{}, ownedCreator(uuid.New(), creatorID), &activityLogMock{}, testCfg())

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, err := svc.Import(ctx, ImportInput{CreatorID: creatorID, Source: domain.BatchSourceManualPaste, Payload: "hi"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_Import_AdminBypass(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	batches := &batchRepoMock{
		CreateFunc: func(ctx context.Context, b domain.CommentBatch) (domain.CommentBatch, error) {
			return b, nil
		},
	}
	svc := NewService(testLogger(), batches, ownedCreator(uuid.New(), creatorID), &activityLogMock{}, testCfg())

	ctx := ctxutil.WithRole(ctxutil.WithUserID(context.Background(), uuid.New()), "admin")
	_, err := svc.Import(ctx, ImportInput{CreatorID: creatorID, Source: domain.BatchSourceManualPaste, Payload: "hi"})
	if err != nil {
		t.Fatalf("admin import returned error: %v", err)
	}
}

func TestService_Import_UnknownCreator(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &batchRepoMock{}, ownedCreator(uuid.New(), uuid.New()), &activityLogMock{}, testCfg())

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, err := svc.Import(ctx, ImportInput{CreatorID: uuid.New(), Source: domain.BatchSourceManualPaste, Payload: "hi"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown creator, got %v", err)
	}
}

func TestService_Import_TooManyComments(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	creatorID := uuid.New()
	cfg := config.PipelineConfig{MaxCommentsPerBatch: 2}
	svc := NewService(testLogger(), &batchRepoMock{}, ownedCreator(ownerID, creatorID), &activityLogMock{}, cfg)

	ctx := ctxutil.WithUserID(context.Background(), ownerID)
	_, err := svc.Import(ctx, ImportInput{CreatorID: creatorID, Source: domain.BatchSourceManualPaste, Payload: "a\nb\nc"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
