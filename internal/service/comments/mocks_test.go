package comments

import (
	"context"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

type batchRepoMock struct {
	CreateFunc        func(ctx context.Context, b domain.CommentBatch) (domain.CommentBatch, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.CommentBatch, int, error)
}

func (m *batchRepoMock) Create(ctx context.Context, b domain.CommentBatch) (domain.CommentBatch, error) {
	return m.CreateFunc(ctx, b)
}

func (m *batchRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *batchRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.CommentBatch, int, error) {
	return m.ListByCreatorFunc(ctx, creatorID, limit, offset)
}

type creatorRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
}

func (m *creatorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
	return m.GetByIDFunc(ctx, id)
}

type activityLogMock struct {
	LogFunc func(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error
}

func (m *activityLogMock) Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error {
	if m.LogFunc == nil {
		return nil
	}
	return m.LogFunc(ctx, eventType, userID, creatorID, metadata)
}
