package sentiment

import (
	"context"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

type batchRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error
}

func (m *batchRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.CommentBatch, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *batchRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error {
	if m.UpdateStatusFunc == nil {
		return nil
	}
	return m.UpdateStatusFunc(ctx, id, status)
}

type snapshotRepoMock struct {
	CreateFunc        func(ctx context.Context, s domain.SentimentSnapshot) (domain.SentimentSnapshot, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error)
	ListByBatchFunc   func(ctx context.Context, batchID uuid.UUID) ([]domain.SentimentSnapshot, error)
}

func (m *snapshotRepoMock) Create(ctx context.Context, s domain.SentimentSnapshot) (domain.SentimentSnapshot, error) {
	return m.CreateFunc(ctx, s)
}

func (m *snapshotRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *snapshotRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error) {
	return m.ListByCreatorFunc(ctx, creatorID, limit, offset)
}

func (m *snapshotRepoMock) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.SentimentSnapshot, error) {
	return m.ListByBatchFunc(ctx, batchID)
}

type creatorRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
}

func (m *creatorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
	return m.GetByIDFunc(ctx, id)
}

type textGeneratorMock struct {
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *textGeneratorMock) GenerateText(ctx context.Context, prompt string) (string, error) {
	return m.GenerateTextFunc(ctx, prompt)
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
