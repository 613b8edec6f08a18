package ideas

import (
	"context"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

type ideaRepoMock struct {
	CreateBatchFunc    func(ctx context.Context, ideas []domain.IdeaSuggestion) ([]domain.IdeaSuggestion, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (domain.IdeaSuggestion, error)
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (domain.IdeaSuggestion, error)
	ListByCreatorFunc  func(ctx context.Context, creatorID uuid.UUID, status *domain.IdeaStatus, limit, offset int) ([]domain.IdeaSuggestion, error)
	ListBySnapshotFunc func(ctx context.Context, snapshotID uuid.UUID) ([]domain.IdeaSuggestion, error)
}

func (m *ideaRepoMock) CreateBatch(ctx context.Context, ideas []domain.IdeaSuggestion) ([]domain.IdeaSuggestion, error) {
	return m.CreateBatchFunc(ctx, ideas)
}

func (m *ideaRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.IdeaSuggestion, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *ideaRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IdeaStatus) (domain.IdeaSuggestion, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *ideaRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, status *domain.IdeaStatus, limit, offset int) ([]domain.IdeaSuggestion, error) {
	return m.ListByCreatorFunc(ctx, creatorID, status, limit, offset)
}

func (m *ideaRepoMock) ListBySnapshot(ctx context.Context, snapshotID uuid.UUID) ([]domain.IdeaSuggestion, error) {
	return m.ListBySnapshotFunc(ctx, snapshotID)
}

type snapshotRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error)
}

func (m *snapshotRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error) {
	return m.GetByIDFunc(ctx, id)
}

type batchRepoMock struct {
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error
}

func (m *batchRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus) error {
	if m.UpdateStatusFunc == nil {
		return nil
	}
	return m.UpdateStatusFunc(ctx, id, status)
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

// txManagerMock runs the function directly, without a real transaction.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
