package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

type contentRepoMock struct {
	CreateFunc        func(ctx context.Context, c domain.ContentItem) (domain.ContentItem, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)
	UpdateFunc        func(ctx context.Context, c domain.ContentItem) (domain.ContentItem, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID, publishedOnly bool, limit, offset int) ([]domain.ContentItem, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *contentRepoMock) Create(ctx context.Context, c domain.ContentItem) (domain.ContentItem, error) {
	return m.CreateFunc(ctx, c)
}

func (m *contentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *contentRepoMock) Update(ctx context.Context, c domain.ContentItem) (domain.ContentItem, error) {
	return m.UpdateFunc(ctx, c)
}

func (m *contentRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, publishedOnly bool, limit, offset int) ([]domain.ContentItem, error) {
	return m.ListByCreatorFunc(ctx, creatorID, publishedOnly, limit, offset)
}

func (m *contentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type creatorRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error)
}

func (m *creatorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *creatorRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

type subscriberRepoMock struct {
	GetByUserAndCreatorFunc func(ctx context.Context, userID, creatorID uuid.UUID) (domain.SubscriberProfile, error)
}

func (m *subscriberRepoMock) GetByUserAndCreator(ctx context.Context, userID, creatorID uuid.UUID) (domain.SubscriberProfile, error) {
	return m.GetByUserAndCreatorFunc(ctx, userID, creatorID)
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
