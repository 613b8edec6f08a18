package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

type userRepoMock struct {
	CreateFunc     func(ctx context.Context, u domain.User) (domain.User, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (domain.User, error)
	ListFunc       func(ctx context.Context, limit, offset int) ([]domain.User, error)
	CountFunc      func(ctx context.Context) (int, error)
}

func (m *userRepoMock) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.CreateFunc(ctx, u)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return m.ListFunc(ctx, limit, offset)
}

func (m *userRepoMock) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, email, role string) (string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, email, role string) (string, error) {
	return m.GenerateAccessTokenFunc(userID, email, role)
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
