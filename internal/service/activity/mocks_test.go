package activity

import (
	"context"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// activityRepoMock is a hand-rolled mock of activityRepo.
type activityRepoMock struct {
	CreateFunc func(ctx context.Context, e domain.ActivityEvent) (domain.ActivityEvent, error)
	QueryFunc  func(ctx context.Context, f domain.ActivityFilter, limit, offset int) ([]domain.ActivityEvent, int, error)
	StatsFunc  func(ctx context.Context, f domain.ActivityFilter) (domain.ActivityStats, error)
}

func (m *activityRepoMock) Create(ctx context.Context, e domain.ActivityEvent) (domain.ActivityEvent, error) {
	return m.CreateFunc(ctx, e)
}

func (m *activityRepoMock) Query(ctx context.Context, f domain.ActivityFilter, limit, offset int) ([]domain.ActivityEvent, int, error) {
	return m.QueryFunc(ctx, f, limit, offset)
}

func (m *activityRepoMock) Stats(ctx context.Context, f domain.ActivityFilter) (domain.ActivityStats, error) {
	return m.StatsFunc(ctx, f)
}
