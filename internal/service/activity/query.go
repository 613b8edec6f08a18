package activity

import (
	"context"
	"fmt"

	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// QueryResult is a page of activity events plus the total match count.
type QueryResult struct {
	Events []domain.ActivityEvent
	Total  int
}

// Query returns filtered activity events, newest first. Admin only.
func (s *Service) Query(ctx context.Context, input QueryInput) (QueryResult, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return QueryResult{}, err
	}

	if err := input.Validate(); err != nil {
		return QueryResult{}, err
	}

	events, total, err := s.events.Query(ctx, input.filter(), input.Limit, input.Offset)
	if err != nil {
		return QueryResult{}, fmt.Errorf("activity.Query: %w", err)
	}

	return QueryResult{Events: events, Total: total}, nil
}

// Stats aggregates the filtered event set by type and by day. Admin only.
func (s *Service) Stats(ctx context.Context, input QueryInput) (domain.ActivityStats, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return domain.ActivityStats{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.ActivityStats{}, err
	}

	stats, err := s.events.Stats(ctx, input.filter())
	if err != nil {
		return domain.ActivityStats{}, fmt.Errorf("activity.Stats: %w", err)
	}
	return stats, nil
}

func (s *Service) requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
