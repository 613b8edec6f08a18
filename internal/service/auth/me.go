package auth

import (
	"context"
	"fmt"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// Me returns the currently authenticated user.
func (s *Service) Me(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// ListUsers returns a page of accounts plus the total count. Admin only.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("auth.ListUsers: %w", err)
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("auth.ListUsers count: %w", err)
	}
	return users, total, nil
}
