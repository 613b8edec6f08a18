// Package auth implements user registration, email+password login, and
// the current-user lookup.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/config"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email, role string) (string, error)
}

// activityLog records domain events in the activity log.
type activityLog interface {
	Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	jwt      jwtManager
	activity activityLog
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, activity activityLog, cfg config.AuthConfig) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		jwt:      jwt,
		activity: activity,
		cfg:      cfg,
	}
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	AccessToken string
	User        domain.User
}

func (s *Service) issueToken(user domain.User) (AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{AccessToken: token, User: user}, nil
}
