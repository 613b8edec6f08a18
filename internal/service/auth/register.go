package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// Register creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Email uniqueness is enforced by a DB constraint.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return AuthResult{}, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return AuthResult{}, fmt.Errorf("auth.Register: %w", err)
	}

	if err := s.activity.Log(ctx, domain.EventUserRegistered, &user.ID, nil, map[string]any{"email": user.Email}); err != nil {
		s.log.WarnContext(ctx, "failed to record registration event", slog.Any("error", err))
	}

	result, err := s.issueToken(user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
