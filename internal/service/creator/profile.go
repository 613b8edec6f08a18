package creator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// CreateProfile creates a creator profile for the current user.
// A user can have at most one; returns ErrAlreadyExists otherwise.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (domain.CreatorProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CreatorProfile{}, domain.ErrUnauthorized
	}

	input.DisplayName = strings.TrimSpace(input.DisplayName)
	input.Niche = strings.TrimSpace(input.Niche)

	if err := input.Validate(); err != nil {
		return domain.CreatorProfile{}, err
	}

	now := time.Now().UTC()
	profile, err := s.creators.Create(ctx, domain.CreatorProfile{
		ID:          uuid.New(),
		UserID:      userID,
		DisplayName: input.DisplayName,
		Niche:       input.Niche,
		Bio:         input.Bio,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.CreatorProfile{}, fmt.Errorf("creator.CreateProfile: %w", domain.ErrAlreadyExists)
		}
		return domain.CreatorProfile{}, fmt.Errorf("creator.CreateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "creator profile created",
		slog.String("creator_id", profile.ID.String()))

	return profile, nil
}

// UpdateProfile updates the current user's creator profile.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (domain.CreatorProfile, error) {
	profile, err := s.MyProfile(ctx)
	if err != nil {
		return domain.CreatorProfile{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.CreatorProfile{}, err
	}

	if input.DisplayName != nil {
		profile.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.Niche != nil {
		profile.Niche = strings.TrimSpace(*input.Niche)
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	profile.UpdatedAt = time.Now().UTC()

	updated, err := s.creators.Update(ctx, profile)
	if err != nil {
		return domain.CreatorProfile{}, fmt.Errorf("creator.UpdateProfile: %w", err)
	}
	return updated, nil
}

// MyProfile returns the current user's creator profile.
func (s *Service) MyProfile(ctx context.Context) (domain.CreatorProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CreatorProfile{}, domain.ErrUnauthorized
	}

	profile, err := s.creators.GetByUserID(ctx, userID)
	if err != nil {
		return domain.CreatorProfile{}, fmt.Errorf("creator.MyProfile: %w", err)
	}
	return profile, nil
}

// GetProfile returns any creator profile by ID.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
	profile, err := s.creators.GetByID(ctx, id)
	if err != nil {
		return domain.CreatorProfile{}, fmt.Errorf("creator.GetProfile: %w", err)
	}
	return profile, nil
}

// ListProfiles returns a page of creator profiles.
func (s *Service) ListProfiles(ctx context.Context, limit, offset int) ([]domain.CreatorProfile, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	profiles, err := s.creators.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("creator.ListProfiles: %w", err)
	}
	return profiles, nil
}
