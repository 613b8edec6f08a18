package creator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

type creatorRepoMock struct {
	CreateFunc      func(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error)
	UpdateFunc      func(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error)
	ListFunc        func(ctx context.Context, limit, offset int) ([]domain.CreatorProfile, error)
}

func (m *creatorRepoMock) Create(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error) {
	return m.CreateFunc(ctx, p)
}

func (m *creatorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *creatorRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *creatorRepoMock) Update(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error) {
	return m.UpdateFunc(ctx, p)
}

func (m *creatorRepoMock) List(ctx context.Context, limit, offset int) ([]domain.CreatorProfile, error) {
	return m.ListFunc(ctx, limit, offset)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_CreateProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &creatorRepoMock{
		CreateFunc: func(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error) {
			return p, nil
		},
	}
	svc := NewService(testLogger(), repo)

	ctx := ctxutil.WithUserID(context.Background(), userID)
	profile, err := svc.CreateProfile(ctx, CreateProfileInput{
		DisplayName: "  Jane Maker  ",
		Niche:       "woodworking",
	})
	if err != nil {
		t.Fatalf("CreateProfile returned error: %v", err)
	}

	if profile.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, profile.UserID)
	}
	if profile.DisplayName != "Jane Maker" {
		t.Errorf("expected trimmed display name, got %q", profile.DisplayName)
	}
}

func TestService_CreateProfile_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &creatorRepoMock{})

	_, err := svc.CreateProfile(context.Background(), CreateProfileInput{DisplayName: "X", Niche: "y"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_CreateProfile_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &creatorRepoMock{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateProfile(ctx, CreateProfileInput{DisplayName: "", Niche: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || len(vErr.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %v", err)
	}
}

func TestService_CreateProfile_Duplicate(t *testing.T) {
	t.Parallel()

	repo := &creatorRepoMock{
		CreateFunc: func(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{}, domain.ErrAlreadyExists
		},
	}
	svc := NewService(testLogger(), repo)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateProfile(ctx, CreateProfileInput{DisplayName: "X", Niche: "y"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestService_UpdateProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	existing := domain.CreatorProfile{
		ID:          uuid.New(),
		UserID:      userID,
		DisplayName: "Old Name",
		Niche:       "cooking",
	}

	repo := &creatorRepoMock{
		GetByUserIDFunc: func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, p domain.CreatorProfile) (domain.CreatorProfile, error) {
			return p, nil
		},
	}
	svc := NewService(testLogger(), repo)

	newName := "New Name"
	ctx := ctxutil.WithUserID(context.Background(), userID)
	updated, err := svc.UpdateProfile(ctx, UpdateProfileInput{DisplayName: &newName})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	if updated.DisplayName != "New Name" {
		t.Errorf("expected updated display name, got %q", updated.DisplayName)
	}
	if updated.Niche != "cooking" {
		t.Errorf("expected niche unchanged, got %q", updated.Niche)
	}
}

func TestService_UpdateProfile_NoProfile(t *testing.T) {
	t.Parallel()

	repo := &creatorRepoMock{
		GetByUserIDFunc: func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{}, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), repo)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	name := "X"
	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{DisplayName: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
