package activity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminCtx() context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	return ctxutil.WithRole(ctx, "admin")
}

func userCtx() context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	return ctxutil.WithRole(ctx, "user")
}

func TestService_Log(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var created domain.ActivityEvent

	repo := &activityRepoMock{
		CreateFunc: func(ctx context.Context, e domain.ActivityEvent) (domain.ActivityEvent, error) {
			created = e
			return e, nil
		},
	}
	svc := NewService(testLogger(), repo)

	err := svc.Log(context.Background(), domain.EventUserRegistered, &userID, nil, map[string]any{"email": "a@b.c"})
	if err != nil {
		t.Fatalf("Log returned error: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected generated event ID")
	}
	if created.EventType != domain.EventUserRegistered {
		t.Errorf("expected event type USER_REGISTERED, got %s", created.EventType)
	}
	if created.UserID == nil || *created.UserID != userID {
		t.Errorf("expected user ID %s, got %v", userID, created.UserID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestService_Log_UnknownEventType(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &activityRepoMock{})

	err := svc.Log(context.Background(), domain.EventType("NOT_A_THING"), nil, nil, nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestService_Query_AdminOnly(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &activityRepoMock{})

	if _, err := svc.Query(context.Background(), QueryInput{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: expected ErrUnauthorized, got %v", err)
	}

	if _, err := svc.Query(userCtx(), QueryInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-admin: expected ErrForbidden, got %v", err)
	}
}

func TestService_Query(t *testing.T) {
	t.Parallel()

	eventType := domain.EventContentPublished
	events := []domain.ActivityEvent{
		{ID: uuid.New(), EventType: eventType, CreatedAt: time.Now()},
	}

	repo := &activityRepoMock{
		QueryFunc: func(ctx context.Context, f domain.ActivityFilter, limit, offset int) ([]domain.ActivityEvent, int, error) {
			if f.EventType == nil || *f.EventType != eventType {
				t.Errorf("expected event type filter %s, got %v", eventType, f.EventType)
			}
			if limit != defaultLimit {
				t.Errorf("expected default limit %d, got %d", defaultLimit, limit)
			}
			return events, 1, nil
		},
	}
	svc := NewService(testLogger(), repo)

	result, err := svc.Query(adminCtx(), QueryInput{EventType: &eventType})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if result.Total != 1 || len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got total=%d len=%d", result.Total, len(result.Events))
	}
}

func TestService_Query_InvalidRange(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &activityRepoMock{})

	from := time.Now()
	to := from.Add(-time.Hour)
	_, err := svc.Query(adminCtx(), QueryInput{From: &from, To: &to})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestService_Stats(t *testing.T) {
	t.Parallel()

	repo := &activityRepoMock{
		StatsFunc: func(ctx context.Context, f domain.ActivityFilter) (domain.ActivityStats, error) {
			return domain.ActivityStats{
				Total: 3,
				ByEventType: []domain.EventTypeCount{
					{EventType: domain.EventUserRegistered, Count: 2},
					{EventType: domain.EventContentPublished, Count: 1},
				},
			}, nil
		},
	}
	svc := NewService(testLogger(), repo)

	stats, err := svc.Stats(adminCtx(), QueryInput{})
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if len(stats.ByEventType) != 2 {
		t.Errorf("expected 2 event type buckets, got %d", len(stats.ByEventType))
	}
}
