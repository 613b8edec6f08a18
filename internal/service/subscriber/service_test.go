package subscriber

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

type subscriberRepoMock struct {
	UpsertFunc              func(ctx context.Context, s domain.SubscriberProfile) (domain.SubscriberProfile, bool, error)
	GetByUserAndCreatorFunc func(ctx context.Context, userID, creatorID uuid.UUID) (domain.SubscriberProfile, error)
	ListByCreatorFunc       func(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SubscriberProfile, error)
	CountByCreatorFunc      func(ctx context.Context, creatorID uuid.UUID) (int, error)
}

func (m *subscriberRepoMock) Upsert(ctx context.Context, s domain.SubscriberProfile) (domain.SubscriberProfile, bool, error) {
	return m.UpsertFunc(ctx, s)
}

func (m *subscriberRepoMock) GetByUserAndCreator(ctx context.Context, userID, creatorID uuid.UUID) (domain.SubscriberProfile, error) {
	return m.GetByUserAndCreatorFunc(ctx, userID, creatorID)
}

func (m *subscriberRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SubscriberProfile, error) {
	return m.ListByCreatorFunc(ctx, creatorID, limit, offset)
}

func (m *subscriberRepoMock) CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	return m.CountByCreatorFunc(ctx, creatorID)
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

type activityLogMock struct {
	LogFunc func(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error
}

func (m *activityLogMock) Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error {
	if m.LogFunc == nil {
		return nil
	}
	return m.LogFunc(ctx, eventType, userID, creatorID, metadata)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Subscribe_New(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	creatorID := uuid.New()

	var loggedEvent *domain.EventType
	subs := &subscriberRepoMock{
		GetByUserAndCreatorFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.SubscriberProfile, error) {
			return domain.SubscriberProfile{}, domain.ErrNotFound
		},
		UpsertFunc: func(ctx context.Context, s domain.SubscriberProfile) (domain.SubscriberProfile, bool, error) {
			return s, true, nil
		},
	}
	creators := &creatorRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{ID: id, UserID: uuid.New()}, nil
		},
	}
	activity := &activityLogMock{
		LogFunc: func(ctx context.Context, eventType domain.EventType, uid, cid *uuid.UUID, metadata map[string]any) error {
			loggedEvent = &eventType
			return nil
		},
	}
	svc := NewService(testLogger(), subs, creators, activity)

	ctx := ctxutil.WithUserID(context.Background(), userID)
	sub, err := svc.Subscribe(ctx, SubscribeInput{CreatorID: creatorID, Tier: domain.TierT2})
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	if sub.Tier != domain.TierT2 {
		t.Errorf("expected tier T2, got %s", sub.Tier)
	}
	if loggedEvent == nil || *loggedEvent != domain.EventSubscriptionStarted {
		t.Errorf("expected SUBSCRIPTION_STARTED event, got %v", loggedEvent)
	}
}

func TestService_Subscribe_TierChange(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	creatorID := uuid.New()

	var loggedEvent *domain.EventType
	var loggedMeta map[string]any
	subs := &subscriberRepoMock{
		GetByUserAndCreatorFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.SubscriberProfile, error) {
			return domain.SubscriberProfile{UserID: uid, CreatorID: cid, Tier: domain.TierT3}, nil
		},
		UpsertFunc: func(ctx context.Context, s domain.SubscriberProfile) (domain.SubscriberProfile, bool, error) {
			return s, false, nil
		},
	}
	creators := &creatorRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{ID: id, UserID: uuid.New()}, nil
		},
	}
	activity := &activityLogMock{
		LogFunc: func(ctx context.Context, eventType domain.EventType, uid, cid *uuid.UUID, metadata map[string]any) error {
			loggedEvent = &eventType
			loggedMeta = metadata
			return nil
		},
	}
	svc := NewService(testLogger(), subs, creators, activity)

	// Downgrade from T3 to T1.
	ctx := ctxutil.WithUserID(context.Background(), userID)
	sub, err := svc.Subscribe(ctx, SubscribeInput{CreatorID: creatorID, Tier: domain.TierT1})
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	if sub.Tier != domain.TierT1 {
		t.Errorf("expected tier T1, got %s", sub.Tier)
	}
	if loggedEvent == nil || *loggedEvent != domain.EventSubscriptionTierChange {
		t.Errorf("expected SUBSCRIPTION_TIER_CHANGED event, got %v", loggedEvent)
	}
	if loggedMeta["from"] != "T3" || loggedMeta["to"] != "T1" {
		t.Errorf("unexpected event metadata: %v", loggedMeta)
	}
}

func TestService_Subscribe_SameTierNoEvent(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	creatorID := uuid.New()

	subs := &subscriberRepoMock{
		GetByUserAndCreatorFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.SubscriberProfile, error) {
			return domain.SubscriberProfile{UserID: uid, CreatorID: cid, Tier: domain.TierT2}, nil
		},
		UpsertFunc: func(ctx context.Context, s domain.SubscriberProfile) (domain.SubscriberProfile, bool, error) {
			return s, false, nil
		},
	}
	creators := &creatorRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{ID: id, UserID: uuid.New()}, nil
		},
	}
	activity := &activityLogMock{
		LogFunc: func(ctx context.Context, eventType domain.EventType, uid, cid *uuid.UUID, metadata map[string]any) error {
			t.Errorf("unexpected activity event %s", eventType)
			return nil
		},
	}
	svc := NewService(testLogger(), subs, creators, activity)

	ctx := ctxutil.WithUserID(context.Background(), userID)
	if _, err := svc.Subscribe(ctx, SubscribeInput{CreatorID: creatorID, Tier: domain.TierT2}); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
}

func TestService_Subscribe_OwnProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	creatorID := uuid.New()

	creators := &creatorRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{ID: id, UserID: userID}, nil
		},
	}
	svc := NewService(testLogger(), &subscriberRepoMock{}, creators, &activityLogMock{})

	ctx := ctxutil.WithUserID(context.Background(), userID)
	_, err := svc.Subscribe(ctx, SubscribeInput{CreatorID: creatorID, Tier: domain.TierT1})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestService_Subscribe_InvalidTier(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &subscriberRepoMock{}, &creatorRepoMock{}, &activityLogMock{})

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, err := svc.Subscribe(ctx, SubscribeInput{CreatorID: uuid.New(), Tier: domain.Tier("T9")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestService_ListSubscribers_NotACreator(t *testing.T) {
	t.Parallel()

	creators := &creatorRepoMock{
		GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{}, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), &subscriberRepoMock{}, creators, &activityLogMock{})

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, _, err := svc.ListSubscribers(ctx, 10, 0)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_ListSubscribers(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	creators := &creatorRepoMock{
		GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{ID: creatorID, UserID: userID}, nil
		},
	}
	subs := &subscriberRepoMock{
		ListByCreatorFunc: func(ctx context.Context, cid uuid.UUID, limit, offset int) ([]domain.SubscriberProfile, error) {
			if cid != creatorID {
				t.Errorf("expected creator %s, got %s", creatorID, cid)
			}
			return []domain.SubscriberProfile{{ID: uuid.New(), CreatorID: cid, Tier: domain.TierT1}}, nil
		},
		CountByCreatorFunc: func(ctx context.Context, cid uuid.UUID) (int, error) {
			return 42, nil
		},
	}
	svc := NewService(testLogger(), subs, creators, &activityLogMock{})

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	list, total, err := svc.ListSubscribers(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListSubscribers returned error: %v", err)
	}
	if len(list) != 1 || total != 42 {
		t.Errorf("expected 1 subscriber and total 42, got len=%d total=%d", len(list), total)
	}
}
