package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/subscriber"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/model"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Mock
// ---------------------------------------------------------------------------

type subscriberServiceMock struct {
	SubscribeFunc        func(ctx context.Context, input subscriber.SubscribeInput) (domain.SubscriberProfile, error)
	MySubscriptionFunc   func(ctx context.Context, creatorID uuid.UUID) (domain.SubscriberProfile, error)
	ListSubscribersFunc  func(ctx context.Context, limit, offset int) ([]domain.SubscriberProfile, int, error)
	CountSubscribersFunc func(ctx context.Context, creatorID uuid.UUID) (int, error)
}

func (m *subscriberServiceMock) Subscribe(ctx context.Context, input subscriber.SubscribeInput) (domain.SubscriberProfile, error) {
	return m.SubscribeFunc(ctx, input)
}

func (m *subscriberServiceMock) MySubscription(ctx context.Context, creatorID uuid.UUID) (domain.SubscriberProfile, error) {
	return m.MySubscriptionFunc(ctx, creatorID)
}

func (m *subscriberServiceMock) ListSubscribers(ctx context.Context, limit, offset int) ([]domain.SubscriberProfile, int, error) {
	return m.ListSubscribersFunc(ctx, limit, offset)
}

func (m *subscriberServiceMock) CountSubscribers(ctx context.Context, creatorID uuid.UUID) (int, error) {
	return m.CountSubscribersFunc(ctx, creatorID)
}

// ---------------------------------------------------------------------------
// Mutation: subscribe
// ---------------------------------------------------------------------------

func TestSubscribe_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	creatorID := uuid.New()
	mock := &subscriberServiceMock{
		SubscribeFunc: func(_ context.Context, input subscriber.SubscribeInput) (domain.SubscriberProfile, error) {
			require.Equal(t, creatorID, input.CreatorID)
			require.Equal(t, domain.TierT2, input.Tier)
			return domain.SubscriberProfile{
				ID:        uuid.New(),
				UserID:    userID,
				CreatorID: input.CreatorID,
				Tier:      input.Tier,
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{subscriber: mock}}
	ctx := ctxutil.WithUserID(context.Background(), userID)

	result, err := resolver.Subscribe(ctx, model.SubscribeInput{
		CreatorID: creatorID,
		Tier:      domain.TierT2,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.TierT2, result.Tier)
	assert.Equal(t, creatorID, result.CreatorID)
}

func TestSubscribe_SelfSubscription(t *testing.T) {
	t.Parallel()

	mock := &subscriberServiceMock{
		SubscribeFunc: func(_ context.Context, _ subscriber.SubscribeInput) (domain.SubscriberProfile, error) {
			return domain.SubscriberProfile{}, domain.ErrConflict
		},
	}

	resolver := &mutationResolver{&Resolver{subscriber: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := resolver.Subscribe(ctx, model.SubscribeInput{CreatorID: uuid.New(), Tier: domain.TierT1})

	require.ErrorIs(t, err, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Query: mySubscription / mySubscribers
// ---------------------------------------------------------------------------

func TestMySubscription_Found(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	mock := &subscriberServiceMock{
		MySubscriptionFunc: func(_ context.Context, id uuid.UUID) (domain.SubscriberProfile, error) {
			require.Equal(t, creatorID, id)
			return domain.SubscriberProfile{CreatorID: id, Tier: domain.TierT3}, nil
		},
	}

	resolver := &queryResolver{&Resolver{subscriber: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.MySubscription(ctx, creatorID)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.TierT3, result.Tier)
}

func TestMySubscription_NoneIsNull(t *testing.T) {
	t.Parallel()

	mock := &subscriberServiceMock{
		MySubscriptionFunc: func(_ context.Context, _ uuid.UUID) (domain.SubscriberProfile, error) {
			return domain.SubscriberProfile{}, domain.ErrNotFound
		},
	}

	resolver := &queryResolver{&Resolver{subscriber: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.MySubscription(ctx, uuid.New())

	require.NoError(t, err)
	require.Nil(t, result)
}

func TestMySubscribers_Page(t *testing.T) {
	t.Parallel()

	mock := &subscriberServiceMock{
		ListSubscribersFunc: func(_ context.Context, limit, offset int) ([]domain.SubscriberProfile, int, error) {
			require.Equal(t, 10, limit)
			require.Equal(t, 0, offset)
			return []domain.SubscriberProfile{
				{ID: uuid.New(), Tier: domain.TierT1},
				{ID: uuid.New(), Tier: domain.TierT2},
			}, 57, nil
		},
	}

	limit := 10
	resolver := &queryResolver{&Resolver{subscriber: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.MySubscribers(ctx, &limit, nil)

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 57, result.Total)
}
