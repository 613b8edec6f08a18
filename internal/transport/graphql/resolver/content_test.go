package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/content"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/model"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Mock
// ---------------------------------------------------------------------------

type contentServiceMock struct {
	CreateFunc        func(ctx context.Context, input content.CreateInput) (domain.ContentItem, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, input content.UpdateInput) (domain.ContentItem, error)
	PublishFunc       func(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	GetFunc           func(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.ContentItem, error)
}

func (m *contentServiceMock) Create(ctx context.Context, input content.CreateInput) (domain.ContentItem, error) {
	return m.CreateFunc(ctx, input)
}

func (m *contentServiceMock) Update(ctx context.Context, id uuid.UUID, input content.UpdateInput) (domain.ContentItem, error) {
	return m.UpdateFunc(ctx, id, input)
}

func (m *contentServiceMock) Publish(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	return m.PublishFunc(ctx, id)
}

func (m *contentServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *contentServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	return m.GetFunc(ctx, id)
}

func (m *contentServiceMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.ContentItem, error) {
	return m.ListByCreatorFunc(ctx, creatorID, limit, offset)
}

// ---------------------------------------------------------------------------
// Mutation: createContent / updateContent
// ---------------------------------------------------------------------------

func TestCreateContent_Premium(t *testing.T) {
	t.Parallel()

	tier := domain.TierT2
	mock := &contentServiceMock{
		CreateFunc: func(_ context.Context, input content.CreateInput) (domain.ContentItem, error) {
			require.Equal(t, "Go Generics Deep Dive", input.Title)
			require.Equal(t, domain.ContentTypeVideo, input.Type)
			require.True(t, input.IsPremium)
			require.NotNil(t, input.RequiredTier)
			return domain.ContentItem{
				ID:           uuid.New(),
				Title:        input.Title,
				Type:         input.Type,
				IsPremium:    input.IsPremium,
				RequiredTier: input.RequiredTier,
				Status:       domain.ContentStatusDraft,
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{content: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.CreateContent(ctx, model.CreateContentInput{
		Title:        "Go Generics Deep Dive",
		Type:         domain.ContentTypeVideo,
		IsPremium:    true,
		RequiredTier: &tier,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ContentStatusDraft, result.Status)
	assert.Equal(t, domain.TierT2, *result.RequiredTier)
}

func TestUpdateContent_ClearRequiredTier(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	clear := true
	mock := &contentServiceMock{
		UpdateFunc: func(_ context.Context, id uuid.UUID, input content.UpdateInput) (domain.ContentItem, error) {
			require.Equal(t, itemID, id)
			require.True(t, input.ClearTier)
			require.Nil(t, input.RequiredTier)
			return domain.ContentItem{ID: id, RequiredTier: nil}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{content: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.UpdateContent(ctx, model.UpdateContentInput{
		ID:                itemID,
		ClearRequiredTier: &clear,
	})

	require.NoError(t, err)
	require.Nil(t, result.RequiredTier)
}

// ---------------------------------------------------------------------------
// Mutation: publishContent / deleteContent
// ---------------------------------------------------------------------------

func TestPublishContent_Success(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	mock := &contentServiceMock{
		PublishFunc: func(_ context.Context, id uuid.UUID) (domain.ContentItem, error) {
			require.Equal(t, itemID, id)
			return domain.ContentItem{ID: id, Status: domain.ContentStatusPublished}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{content: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.PublishContent(ctx, itemID)

	require.NoError(t, err)
	assert.Equal(t, domain.ContentStatusPublished, result.Status)
}

func TestDeleteContent_Success(t *testing.T) {
	t.Parallel()

	mock := &contentServiceMock{
		DeleteFunc: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	resolver := &mutationResolver{&Resolver{content: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	ok, err := resolver.DeleteContent(ctx, uuid.New())

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteContent_Forbidden(t *testing.T) {
	t.Parallel()

	mock := &contentServiceMock{
		DeleteFunc: func(_ context.Context, _ uuid.UUID) error { return domain.ErrForbidden },
	}

	resolver := &mutationResolver{&Resolver{content: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	ok, err := resolver.DeleteContent(ctx, uuid.New())

	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Query: contentItem / creatorContent
// ---------------------------------------------------------------------------

func TestContentItem_Gated(t *testing.T) {
	t.Parallel()

	mock := &contentServiceMock{
		GetFunc: func(_ context.Context, _ uuid.UUID) (domain.ContentItem, error) {
			return domain.ContentItem{}, domain.ErrForbidden
		},
	}

	resolver := &queryResolver{&Resolver{content: mock}}
	_, err := resolver.ContentItem(context.Background(), uuid.New())

	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreatorContent_List(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	mock := &contentServiceMock{
		ListByCreatorFunc: func(_ context.Context, id uuid.UUID, limit, offset int) ([]domain.ContentItem, error) {
			require.Equal(t, creatorID, id)
			return []domain.ContentItem{
				{ID: uuid.New(), Title: "Free Intro", Status: domain.ContentStatusPublished},
			}, nil
		},
	}

	resolver := &queryResolver{&Resolver{content: mock}}
	result, err := resolver.CreatorContent(context.Background(), creatorID, nil, nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Free Intro", result[0].Title)
}
