package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/creator"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/model"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Mock
// ---------------------------------------------------------------------------

type creatorServiceMock struct {
	CreateProfileFunc func(ctx context.Context, input creator.CreateProfileInput) (domain.CreatorProfile, error)
	UpdateProfileFunc func(ctx context.Context, input creator.UpdateProfileInput) (domain.CreatorProfile, error)
	MyProfileFunc     func(ctx context.Context) (domain.CreatorProfile, error)
	GetProfileFunc    func(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error)
	ListProfilesFunc  func(ctx context.Context, limit, offset int) ([]domain.CreatorProfile, error)
}

func (m *creatorServiceMock) CreateProfile(ctx context.Context, input creator.CreateProfileInput) (domain.CreatorProfile, error) {
	return m.CreateProfileFunc(ctx, input)
}

func (m *creatorServiceMock) UpdateProfile(ctx context.Context, input creator.UpdateProfileInput) (domain.CreatorProfile, error) {
	return m.UpdateProfileFunc(ctx, input)
}

func (m *creatorServiceMock) MyProfile(ctx context.Context) (domain.CreatorProfile, error) {
	return m.MyProfileFunc(ctx)
}

func (m *creatorServiceMock) GetProfile(ctx context.Context, id uuid.UUID) (domain.CreatorProfile, error) {
	return m.GetProfileFunc(ctx, id)
}

func (m *creatorServiceMock) ListProfiles(ctx context.Context, limit, offset int) ([]domain.CreatorProfile, error) {
	return m.ListProfilesFunc(ctx, limit, offset)
}

// ---------------------------------------------------------------------------
// Mutation: createCreatorProfile / updateCreatorProfile
// ---------------------------------------------------------------------------

func TestCreateCreatorProfile_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mock := &creatorServiceMock{
		CreateProfileFunc: func(_ context.Context, input creator.CreateProfileInput) (domain.CreatorProfile, error) {
			require.Equal(t, "Maya Codes", input.DisplayName)
			require.Equal(t, "Technology", input.Niche)
			return domain.CreatorProfile{
				ID:          uuid.New(),
				UserID:      userID,
				DisplayName: input.DisplayName,
				Niche:       input.Niche,
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{creator: mock}}
	ctx := ctxutil.WithUserID(context.Background(), userID)

	result, err := resolver.CreateCreatorProfile(ctx, model.CreateCreatorProfileInput{
		DisplayName: "Maya Codes",
		Niche:       "Technology",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Maya Codes", result.DisplayName)
	assert.Equal(t, userID, result.UserID)
}

func TestUpdateCreatorProfile_PartialUpdate(t *testing.T) {
	t.Parallel()

	newNiche := "Gaming"
	mock := &creatorServiceMock{
		UpdateProfileFunc: func(_ context.Context, input creator.UpdateProfileInput) (domain.CreatorProfile, error) {
			require.Nil(t, input.DisplayName)
			require.NotNil(t, input.Niche)
			require.Nil(t, input.Bio)
			return domain.CreatorProfile{DisplayName: "Maya Codes", Niche: *input.Niche}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{creator: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.UpdateCreatorProfile(ctx, model.UpdateCreatorProfileInput{
		Niche: &newNiche,
	})

	require.NoError(t, err)
	assert.Equal(t, "Gaming", result.Niche)
}

// ---------------------------------------------------------------------------
// Query: creator / creators / myCreatorProfile
// ---------------------------------------------------------------------------

func TestCreator_NotFound(t *testing.T) {
	t.Parallel()

	mock := &creatorServiceMock{
		GetProfileFunc: func(_ context.Context, _ uuid.UUID) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{}, domain.ErrNotFound
		},
	}

	resolver := &queryResolver{&Resolver{creator: mock}}
	_, err := resolver.Creator(context.Background(), uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreators_DefaultsPagination(t *testing.T) {
	t.Parallel()

	mock := &creatorServiceMock{
		ListProfilesFunc: func(_ context.Context, limit, offset int) ([]domain.CreatorProfile, error) {
			require.Equal(t, 0, limit)
			require.Equal(t, 0, offset)
			return []domain.CreatorProfile{
				{ID: uuid.New(), DisplayName: "Maya Codes"},
				{ID: uuid.New(), DisplayName: "Ben Bakes"},
			}, nil
		},
	}

	resolver := &queryResolver{&Resolver{creator: mock}}
	result, err := resolver.Creators(context.Background(), nil, nil)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Maya Codes", result[0].DisplayName)
	assert.Equal(t, "Ben Bakes", result[1].DisplayName)
}

func TestCreators_ExplicitPagination(t *testing.T) {
	t.Parallel()

	limit, offset := 5, 10
	mock := &creatorServiceMock{
		ListProfilesFunc: func(_ context.Context, l, o int) ([]domain.CreatorProfile, error) {
			require.Equal(t, 5, l)
			require.Equal(t, 10, o)
			return nil, nil
		},
	}

	resolver := &queryResolver{&Resolver{creator: mock}}
	result, err := resolver.Creators(context.Background(), &limit, &offset)

	require.NoError(t, err)
	require.Empty(t, result)
}

func TestMyCreatorProfile_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mock := &creatorServiceMock{
		MyProfileFunc: func(_ context.Context) (domain.CreatorProfile, error) {
			return domain.CreatorProfile{ID: uuid.New(), UserID: userID, DisplayName: "Maya Codes"}, nil
		},
	}

	resolver := &queryResolver{&Resolver{creator: mock}}
	ctx := ctxutil.WithUserID(context.Background(), userID)

	result, err := resolver.MyCreatorProfile(ctx)

	require.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
}

// ---------------------------------------------------------------------------
// Field: CreatorProfile.subscriberCount
// ---------------------------------------------------------------------------

func TestCreatorProfileSubscriberCount(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	mock := &subscriberServiceMock{
		CountSubscribersFunc: func(_ context.Context, id uuid.UUID) (int, error) {
			require.Equal(t, creatorID, id)
			return 42, nil
		},
	}

	resolver := &creatorProfileResolver{&Resolver{subscriber: mock}}
	count, err := resolver.SubscriberCount(context.Background(), &domain.CreatorProfile{ID: creatorID})

	require.NoError(t, err)
	assert.Equal(t, 42, count)
}
