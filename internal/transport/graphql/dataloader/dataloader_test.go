package dataloader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	dl "github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/dataloader"
)

// ---------------------------------------------------------------------------
// Mock repos
// ---------------------------------------------------------------------------

type mockCreatorRepo struct {
	result []domain.CreatorProfile
	err    error
}

func (m *mockCreatorRepo) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.CreatorProfile, error) {
	return m.result, m.err
}

type mockSnapshotRepo struct {
	result map[uuid.UUID][]domain.SentimentSnapshot
	err    error
}

func (m *mockSnapshotRepo) GetByBatchIDs(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]domain.SentimentSnapshot, error) {
	return m.result, m.err
}

type mockIdeaRepo struct {
	result map[uuid.UUID][]domain.IdeaSuggestion
	err    error
}

func (m *mockIdeaRepo) GetBySnapshotIDs(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]domain.IdeaSuggestion, error) {
	return m.result, m.err
}

func emptyRepos() *dl.Repos {
	return &dl.Repos{
		Creator:  &mockCreatorRepo{},
		Snapshot: &mockSnapshotRepo{},
		Idea:     &mockIdeaRepo{},
	}
}

// ---------------------------------------------------------------------------
// Context / Middleware tests
// ---------------------------------------------------------------------------

func TestFromContext_ReturnsLoaders(t *testing.T) {
	loaders := dl.NewLoaders(emptyRepos())
	ctx := dl.WithLoaders(context.Background(), loaders)

	got := dl.FromContext(ctx)
	assert.NotNil(t, got)
	assert.Equal(t, loaders, got)
}

func TestFromContext_PanicsWhenMissing(t *testing.T) {
	assert.Panics(t, func() {
		dl.FromContext(context.Background())
	})
}

func TestMiddleware_InjectsLoaders(t *testing.T) {
	mw := dl.Middleware(emptyRepos())

	var gotLoaders *dl.Loaders
	handler := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotLoaders = dl.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, gotLoaders)
	assert.NotNil(t, gotLoaders.CreatorByID)
	assert.NotNil(t, gotLoaders.SnapshotsByBatch)
	assert.NotNil(t, gotLoaders.IdeasBySnapshot)
}

// ---------------------------------------------------------------------------
// Batch function tests — verify grouping and empty results
// ---------------------------------------------------------------------------

func TestCreatorLoader_ReturnsByID(t *testing.T) {
	creator1 := uuid.New()
	creator2 := uuid.New()

	repos := emptyRepos()
	repos.Creator = &mockCreatorRepo{
		result: []domain.CreatorProfile{
			{ID: creator1, DisplayName: "Alice Makes"},
			{ID: creator2, DisplayName: "Bob Builds"},
		},
	}

	loaders := dl.NewLoaders(repos)
	ctx := context.Background()

	got, err := loaders.CreatorByID.Load(ctx, creator1)()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice Makes", got.DisplayName)
}

func TestCreatorLoader_NotFound(t *testing.T) {
	loaders := dl.NewLoaders(emptyRepos())

	_, err := loaders.CreatorByID.Load(context.Background(), uuid.New())()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshotsLoader_GroupsByBatchID(t *testing.T) {
	batch1 := uuid.New()
	batch2 := uuid.New()

	repos := emptyRepos()
	repos.Snapshot = &mockSnapshotRepo{
		result: map[uuid.UUID][]domain.SentimentSnapshot{
			batch1: {{ID: uuid.New()}, {ID: uuid.New()}},
			batch2: {{ID: uuid.New()}},
		},
	}

	loaders := dl.NewLoaders(repos)
	ctx := context.Background()

	result1, err := loaders.SnapshotsByBatch.Load(ctx, batch1)()
	require.NoError(t, err)
	assert.Len(t, result1, 2)

	result2, err := loaders.SnapshotsByBatch.Load(ctx, batch2)()
	require.NoError(t, err)
	assert.Len(t, result2, 1)
}

func TestSnapshotsLoader_EmptyResult(t *testing.T) {
	loaders := dl.NewLoaders(emptyRepos())

	result, err := loaders.SnapshotsByBatch.Load(context.Background(), uuid.New())()
	require.NoError(t, err)
	assert.NotNil(t, result, "should return empty slice, not nil")
	assert.Empty(t, result)
}

func TestIdeasLoader_GroupsBySnapshotID(t *testing.T) {
	snap := uuid.New()

	repos := emptyRepos()
	repos.Idea = &mockIdeaRepo{
		result: map[uuid.UUID][]domain.IdeaSuggestion{
			snap: {{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}},
		},
	}

	loaders := dl.NewLoaders(repos)

	result, err := loaders.IdeasBySnapshot.Load(context.Background(), snap)()
	require.NoError(t, err)
	assert.Len(t, result, 3)
}

func TestIdeasLoader_PropagatesRepoError(t *testing.T) {
	repoErr := errors.New("connection lost")
	repos := emptyRepos()
	repos.Idea = &mockIdeaRepo{err: repoErr}

	loaders := dl.NewLoaders(repos)

	_, err := loaders.IdeasBySnapshot.Load(context.Background(), uuid.New())()
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}
