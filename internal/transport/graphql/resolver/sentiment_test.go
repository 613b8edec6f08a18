package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/internal/service/sentiment"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Mock
// ---------------------------------------------------------------------------

type sentimentServiceMock struct {
	AnalyzeFunc       func(ctx context.Context, batchID uuid.UUID) (sentiment.AnalyzeResult, error)
	GetSnapshotFunc   func(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error)
	ListSnapshotsFunc func(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error)
}

func (m *sentimentServiceMock) Analyze(ctx context.Context, batchID uuid.UUID) (sentiment.AnalyzeResult, error) {
	return m.AnalyzeFunc(ctx, batchID)
}

func (m *sentimentServiceMock) GetSnapshot(ctx context.Context, id uuid.UUID) (domain.SentimentSnapshot, error) {
	return m.GetSnapshotFunc(ctx, id)
}

func (m *sentimentServiceMock) ListSnapshots(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error) {
	return m.ListSnapshotsFunc(ctx, creatorID, limit, offset)
}

// ---------------------------------------------------------------------------
// Mutation: analyzeBatch
// ---------------------------------------------------------------------------

func TestAnalyzeBatch_Success(t *testing.T) {
	t.Parallel()

	batchID := uuid.New()
	snapshotID := uuid.New()
	mock := &sentimentServiceMock{
		AnalyzeFunc: func(_ context.Context, id uuid.UUID) (sentiment.AnalyzeResult, error) {
			require.Equal(t, batchID, id)
			return sentiment.AnalyzeResult{
				Snapshot: domain.SentimentSnapshot{
					ID:             snapshotID,
					CommentBatchID: id,
					PositiveCount:  8,
					NegativeCount:  1,
					NeutralCount:   1,
					OverallSentimentScore:   0.62,
				},
				DegradedChunks: 1,
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{sentiment: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.AnalyzeBatch(ctx, batchID)

	require.NoError(t, err)
	require.NotNil(t, result.Snapshot)
	assert.Equal(t, snapshotID, result.Snapshot.ID)
	assert.Equal(t, 1, result.DegradedChunks)
	assert.InDelta(t, 0.62, result.Snapshot.OverallSentimentScore, 1e-9)
}

func TestAnalyzeBatch_Forbidden(t *testing.T) {
	t.Parallel()

	mock := &sentimentServiceMock{
		AnalyzeFunc: func(_ context.Context, _ uuid.UUID) (sentiment.AnalyzeResult, error) {
			return sentiment.AnalyzeResult{}, domain.ErrForbidden
		},
	}

	resolver := &mutationResolver{&Resolver{sentiment: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := resolver.AnalyzeBatch(ctx, uuid.New())

	require.ErrorIs(t, err, domain.ErrForbidden)
}

// ---------------------------------------------------------------------------
// Query: sentimentSnapshot / sentimentSnapshots
// ---------------------------------------------------------------------------

func TestSentimentSnapshot_Success(t *testing.T) {
	t.Parallel()

	snapshotID := uuid.New()
	mock := &sentimentServiceMock{
		GetSnapshotFunc: func(_ context.Context, id uuid.UUID) (domain.SentimentSnapshot, error) {
			require.Equal(t, snapshotID, id)
			return domain.SentimentSnapshot{ID: id, TopKeywords: []string{"tutorials", "audio"}}, nil
		},
	}

	resolver := &queryResolver{&Resolver{sentiment: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.SentimentSnapshot(ctx, snapshotID)

	require.NoError(t, err)
	assert.Equal(t, []string{"tutorials", "audio"}, result.TopKeywords)
}

func TestSentimentSnapshots_List(t *testing.T) {
	t.Parallel()

	creatorID := uuid.New()
	mock := &sentimentServiceMock{
		ListSnapshotsFunc: func(_ context.Context, id uuid.UUID, limit, offset int) ([]domain.SentimentSnapshot, error) {
			require.Equal(t, creatorID, id)
			return []domain.SentimentSnapshot{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}

	resolver := &queryResolver{&Resolver{sentiment: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.SentimentSnapshots(ctx, creatorID, nil, nil)

	require.NoError(t, err)
	require.Len(t, result, 2)
}
