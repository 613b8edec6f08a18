// Package dataloader provides per-request DataLoaders for batching GraphQL
// resolver queries into single SQL calls. DataLoaders call repositories
// directly, bypassing the service layer. Authorization is enforced by the
// parent resolvers: child objects are only reachable through parents the
// caller was allowed to load.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type creatorRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CreatorProfile, error)
}

type snapshotRepo interface {
	GetByBatchIDs(ctx context.Context, batchIDs []uuid.UUID) (map[uuid.UUID][]domain.SentimentSnapshot, error)
}

type ideaRepo interface {
	GetBySnapshotIDs(ctx context.Context, snapshotIDs []uuid.UUID) (map[uuid.UUID][]domain.IdeaSuggestion, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Creator  creatorRepo
	Snapshot snapshotRepo
	Idea     ideaRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	CreatorByID      *dataloader.Loader[uuid.UUID, *domain.CreatorProfile]
	SnapshotsByBatch *dataloader.Loader[uuid.UUID, []domain.SentimentSnapshot]
	IdeasBySnapshot  *dataloader.Loader[uuid.UUID, []domain.IdeaSuggestion]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		CreatorByID:      newLoader(newCreatorBatchFn(repos.Creator)),
		SnapshotsByBatch: newLoader(newSnapshotsBatchFn(repos.Snapshot)),
		IdeasBySnapshot:  newLoader(newIdeasBatchFn(repos.Idea)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context — is middleware configured?")
	}
	return l
}
