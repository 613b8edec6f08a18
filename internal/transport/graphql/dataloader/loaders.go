package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Creator profiles by ID
// ---------------------------------------------------------------------------

func newCreatorBatchFn(repo creatorRepo) dataloader.BatchFunc[uuid.UUID, *domain.CreatorProfile] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.CreatorProfile] {
		creators, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.CreatorProfile](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.CreatorProfile, len(creators))
		for i := range creators {
			byID[creators[i].ID] = &creators[i]
		}

		results := make([]*dataloader.Result[*domain.CreatorProfile], len(keys))
		for i, key := range keys {
			if c, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.CreatorProfile]{Data: c}
			} else {
				results[i] = &dataloader.Result[*domain.CreatorProfile]{Error: domain.ErrNotFound}
			}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Snapshots by comment batch ID
// ---------------------------------------------------------------------------

func newSnapshotsBatchFn(repo snapshotRepo) dataloader.BatchFunc[uuid.UUID, []domain.SentimentSnapshot] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.SentimentSnapshot] {
		grouped, err := repo.GetByBatchIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.SentimentSnapshot](len(keys), err)
		}
		return mapResults(keys, grouped, emptySlice[domain.SentimentSnapshot])
	}
}

// ---------------------------------------------------------------------------
// Ideas by snapshot ID
// ---------------------------------------------------------------------------

func newIdeasBatchFn(repo ideaRepo) dataloader.BatchFunc[uuid.UUID, []domain.IdeaSuggestion] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.IdeaSuggestion] {
		grouped, err := repo.GetBySnapshotIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.IdeaSuggestion](len(keys), err)
		}
		return mapResults(keys, grouped, emptySlice[domain.IdeaSuggestion])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
