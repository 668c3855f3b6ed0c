package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

// ---------------------------------------------------------------------------
// Users by ID
// ---------------------------------------------------------------------------

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		return mapResults(keys, byID, nilValue[domain.User])
	}
}

// ---------------------------------------------------------------------------
// Properties by ID
// ---------------------------------------------------------------------------

func newPropertyBatchFn(repo propertyRepo) dataloader.BatchFunc[uuid.UUID, *domain.Property] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Property] {
		props, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Property](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Property, len(props))
		for i := range props {
			byID[props[i].ID] = &props[i]
		}

		return mapResults(keys, byID, nilValue[domain.Property])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults creates n results all containing the same error.
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

// nilValue returns a nil pointer for keys with no record.
func nilValue[T any]() *T {
	return nil
}
