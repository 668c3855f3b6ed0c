// Package dataloader provides per-request DataLoaders that batch the owner and
// property lookups of list responses into single SQL calls. DataLoaders call
// repositories directly, bypassing the service layer; they only read public
// listing data and owner summaries.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type propertyRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User     userRepo
	Property propertyRepo
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	UserByID     *dataloader.Loader[uuid.UUID, *domain.User]
	PropertyByID *dataloader.Loader[uuid.UUID, *domain.Property]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:     newLoader(newUserBatchFn(repos.User)),
		PropertyByID: newLoader(newPropertyBatchFn(repos.Property)),
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

// LoadMany resolves keys through loader and returns the non-nil values by
// key. Keys whose record is gone are simply absent.
func LoadMany[V any](ctx context.Context, loader *dataloader.Loader[uuid.UUID, *V], keys []uuid.UUID) (map[uuid.UUID]*V, error) {
	unique := make([]uuid.UUID, 0, len(keys))
	seen := make(map[uuid.UUID]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}

	values, errs := loader.LoadMany(ctx, unique)()
	out := make(map[uuid.UUID]*V, len(unique))
	for i, k := range unique {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		if values[i] != nil {
			out[k] = values[i]
		}
	}
	return out, nil
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
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
