// Package property implements rental listings, search and bookmarks.
package property

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

// propertyRepo defines the property repository interface needed by property service.
type propertyRepo interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error)
	Search(ctx context.Context, f domain.PropertyFilter) (*domain.PropertyPage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// bookmarkRepo defines the bookmark repository interface needed by property service.
type bookmarkRepo interface {
	Add(ctx context.Context, userID, propertyID uuid.UUID) error
	Remove(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	ListPropertyIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
}

// messageRepo is the slice of the message repository needed to clean up a
// deleted listing.
type messageRepo interface {
	DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
}

// txManager defines the transaction manager interface needed by property service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Paging bounds the search page size.
type Paging struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service implements listing, search and bookmark operations.
type Service struct {
	log        *slog.Logger
	properties propertyRepo
	bookmarks  bookmarkRepo
	messages   messageRepo
	tx         txManager
	paging     Paging
}

// NewService creates a new property service instance. Zero paging values
// fall back to a default of 6 and a maximum of 50.
func NewService(
	logger *slog.Logger,
	properties propertyRepo,
	bookmarks bookmarkRepo,
	messages messageRepo,
	tx txManager,
	paging Paging,
) *Service {
	if paging.DefaultPageSize <= 0 {
		paging.DefaultPageSize = defaultPageSize
	}
	if paging.MaxPageSize <= 0 {
		paging.MaxPageSize = maxPageSize
	}
	return &Service{
		log:        logger.With("service", "property"),
		properties: properties,
		bookmarks:  bookmarks,
		messages:   messages,
		tx:         tx,
		paging:     paging,
	}
}
