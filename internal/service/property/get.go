package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

// Get returns a single property. Listings are public.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("property.Get: %w", err)
	}
	return p, nil
}

// ListByOwner returns every listing of the authenticated user, newest first.
func (s *Service) ListByOwner(ctx context.Context) ([]domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	page, err := s.properties.Search(ctx, domain.PropertyFilter{OwnerID: &userID})
	if err != nil {
		return nil, fmt.Errorf("property.ListByOwner: %w", err)
	}
	return page.Items, nil
}
