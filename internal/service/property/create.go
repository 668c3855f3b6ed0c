package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

// Create lists a new property owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.properties.Create(ctx, &domain.Property{
		OwnerID:     userID,
		Name:        input.Name,
		Type:        domain.PropertyType(input.Type),
		Description: input.Description,
		Location: domain.Location{
			Street:  input.Location.Street,
			City:    input.Location.City,
			State:   input.Location.State,
			Zipcode: input.Location.Zipcode,
		},
		Beds:       input.Beds,
		Baths:      input.Baths,
		SquareFeet: input.SquareFeet,
		Amenities:  input.Amenities,
		Rates: domain.Rates{
			Nightly: input.Rates.Nightly,
			Weekly:  input.Rates.Weekly,
			Monthly: input.Rates.Monthly,
		},
		SellerInfo: domain.SellerInfo{
			Name:  input.SellerInfo.Name,
			Email: input.SellerInfo.Email,
			Phone: input.SellerInfo.Phone,
		},
		Images: input.Images,
	})
	if err != nil {
		return nil, fmt.Errorf("property.Create: %w", err)
	}

	s.log.InfoContext(ctx, "property created",
		slog.String("user_id", userID.String()),
		slog.String("property_id", created.ID.String()))

	return created, nil
}
