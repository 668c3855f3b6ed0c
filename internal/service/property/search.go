package property

import (
	"context"
	"fmt"
	"strings"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const (
	defaultPageSize = 6
	maxPageSize     = 50
	maxQueryLen     = 200
)

// PageSizeForViewport picks how many cards fit the client's layout:
// one column on phones, two on tablets, three on desktops.
func PageSizeForViewport(width int) int {
	switch {
	case width <= 0:
		return defaultPageSize
	case width < 640:
		return 3
	case width < 1024:
		return 6
	default:
		return 9
	}
}

// Search returns one page of listings matching the free-text location, type
// and featured filters.
func (s *Service) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	filter, page, size, err := s.buildFilter(input)
	if err != nil {
		return nil, err
	}

	res, err := s.properties.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("property.Search: %w", err)
	}

	return &SearchResult{
		Items:      res.Items,
		Total:      res.Total,
		Page:       page,
		PageSize:   size,
		TotalPages: (res.Total + size - 1) / size,
	}, nil
}

func (s *Service) buildFilter(input SearchInput) (domain.PropertyFilter, int, int, error) {
	var f domain.PropertyFilter

	f.Location = domain.NormalizeText(input.Location)
	if len(f.Location) > maxQueryLen {
		return f, 0, 0, domain.NewValidationError("location", "Search text is too long")
	}

	if t := strings.TrimSpace(input.Type); t != "" && !strings.EqualFold(t, domain.PropertyTypeAll) {
		pt := domain.PropertyType(t)
		if !pt.IsValid() {
			return f, 0, 0, domain.NewValidationError("type", "Invalid property type")
		}
		f.Type = &pt
	}

	f.Featured = input.Featured

	page := max(input.Page, 1)
	size := s.pageSize(input)

	f.Limit = size
	f.Offset = (page - 1) * size

	return f, page, size, nil
}

func (s *Service) pageSize(input SearchInput) int {
	size := input.PageSize
	if size <= 0 {
		if input.ViewportWidth > 0 {
			size = PageSizeForViewport(input.ViewportWidth)
		} else {
			size = s.paging.DefaultPageSize
		}
	}
	return min(max(size, 1), s.paging.MaxPageSize)
}
