package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

const (
	msgBookmarkAdded   = "Bookmark added"
	msgBookmarkRemoved = "Bookmark removed"
)

// ToggleBookmark saves the property for the authenticated user, or removes it
// when already saved.
func (s *Service) ToggleBookmark(ctx context.Context, propertyID uuid.UUID) (*BookmarkResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.properties.GetByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("property.ToggleBookmark: %w", err)
	}

	removed, err := s.bookmarks.Remove(ctx, userID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("property.ToggleBookmark remove: %w", err)
	}
	if removed {
		s.log.InfoContext(ctx, "bookmark removed",
			slog.String("user_id", userID.String()),
			slog.String("property_id", propertyID.String()))
		return &BookmarkResult{Bookmarked: false, Message: msgBookmarkRemoved}, nil
	}

	if err := s.bookmarks.Add(ctx, userID, propertyID); err != nil {
		return nil, fmt.Errorf("property.ToggleBookmark add: %w", err)
	}

	s.log.InfoContext(ctx, "bookmark added",
		slog.String("user_id", userID.String()),
		slog.String("property_id", propertyID.String()))

	return &BookmarkResult{Bookmarked: true, Message: msgBookmarkAdded}, nil
}

// IsBookmarked reports whether the authenticated user saved the property.
func (s *Service) IsBookmarked(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	saved, err := s.bookmarks.Exists(ctx, userID, propertyID)
	if err != nil {
		return false, fmt.Errorf("property.IsBookmarked: %w", err)
	}
	return saved, nil
}

// ListBookmarks returns the authenticated user's saved properties, most
// recently saved first.
func (s *Service) ListBookmarks(ctx context.Context) ([]domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ids, err := s.bookmarks.ListPropertyIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("property.ListBookmarks: %w", err)
	}

	props, err := s.properties.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("property.ListBookmarks: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Property, len(props))
	for _, p := range props {
		byID[p.ID] = p
	}

	out := make([]domain.Property, 0, len(props))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
