package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

// Delete removes a listing together with its bookmarks and messages.
// Only the owner may delete it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var bookmarks, messages int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.properties.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if p.OwnerID != userID {
			return domain.ErrForbidden
		}

		if bookmarks, err = s.bookmarks.DeleteByProperty(txCtx, id); err != nil {
			return fmt.Errorf("delete bookmarks: %w", err)
		}
		if messages, err = s.messages.DeleteByProperty(txCtx, id); err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		return s.properties.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("property.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "property deleted",
		slog.String("user_id", userID.String()),
		slog.String("property_id", id.String()),
		slog.Int64("bookmarks_removed", bookmarks),
		slog.Int64("messages_removed", messages))

	return nil
}
