package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

// List returns the authenticated user's inbox: unread first, then newest first.
func (s *Service) List(ctx context.Context) ([]domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	msgs, err := s.messages.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("message.List: %w", err)
	}
	return msgs, nil
}

// UnreadCount returns how many inbox messages are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.messages.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("message.UnreadCount: %w", err)
	}
	return n, nil
}

// ToggleRead flips the read flag of a message the user received.
func (s *Service) ToggleRead(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	msg, err := s.ownMessage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("message.ToggleRead: %w", err)
	}

	updated, err := s.messages.SetRead(ctx, id, !msg.Read)
	if err != nil {
		return nil, fmt.Errorf("message.ToggleRead: %w", err)
	}
	return updated, nil
}

// Delete removes a message the user received.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	msg, err := s.ownMessage(ctx, id)
	if err != nil {
		return fmt.Errorf("message.Delete: %w", err)
	}

	if err := s.messages.Delete(ctx, id); err != nil {
		return fmt.Errorf("message.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "message deleted",
		slog.String("user_id", msg.RecipientID.String()),
		slog.String("message_id", id.String()))

	return nil
}

// ownMessage loads a message and checks that the caller is its recipient.
func (s *Service) ownMessage(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.RecipientID != userID {
		return nil, domain.ErrForbidden
	}
	return msg, nil
}
