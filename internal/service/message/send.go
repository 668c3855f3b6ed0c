package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

const msgSelfSend = "You can not send a message to yourself"

// Send delivers an enquiry from the authenticated user to the owner of the
// property.
func (s *Service) Send(ctx context.Context, input SendMessageInput) (*domain.Message, error) {
	senderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	prop, err := s.properties.GetByID(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("message.Send get property: %w", err)
	}

	if prop.OwnerID == senderID {
		return nil, domain.NewValidationError("recipient", msgSelfSend)
	}

	msg, err := s.messages.Create(ctx, &domain.Message{
		SenderID:    senderID,
		RecipientID: prop.OwnerID,
		PropertyID:  prop.ID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Body:        input.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("message.Send: %w", err)
	}

	s.log.InfoContext(ctx, "message sent",
		slog.String("user_id", senderID.String()),
		slog.String("message_id", msg.ID.String()),
		slog.String("property_id", prop.ID.String()))

	return msg, nil
}
