// Package message implements enquiries from renters to property owners.
package message

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

// messageRepo defines the message repository interface needed by message service.
type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Message, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Message, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// propertyRepo resolves the recipient of a message.
type propertyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

// Service implements inbox operations.
type Service struct {
	log        *slog.Logger
	messages   messageRepo
	properties propertyRepo
}

// NewService creates a new message service instance.
func NewService(logger *slog.Logger, messages messageRepo, properties propertyRepo) *Service {
	return &Service{
		log:        logger.With("service", "message"),
		messages:   messages,
		properties: properties,
	}
}
