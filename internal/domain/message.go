package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is an enquiry sent by a renter to a property owner.
type Message struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	PropertyID  uuid.UUID
	Name        string
	Email       string
	Phone       string
	Body        string
	Read        bool
	CreatedAt   time.Time
}
