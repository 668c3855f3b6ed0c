package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

// RegisterResult describes a successful registration.
type RegisterResult struct {
	UserID        uuid.UUID
	Message       string
	AccountLinked bool
	CanSignInWith []string
}

// SessionResult is returned by the sign-in operations.
type SessionResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  *domain.Identity
}
