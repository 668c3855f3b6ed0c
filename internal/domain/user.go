package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sign-in capabilities reported back to clients after registration.
const (
	SignInGoogle      = "google"
	SignInCredentials = "credentials"
)

// User is a single person's account. Email is the correlation key between
// OAuth and credentials sign-in. A nil PasswordHash marks an OAuth-only account.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash *string
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can sign in with credentials.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Identity returns the normalized identity handed to session issuance.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Username,
		Image: u.Image,
	}
}

// Identity is the normalized result of a successful sign-in.
type Identity struct {
	ID    uuid.UUID
	Email string
	Name  string
	Image *string
}

// UserUpdate lists the mutable user fields. Nil fields are left unchanged.
type UserUpdate struct {
	Username     *string
	Image        *string
	PasswordHash *string
}

// IsEmpty reports whether the update would not change anything.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Image == nil && u.PasswordHash == nil
}
