package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Password rule messages, reported in this order.
const (
	msgPasswordLength    = "Password must be at least 8 characters long"
	msgPasswordLowercase = "Password must contain at least one lowercase letter"
	msgPasswordUppercase = "Password must contain at least one uppercase letter"
	msgPasswordDigit     = "Password must contain at least one number"
	msgPasswordSpecial   = "Password must contain at least one special character (@$!%*?&)"
)

const (
	minPasswordLength = 8
	passwordSpecials  = "@$!%*?&"
)

// PasswordCheck is the outcome of ValidatePassword.
type PasswordCheck struct {
	IsValid bool
	Errors  []string
}

// ValidatePassword checks every strength rule and collects all failures.
func ValidatePassword(password string) PasswordCheck {
	var errs []string

	if len(password) < minPasswordLength {
		errs = append(errs, msgPasswordLength)
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		errs = append(errs, msgPasswordLowercase)
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		errs = append(errs, msgPasswordUppercase)
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		errs = append(errs, msgPasswordDigit)
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		errs = append(errs, msgPasswordSpecial)
	}

	return PasswordCheck{IsValid: len(errs) == 0, Errors: errs}
}

// PasswordHasher hashes and verifies passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher. Costs outside bcrypt's range fall back
// to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A mismatch is (false, nil);
// a malformed hash is an error.
func (h *PasswordHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
