package user

import (
	"strings"
	"unicode/utf8"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	maxImageURLLen = 2048
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Username *string
	Image    *string
}

// Normalize trims the optional fields in place.
func (i *UpdateProfileInput) Normalize() {
	if i.Username != nil {
		v := strings.TrimSpace(*i.Username)
		i.Username = &v
	}
	if i.Image != nil {
		v := strings.TrimSpace(*i.Image)
		i.Image = &v
	}
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil {
		if n := utf8.RuneCountInString(*i.Username); n < minUsernameLen || n > maxUsernameLen {
			errs = append(errs, domain.FieldError{Field: "username", Message: "Username must be between 3 and 50 characters"})
		}
	}

	if i.Image != nil && len(*i.Image) > maxImageURLLen {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}

	if i.Username == nil && i.Image == nil {
		errs = append(errs, domain.FieldError{Field: "profile", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
