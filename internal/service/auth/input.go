package auth

import (
	"strings"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgInvalidEmail        = "Please enter a valid email address"
	msgPasswordTooLong     = "Password must be at most 72 bytes long"
	msgUsernameLength      = "Username must be between 3 and 50 characters"

	maxPasswordBytes = 72
	minUsernameLen   = 3
	maxCodeLen       = 4096
)

// OAuthProfile is the provider profile handed to ResolveOAuthSignIn.
type OAuthProfile struct {
	Email string
	Name  *string
	Image *string
}

// CredentialsInput holds the email + password of a sign-in attempt.
type CredentialsInput struct {
	Email    string
	Password string
}

// Validate reports missing credentials. A blank email counts as missing.
func (i CredentialsInput) Validate() error {
	if strings.TrimSpace(i.Email) == "" || i.Password == "" {
		return domain.NewValidationError("credentials", msgCredentialsRequired)
	}
	return nil
}

// RegisterInput holds the fields of a credentials registration.
// Username is optional.
type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// Validate checks presence and email shape. Password strength and the
// username are checked after the email lookup, so an existing password
// account is reported as a duplicate whatever else the request carries.
func (i RegisterInput) Validate() error {
	if i.Email == "" || i.Password == "" {
		return domain.NewValidationError("email", msgCredentialsRequired)
	}
	if !domain.IsValidEmail(i.Email) {
		return domain.NewValidationError("email", msgInvalidEmail)
	}
	return nil
}

func checkUsername(username string) error {
	if n := len([]rune(username)); n < minUsernameLen || n > maxUsernameLen {
		return domain.NewValidationError("username", msgUsernameLength)
	}
	return nil
}

// GoogleLoginInput holds the authorization code of a Google callback.
type GoogleLoginInput struct {
	Code string
}

// Validate validates the login input.
func (i GoogleLoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	} else if len(i.Code) > maxCodeLen {
		errs = append(errs, domain.FieldError{Field: "code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
