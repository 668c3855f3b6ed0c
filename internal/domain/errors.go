package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrWrongAuthMethod    = errors.New("wrong auth method")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Unique fields a DuplicateError can name.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
)

// DuplicateError is an ErrAlreadyExists that names the unique field the
// write collided on.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return e.Field + " already exists" }

func (e *DuplicateError) Unwrap() error { return ErrAlreadyExists }

// FieldError describes a validation error for a specific field.
// Nested fields use dotted paths, e.g. "location.city".
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Message joins all field messages with ", " for display.
func (e *ValidationError) Message() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}

// FieldMap reshapes the flat field list into a nested map keyed by path
// segment, so "location.city" lands under m["location"]["city"].
// The first message for a path wins. A path that is both a leaf and a
// parent keeps the leaf message under the "_error" key of the parent map.
func (e *ValidationError) FieldMap() map[string]any {
	root := make(map[string]any)
	for _, fe := range e.Errors {
		parts := strings.Split(fe.Field, ".")
		node := root
		for i, part := range parts {
			last := i == len(parts)-1
			existing, ok := node[part]
			if last {
				switch v := existing.(type) {
				case nil:
					node[part] = fe.Message
				case map[string]any:
					if _, set := v["_error"]; !set {
						v["_error"] = fe.Message
					}
				}
				break
			}
			child, isMap := existing.(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			} else if !isMap {
				child = map[string]any{"_error": existing}
				node[part] = child
			}
			node = child
		}
	}
	return root
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// KindError carries a message safe to show to end users together with the
// sentinel kind that callers dispatch on via errors.Is.
type KindError struct {
	Kind    error
	Message string
}

func (e *KindError) Error() string { return e.Message }

func (e *KindError) Unwrap() error { return e.Kind }

// NoAccountFound is returned when credentials sign-in targets an unknown email.
func NoAccountFound(email string) *KindError {
	return &KindError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("No account found with email %s. Please register first or sign in with Google.", email),
	}
}

// OAuthOnlyAccount is returned when credentials sign-in targets an account
// that has no password.
func OAuthOnlyAccount() *KindError {
	return &KindError{
		Kind:    ErrWrongAuthMethod,
		Message: "This account was created with Google. Please sign in with Google, or register with this email to add a password to your account.",
	}
}

// InvalidPassword is returned when the password does not match the stored hash.
func InvalidPassword() *KindError {
	return &KindError{Kind: ErrInvalidCredentials, Message: "Invalid password"}
}

// DuplicateAccount is returned when registering an email that already has a password.
func DuplicateAccount() *KindError {
	return &KindError{
		Kind:    ErrConflict,
		Message: "An account with this email already exists. Try signing in instead.",
	}
}

// UsernameTaken is returned when the requested username belongs to another record.
func UsernameTaken() *KindError {
	return &KindError{Kind: ErrConflict, Message: "Username is already taken"}
}
