package message

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const (
	maxNameLen  = 200
	maxPhoneLen = 50
	maxBodyLen  = 5000
)

// SendMessageInput holds an enquiry about a property.
type SendMessageInput struct {
	PropertyID uuid.UUID
	Name       string
	Email      string
	Phone      string
	Body       string
}

func (i *SendMessageInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
	i.Phone = strings.TrimSpace(i.Phone)
	i.Body = strings.TrimSpace(i.Body)
}

// Validate checks all fields and collects all errors.
func (i *SendMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.PropertyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "property", Message: "Property is required"})
	}

	switch {
	case i.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	case len(i.Name) > maxNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is too long"})
	}

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	case !domain.IsValidEmail(i.Email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "Please enter a valid email address"})
	}

	if len(i.Phone) > maxPhoneLen {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "Phone is too long"})
	}

	switch {
	case i.Body == "":
		errs = append(errs, domain.FieldError{Field: "body", Message: "Message is required"})
	case len(i.Body) > maxBodyLen:
		errs = append(errs, domain.FieldError{Field: "body", Message: "Message is too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
