package domain

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lower-cases an email address.
// Both the OAuth and credentials sign-in paths store and look up emails in
// this form, so one person resolves to one record regardless of casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks the basic local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// EmailLocalPart returns the part before '@', or the whole string when
// there is no local part.
func EmailLocalPart(email string) string {
	if idx := strings.IndexByte(email, '@'); idx > 0 {
		return email[:idx]
	}
	return email
}

// NormalizeText trims surrounding whitespace and compresses runs of spaces.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
