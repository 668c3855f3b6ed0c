package config

import (
	"fmt"
)

const (
	minHashCost = 4
	maxHashCost = 31
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < minHashCost || c.Auth.PasswordHashCost > maxHashCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			minHashCost, maxHashCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %s)", c.Auth.SessionTTL)
	}

	if c.hasPartialGoogleOAuth() {
		return fmt.Errorf("auth: google_client_id and google_client_secret must be set together")
	}

	if err := c.Listings.validate(); err != nil {
		return fmt.Errorf("listings: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (c *Config) hasPartialGoogleOAuth() bool {
	return (c.Auth.GoogleClientID == "") != (c.Auth.GoogleClientSecret == "")
}

func (l *ListingsConfig) validate() error {
	if l.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", l.MaxPageSize)
	}
	if l.DefaultPageSize <= 0 || l.DefaultPageSize > l.MaxPageSize {
		return fmt.Errorf("default_page_size must be in [1, %d] (got %d)", l.MaxPageSize, l.DefaultPageSize)
	}
	return nil
}
