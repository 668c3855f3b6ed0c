package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/metrics"
)

// Authorize checks email + password. The checks run in order and the first
// failure wins: missing input, unknown email, OAuth-only account, wrong
// password. It never writes.
func (s *Service) Authorize(ctx context.Context, input CredentialsInput) (*domain.Identity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(input.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NoAccountFound(email)
		}
		return nil, fmt.Errorf("auth.Authorize get user: %w", err)
	}

	if !user.HasPassword() {
		return nil, domain.OAuthOnlyAccount()
	}

	ok, err := s.hasher.Verify(input.Password, *user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("auth.Authorize verify password: %w", err)
	}
	if !ok {
		return nil, domain.InvalidPassword()
	}

	return user.Identity(), nil
}

// LoginWithPassword authorizes the credentials and issues a session.
func (s *Service) LoginWithPassword(ctx context.Context, input CredentialsInput) (result *SessionResult, err error) {
	defer func() {
		metrics.SignInAttemptsTotal.WithLabelValues(metrics.MethodCredentials, outcomeOf(err)).Inc()
	}()

	identity, err := s.Authorize(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err = s.issueSession(identity)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", identity.ID.String()),
		slog.String("provider", metrics.MethodCredentials))

	return result, nil
}

// ValidateToken validates a session token and returns its user ID.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.sessions.ValidateSessionToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "session token rejected", slog.String("error", err.Error()))
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CurrentIdentity loads the identity of an authenticated user.
func (s *Service) CurrentIdentity(ctx context.Context, userID uuid.UUID) (*domain.Identity, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.CurrentIdentity: %w", err)
	}
	return user.Identity(), nil
}
