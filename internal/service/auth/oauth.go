package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/metrics"
)

// ResolveOAuthSignIn finds or creates the account behind an OAuth profile.
//
// A returning user gets username and image filled in only when they are
// still empty; nothing is written when both are already set. An unknown email
// creates an OAuth-only account (no password hash).
func (s *Service) ResolveOAuthSignIn(ctx context.Context, profile OAuthProfile) (*domain.Identity, error) {
	email := domain.NormalizeEmail(profile.Email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}
	name := nonEmpty(profile.Name)
	image := nonEmpty(profile.Image)

	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return s.refreshOAuthProfile(ctx, existing, name, image)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("auth.ResolveOAuthSignIn get user: %w", err)
	}

	username, err := s.availableUsername(ctx, defaultUsername(name, email))
	if err != nil {
		return nil, fmt.Errorf("auth.ResolveOAuthSignIn: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:    email,
		Username: username,
		Image:    image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Concurrent first sign-in for the same email: the other request won.
			if winner, getErr := s.users.GetByEmail(ctx, email); getErr == nil {
				return winner.Identity(), nil
			}
		}
		return nil, fmt.Errorf("auth.ResolveOAuthSignIn create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created via oauth",
		slog.String("user_id", created.ID.String()),
		slog.String("provider", metrics.MethodGoogle))

	return created.Identity(), nil
}

func (s *Service) refreshOAuthProfile(ctx context.Context, user *domain.User, name, image *string) (*domain.Identity, error) {
	var upd domain.UserUpdate

	if user.Username == "" {
		username, err := s.availableUsername(ctx, defaultUsername(name, user.Email))
		if err != nil {
			return nil, fmt.Errorf("auth.ResolveOAuthSignIn: %w", err)
		}
		upd.Username = &username
	}
	if (user.Image == nil || *user.Image == "") && image != nil {
		upd.Image = image
	}

	if upd.IsEmpty() {
		return user.Identity(), nil
	}

	updated, err := s.users.UpdateFields(ctx, user.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("auth.ResolveOAuthSignIn update user: %w", err)
	}

	s.log.InfoContext(ctx, "oauth profile refreshed",
		slog.String("user_id", updated.ID.String()),
		slog.Bool("username_set", upd.Username != nil),
		slog.Bool("image_set", upd.Image != nil))

	return updated.Identity(), nil
}

// LoginWithGoogle exchanges the authorization code, resolves the account and
// issues a session.
func (s *Service) LoginWithGoogle(ctx context.Context, input GoogleLoginInput) (result *SessionResult, err error) {
	defer func() {
		metrics.SignInAttemptsTotal.WithLabelValues(metrics.MethodGoogle, outcomeOf(err)).Inc()
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.oauth == nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle: provider not configured: %w", domain.ErrUnauthorized)
	}

	profile, err := s.oauth.VerifyCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle verify code: %w", err)
	}

	identity, err := s.ResolveOAuthSignIn(ctx, OAuthProfile{
		Email: profile.Email,
		Name:  profile.Name,
		Image: profile.AvatarURL,
	})
	if err != nil {
		return nil, err
	}

	result, err = s.issueSession(identity)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", identity.ID.String()),
		slog.String("provider", profile.Provider))

	return result, nil
}
