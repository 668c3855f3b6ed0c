package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateUsername renames the authenticated user.
func (s *Service) UpdateUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.UpdateProfile(ctx, UpdateProfileInput{Username: &username})
}

// UpdateProfile changes the username and/or image of the authenticated user.
// A username held by another record yields UsernameTaken.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Username != nil {
			other, err := s.users.GetByUsername(txCtx, *input.Username)
			switch {
			case err == nil && other.ID != userID:
				return domain.UsernameTaken()
			case err != nil && !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("check username: %w", err)
			}
		}

		u, err := s.users.UpdateFields(txCtx, userID, domain.UserUpdate{
			Username: input.Username,
			Image:    input.Image,
		})
		if err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.UsernameTaken()
		}
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("username_changed", input.Username != nil))

	return updated, nil
}
