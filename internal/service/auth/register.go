package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ricmershon/dwellio-sub005/internal/auth"
	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/metrics"
)

const (
	msgAccountCreated = "Account created successfully. You can now sign in."
	msgAccountLinked  = "Password added to your existing account. You can now sign in with Google or with your email and password."
)

// Register creates a credentials account or links a password to an existing
// OAuth-only account with the same email.
//
//   - no record: create one with the password hash (accountLinked=false)
//   - record without password: set the hash on it, keeping its id (accountLinked=true)
//   - record with password: DuplicateAccount, no write
func (s *Service) Register(ctx context.Context, input RegisterInput) (result *RegisterResult, err error) {
	defer func() {
		outcome := outcomeOf(err)
		if err == nil && result.AccountLinked {
			outcome = metrics.OutcomeLinked
		} else if err == nil {
			outcome = metrics.OutcomeCreated
		}
		metrics.RegistrationsTotal.WithLabelValues(outcome).Inc()
	}()

	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Register get user: %w", err)
	}

	if existing != nil && existing.HasPassword() {
		return nil, domain.DuplicateAccount()
	}

	if err := checkPasswordStrength(input.Password); err != nil {
		return nil, err
	}

	if existing == nil {
		return s.registerNew(ctx, email, input)
	}
	return s.linkPassword(ctx, existing, input)
}

func (s *Service) registerNew(ctx context.Context, email string, input RegisterInput) (*RegisterResult, error) {
	username := input.Username
	if username != "" {
		if err := checkUsername(username); err != nil {
			return nil, err
		}
		_, err := s.users.GetByUsername(ctx, username)
		switch {
		case err == nil:
			return nil, domain.UsernameTaken()
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("auth.Register check username: %w", err)
		}
	} else {
		derived, err := s.availableUsername(ctx, domain.EmailLocalPart(email))
		if err != nil {
			return nil, fmt.Errorf("auth.Register: %w", err)
		}
		username = derived
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: &hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, s.translateCreateConflict(ctx, email, err)
		}
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via credentials",
		slog.String("user_id", created.ID.String()),
		slog.Bool("linked", false))

	return &RegisterResult{
		UserID:        created.ID,
		Message:       msgAccountCreated,
		AccountLinked: false,
		CanSignInWith: []string{domain.SignInCredentials},
	}, nil
}

// translateCreateConflict maps a unique violation on insert to the conflict
// the caller would have seen without the race. The store names the colliding
// field when it can; otherwise the email is looked up again.
func (s *Service) translateCreateConflict(ctx context.Context, email string, cause error) error {
	var dup *domain.DuplicateError
	if errors.As(cause, &dup) {
		if dup.Field == domain.FieldEmail {
			return domain.DuplicateAccount()
		}
		return domain.UsernameTaken()
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.DuplicateAccount()
	}
	return domain.UsernameTaken()
}

// linkPassword adds a password to an OAuth-only account. A requested rename
// is best effort: an invalid or taken username is skipped, the link still
// proceeds.
func (s *Service) linkPassword(ctx context.Context, user *domain.User, input RegisterInput) (*RegisterResult, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	wantRename := input.Username != "" && input.Username != user.Username
	if wantRename && checkUsername(input.Username) != nil {
		s.log.InfoContext(ctx, "invalid rename skipped during account link",
			slog.String("user_id", user.ID.String()))
		wantRename = false
	}

	var linked *domain.User
	run := func(rename bool) error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			upd := domain.UserUpdate{PasswordHash: &hash}

			if rename {
				taken, err := s.usernameTakenByOther(txCtx, input.Username, user.ID)
				if err != nil {
					return err
				}
				if taken {
					s.log.InfoContext(ctx, "rename skipped during account link",
						slog.String("user_id", user.ID.String()))
				} else {
					upd.Username = &input.Username
				}
			}

			u, err := s.users.UpdateFields(txCtx, user.ID, upd)
			if err != nil {
				return err
			}
			linked = u
			return nil
		})
	}

	err = run(wantRename)
	if err != nil && wantRename && errors.Is(err, domain.ErrAlreadyExists) {
		// The username was claimed between the check and the update.
		err = run(false)
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Register link password: %w", err)
	}

	s.log.InfoContext(ctx, "password linked to oauth account",
		slog.String("user_id", linked.ID.String()),
		slog.Bool("linked", true))

	return &RegisterResult{
		UserID:        linked.ID,
		Message:       msgAccountLinked,
		AccountLinked: true,
		CanSignInWith: []string{domain.SignInGoogle, domain.SignInCredentials},
	}, nil
}

// checkPasswordStrength runs every strength rule and joins the failures.
func checkPasswordStrength(password string) error {
	if len(password) > maxPasswordBytes {
		return domain.NewValidationError("password", msgPasswordTooLong)
	}

	check := auth.ValidatePassword(password)
	if check.IsValid {
		return nil
	}

	errs := make([]domain.FieldError, 0, len(check.Errors))
	for _, msg := range check.Errors {
		errs = append(errs, domain.FieldError{Field: "password", Message: msg})
	}
	return domain.NewValidationErrors(errs)
}
