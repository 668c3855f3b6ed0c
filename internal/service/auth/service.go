// Package auth resolves sign-in and registration attempts into user identities.
//
// Two mechanisms share one account per email: OAuth (Google) and credentials
// (email + password). An OAuth-only account gains a password through
// registration with the same email; that is the link path.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/auth"
	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/metrics"
)

const maxUsernameLen = 50

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFields(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// oauthVerifier defines the OAuth verification interface needed by auth service.
type oauthVerifier interface {
	VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}

// sessionManager issues and validates session tokens.
type sessionManager interface {
	GenerateSessionToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateSessionToken(token string) (uuid.UUID, error)
}

// Service implements identity resolution, linking and session issuance.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tx       txManager
	hasher   passwordHasher
	oauth    oauthVerifier
	sessions sessionManager
}

// NewService creates a new auth service instance. oauth may be nil when no
// provider is configured; Google sign-in then fails with ErrUnauthorized.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	hasher passwordHasher,
	oauth oauthVerifier,
	sessions sessionManager,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		tx:       tx,
		hasher:   hasher,
		oauth:    oauth,
		sessions: sessions,
	}
}

// issueSession signs a session token for the resolved identity.
func (s *Service) issueSession(identity *domain.Identity) (*SessionResult, error) {
	token, expiresAt, err := s.sessions.GenerateSessionToken(identity.ID, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	return &SessionResult{Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

// availableUsername returns base when no other record uses it, otherwise base
// with a short random suffix.
func (s *Service) availableUsername(ctx context.Context, base string) (string, error) {
	base = truncateUsername(base, maxUsernameLen)

	_, err := s.users.GetByUsername(ctx, base)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return base, nil
	case err != nil:
		return "", fmt.Errorf("check username: %w", err)
	}

	suffix, err := randomSuffix()
	if err != nil {
		return "", err
	}
	return truncateUsername(base, maxUsernameLen-len(suffix)-1) + "-" + suffix, nil
}

// usernameTakenByOther reports whether username belongs to a record other than selfID.
func (s *Service) usernameTakenByOther(ctx context.Context, username string, selfID uuid.UUID) (bool, error) {
	other, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return other.ID != selfID, nil
}

// defaultUsername prefers the display name and falls back to the email local part.
func defaultUsername(name *string, email string) string {
	if name != nil {
		if n := domain.NormalizeText(*name); n != "" {
			return n
		}
	}
	return domain.EmailLocalPart(email)
}

func truncateUsername(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:max]))
}

func randomSuffix() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate username suffix: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// nonEmpty returns s when it points at a non-blank string.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// outcomeOf classifies err for the sign-in metrics.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrWrongAuthMethod):
		return metrics.OutcomeWrongMethod
	case errors.Is(err, domain.ErrInvalidCredentials):
		return metrics.OutcomeInvalidPass
	case errors.Is(err, domain.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return metrics.OutcomeUnauthorized
	default:
		return metrics.OutcomeError
	}
}
