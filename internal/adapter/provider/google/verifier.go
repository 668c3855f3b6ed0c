// Package google exchanges Google OAuth authorization codes for a verified profile.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/ricmershon/dwellio-sub005/internal/auth"
	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const defaultUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	errInvalidCode      = &domain.KindError{Kind: domain.ErrUnauthorized, Message: "oauth: invalid or expired code"}
	errEmailNotVerified = &domain.KindError{Kind: domain.ErrUnauthorized, Message: "oauth: email not verified"}
	errBadUserinfo      = &domain.KindError{Kind: domain.ErrUnauthorized, Message: "oauth: invalid userinfo response"}
	errUnavailable      = errors.New("oauth: google unavailable")
	errUserinfoFailed   = errors.New("oauth: failed to fetch user info")
)

// Config holds the OAuth client credentials. TokenURL and UserinfoURL default
// to Google's production endpoints.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	TokenURL     string
	UserinfoURL  string
}

// Verifier exchanges Google OAuth authorization codes for user identity.
type Verifier struct {
	oauth       *oauth2.Config
	userinfoURL string
	httpClient  *http.Client
	retryDelay  time.Duration
	log         *slog.Logger
}

// NewVerifier creates a Google OAuth verifier.
func NewVerifier(cfg Config, logger *slog.Logger) *Verifier {
	endpoint := googleoauth.Endpoint
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	userinfoURL := cfg.UserinfoURL
	if userinfoURL == "" {
		userinfoURL = defaultUserinfoURL
	}

	return &Verifier{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "profile", "email"},
		},
		userinfoURL: userinfoURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		retryDelay:  500 * time.Millisecond,
		log:         logger.With("adapter", "google_oauth"),
	}
}

type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyCode exchanges an authorization code and returns the verified profile.
// Invalid codes and unverified emails wrap domain.ErrUnauthorized.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	token, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	userinfo, err := v.fetchUserinfo(ctx, token)
	if err != nil {
		return nil, err
	}

	if !userinfo.VerifiedEmail {
		return nil, errEmailNotVerified
	}

	identity := &auth.OAuthIdentity{
		Provider:   domain.SignInGoogle,
		ProviderID: userinfo.ID,
		Email:      userinfo.Email,
	}
	if userinfo.Name != "" {
		identity.Name = &userinfo.Name
	}
	if userinfo.Picture != "" {
		identity.AvatarURL = &userinfo.Picture
	}

	v.log.DebugContext(ctx, "google oauth success", slog.String("provider_id", userinfo.ID))

	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	clientCtx := context.WithValue(ctx, oauth2.HTTPClient, v.httpClient)

	var token *oauth2.Token
	err := v.withRetry(ctx, func() (bool, error) {
		var exErr error
		token, exErr = v.oauth.Exchange(clientCtx, code)
		if exErr == nil {
			return false, nil
		}
		var re *oauth2.RetrieveError
		if errors.As(exErr, &re) && re.Response != nil && re.Response.StatusCode < 500 {
			return false, exErr
		}
		return true, exErr
	})
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil && re.Response.StatusCode == http.StatusBadRequest {
			v.log.WarnContext(ctx, "google oauth token exchange rejected", slog.String("error", re.ErrorCode))
			return nil, errInvalidCode
		}
		v.log.ErrorContext(ctx, "google oauth token exchange failed", slog.String("error", err.Error()))
		return nil, errUnavailable
	}

	return token, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*userinfoResponse, error) {
	clientCtx := context.WithValue(ctx, oauth2.HTTPClient, v.httpClient)
	client := v.oauth.Client(clientCtx, token)

	var userinfo userinfoResponse
	err := v.withRetry(ctx, func() (bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userinfoURL, nil)
		if err != nil {
			return false, fmt.Errorf("create userinfo request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return true, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return true, fmt.Errorf("userinfo status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return false, fmt.Errorf("userinfo status %d", resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(&userinfo); err != nil {
			return false, errBadUserinfo
		}
		return false, nil
	})
	if err != nil {
		if errors.Is(err, errBadUserinfo) {
			return nil, errBadUserinfo
		}
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.String("error", err.Error()))
		return nil, errUserinfoFailed
	}

	if userinfo.ID == "" || userinfo.Email == "" {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.String("error", "missing required fields"))
		return nil, errBadUserinfo
	}

	return &userinfo, nil
}

// withRetry runs fn and retries once after retryDelay when fn reports the
// failure as retryable (network errors and 5xx responses).
func (v *Verifier) withRetry(ctx context.Context, fn func() (retryable bool, err error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	retryable, err := fn()
	if err == nil || !retryable {
		return err
	}

	select {
	case <-time.After(v.retryDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	_, err = fn()
	return err
}
