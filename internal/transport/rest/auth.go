package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/service/auth"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.RegisterResult, error)
	LoginWithPassword(ctx context.Context, input auth.CredentialsInput) (*auth.SessionResult, error)
	LoginWithGoogle(ctx context.Context, input auth.GoogleLoginInput) (*auth.SessionResult, error)
	CurrentIdentity(ctx context.Context, userID uuid.UUID) (*domain.Identity, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type registerResponse struct {
	Message       string   `json:"message"`
	UserID        string   `json:"userId"`
	AccountLinked bool     `json:"accountLinked"`
	CanSignInWith []string `json:"canSignInWith"`
}

type passwordLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	Code string `json:"code"`
}

type sessionResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      identityResponse `json:"user"`
}

type identityResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// Register handles POST /auth/register. The body is JSON or a form payload.
// A new account answers 201, a password linked to an existing OAuth account
// answers 200.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if isForm, ok := decodeForm(w, r); isForm {
		if !ok {
			return
		}
		req = registerRequest{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
			Username: r.PostFormValue("username"),
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status := http.StatusCreated
	if result.AccountLinked {
		status = http.StatusOK
	}
	writeJSON(w, status, registerResponse{
		Message:       result.Message,
		UserID:        result.UserID.String(),
		AccountLinked: result.AccountLinked,
		CanSignInWith: result.CanSignInWith,
	})
}

// LoginWithPassword handles POST /auth/login/password.
func (h *AuthHandler) LoginWithPassword(w http.ResponseWriter, r *http.Request) {
	var req passwordLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.LoginWithPassword(r.Context(), auth.CredentialsInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(result))
}

// LoginWithGoogle handles POST /auth/login/google.
func (h *AuthHandler) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.LoginWithGoogle(r.Context(), auth.GoogleLoginInput{Code: req.Code})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(result))
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorize)
		return
	}

	identity, err := h.svc.CurrentIdentity(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIdentityResponse(identity))
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(h.log, w, r, err)
}

func toSessionResponse(result *auth.SessionResult) sessionResponse {
	return sessionResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toIdentityResponse(result.Identity),
	}
}

func toIdentityResponse(id *domain.Identity) identityResponse {
	return identityResponse{
		ID:    id.ID.String(),
		Email: id.Email,
		Name:  id.Name,
		Image: id.Image,
	}
}
