package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// UserHandler serves the signed-in user's profile.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type profileResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Image       *string   `json:"image,omitempty"`
	HasPassword bool      `json:"hasPassword"`
	CreatedAt   time.Time `json:"createdAt"`
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Image    *string `json:"image"`
}

// Profile handles GET /users/me.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(u))
}

// UpdateProfile handles PATCH /users/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Username: req.Username,
		Image:    req.Image,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(u))
}

func (h *UserHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(h.log, w, r, err)
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Username:    u.Username,
		Image:       u.Image,
		HasPassword: u.HasPassword(),
		CreatedAt:   u.CreatedAt,
	}
}
