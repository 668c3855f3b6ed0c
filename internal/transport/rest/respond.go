package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const (
	maxBodyBytes = 1 << 20

	msgInternal    = "Something went wrong. Please try again."
	msgBadBody     = "invalid request body"
	msgInvalidID   = "invalid id"
	msgUnauthorize = "unauthorized"
)

type errorResponse struct {
	Error  string         `json:"error"`
	Fields map[string]any `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a bounded JSON body into dst. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return false
	}
	return true
}

// decodeForm parses a bounded urlencoded or multipart body into r.PostForm.
// It reports false without writing anything when the request carries another
// content type, so callers can fall back to decodeJSON.
func decodeForm(w http.ResponseWriter, r *http.Request) (isForm, ok bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	switch mediaType {
	case "application/x-www-form-urlencoded":
		err = r.ParseForm()
	case "multipart/form-data":
		err = r.ParseMultipartForm(maxBodyBytes)
	default:
		return false, false
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return true, false
	}
	return true, true
}

// pathID parses the {id} wildcard of the matched route.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps a service error onto an HTTP status. KindError
// messages are written as-is; anything unrecognised is logged and hidden
// behind a generic message.
func writeServiceError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message(), Fields: ve.FieldMap()})
		return
	}

	var ke *domain.KindError
	if errors.As(err, &ke) {
		writeError(w, kindStatus(ke.Kind), ke.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, msgUnauthorize)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func kindStatus(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, domain.ErrInvalidCredentials), errors.Is(kind, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, domain.ErrWrongAuthMethod),
		errors.Is(kind, domain.ErrConflict),
		errors.Is(kind, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(kind, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
