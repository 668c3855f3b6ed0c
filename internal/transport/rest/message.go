package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/service/message"
	"github.com/ricmershon/dwellio-sub005/internal/transport/dataloader"
)

type messageService interface {
	Send(ctx context.Context, input message.SendMessageInput) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	UnreadCount(ctx context.Context) (int, error)
	ToggleRead(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageHandler serves enquiries between renters and owners.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type sendMessageRequest struct {
	PropertyID string `json:"property"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Body       string `json:"body"`
}

type messagePropertyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type messageResponse struct {
	ID        string                   `json:"id"`
	SenderID  string                   `json:"sender"`
	Property  *messagePropertyResponse `json:"property"`
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	Phone     string                   `json:"phone,omitempty"`
	Body      string                   `json:"body"`
	Read      bool                     `json:"read"`
	CreatedAt time.Time                `json:"created_at"`
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

// Send handles POST /messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// An unparsable id is left as uuid.Nil so validation reports it with
	// the other field errors.
	propertyID, _ := uuid.Parse(req.PropertyID)

	m, err := h.svc.Send(r.Context(), message.SendMessageInput{
		PropertyID: propertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Body:       req.Body,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusCreated, m)
}

// List handles GET /messages.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := withProperties(r.Context(), msgs)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// UnreadCount handles GET /messages/unread-count.
func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, unreadCountResponse{Count: n})
}

// ToggleRead handles PATCH /messages/{id}/read.
func (h *MessageHandler) ToggleRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.ToggleRead(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, m)
}

// Delete handles DELETE /messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MessageHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(h.log, w, r, err)
}

func (h *MessageHandler) writeOne(w http.ResponseWriter, r *http.Request, status int, m *domain.Message) {
	items, err := withProperties(r.Context(), []domain.Message{*m})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, status, items[0])
}

// withProperties converts msgs and attaches the name of each listing. A
// listing deleted since the message was sent leaves Property nil.
func withProperties(ctx context.Context, msgs []domain.Message) ([]messageResponse, error) {
	ids := make([]uuid.UUID, len(msgs))
	for i := range msgs {
		ids[i] = msgs[i].PropertyID
	}

	props, err := dataloader.LoadMany(ctx, dataloader.FromContext(ctx).PropertyByID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]messageResponse, len(msgs))
	for i := range msgs {
		m := &msgs[i]
		out[i] = messageResponse{
			ID:        m.ID.String(),
			SenderID:  m.SenderID.String(),
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Body:      m.Body,
			Read:      m.Read,
			CreatedAt: m.CreatedAt,
		}
		if p := props[m.PropertyID]; p != nil {
			out[i].Property = &messagePropertyResponse{ID: p.ID.String(), Name: p.Name}
		}
	}
	return out, nil
}
