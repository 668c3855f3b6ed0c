package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/service/property"
	"github.com/ricmershon/dwellio-sub005/internal/transport/dataloader"
)

type propertyService interface {
	Create(ctx context.Context, input property.CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	ListByOwner(ctx context.Context) ([]domain.Property, error)
	Search(ctx context.Context, input property.SearchInput) (*property.SearchResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleBookmark(ctx context.Context, propertyID uuid.UUID) (*property.BookmarkResult, error)
	IsBookmarked(ctx context.Context, propertyID uuid.UUID) (bool, error)
	ListBookmarks(ctx context.Context) ([]domain.Property, error)
}

// PropertyHandler serves listings and bookmarks.
type PropertyHandler struct {
	svc propertyService
	log *slog.Logger
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(svc propertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{svc: svc, log: logger.With("handler", "property")}
}

type locationBody struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

type ratesBody struct {
	Nightly *int `json:"nightly,omitempty"`
	Weekly  *int `json:"weekly,omitempty"`
	Monthly *int `json:"monthly,omitempty"`
}

type sellerInfoBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type createPropertyRequest struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Location    locationBody   `json:"location"`
	Beds        int            `json:"beds"`
	Baths       int            `json:"baths"`
	SquareFeet  int            `json:"square_feet"`
	Amenities   []string       `json:"amenities"`
	Rates       ratesBody      `json:"rates"`
	SellerInfo  sellerInfoBody `json:"seller_info"`
	Images      []string       `json:"images"`
}

type ownerResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Image    *string `json:"image,omitempty"`
}

type propertyResponse struct {
	ID          string         `json:"id"`
	Owner       *ownerResponse `json:"owner"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Location    locationBody   `json:"location"`
	Beds        int            `json:"beds"`
	Baths       int            `json:"baths"`
	SquareFeet  int            `json:"square_feet"`
	Amenities   []string       `json:"amenities"`
	Rates       ratesBody      `json:"rates"`
	SellerInfo  sellerInfoBody `json:"seller_info"`
	Images      []string       `json:"images"`
	IsFeatured  bool           `json:"is_featured"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type searchResponse struct {
	Items      []propertyResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

type bookmarkResponse struct {
	Bookmarked bool   `json:"bookmarked"`
	Message    string `json:"message,omitempty"`
}

// Search handles GET /properties?location=&type=&featured=&page=&pageSize=&viewport=.
func (h *PropertyHandler) Search(w http.ResponseWriter, r *http.Request) {
	input, ok := parseSearchQuery(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Search(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := h.withOwners(r.Context(), res.Items)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Items:      items,
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
	})
}

// Create handles POST /properties.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Create(r.Context(), property.CreatePropertyInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Location: property.LocationInput{
			Street:  req.Location.Street,
			City:    req.Location.City,
			State:   req.Location.State,
			Zipcode: req.Location.Zipcode,
		},
		Beds:       req.Beds,
		Baths:      req.Baths,
		SquareFeet: req.SquareFeet,
		Amenities:  req.Amenities,
		Rates: property.RatesInput{
			Nightly: req.Rates.Nightly,
			Weekly:  req.Rates.Weekly,
			Monthly: req.Rates.Monthly,
		},
		SellerInfo: property.SellerInfoInput{
			Name:  req.SellerInfo.Name,
			Email: req.SellerInfo.Email,
			Phone: req.SellerInfo.Phone,
		},
		Images: req.Images,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusCreated, p)
}

// Get handles GET /properties/{id}.
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, p)
}

// Delete handles DELETE /properties/{id}.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// ListMine handles GET /users/me/properties.
func (h *PropertyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.svc.ListByOwner)
}

// ListBookmarks handles GET /users/me/bookmarks.
func (h *PropertyHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.svc.ListBookmarks)
}

// ToggleBookmark handles POST /properties/{id}/bookmark.
func (h *PropertyHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ToggleBookmark(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookmarkResponse{Bookmarked: res.Bookmarked, Message: res.Message})
}

// BookmarkStatus handles GET /properties/{id}/bookmark.
func (h *PropertyHandler) BookmarkStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	bookmarked, err := h.svc.IsBookmarked(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookmarkResponse{Bookmarked: bookmarked})
}

func (h *PropertyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(h.log, w, r, err)
}

func (h *PropertyHandler) writeOne(w http.ResponseWriter, r *http.Request, status int, p *domain.Property) {
	items, err := h.withOwners(r.Context(), []domain.Property{*p})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, status, items[0])
}

func (h *PropertyHandler) writeList(w http.ResponseWriter, r *http.Request, list func(context.Context) ([]domain.Property, error)) {
	props, err := list(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	items, err := h.withOwners(r.Context(), props)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// withOwners converts props and attaches owner summaries, loading all owners
// of the response in one batch.
func (h *PropertyHandler) withOwners(ctx context.Context, props []domain.Property) ([]propertyResponse, error) {
	ids := make([]uuid.UUID, len(props))
	for i := range props {
		ids[i] = props[i].OwnerID
	}

	owners, err := dataloader.LoadMany(ctx, dataloader.FromContext(ctx).UserByID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]propertyResponse, len(props))
	for i := range props {
		out[i] = toPropertyResponse(&props[i], owners[props[i].OwnerID])
	}
	return out, nil
}

func toPropertyResponse(p *domain.Property, owner *domain.User) propertyResponse {
	resp := propertyResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Type:        p.Type.String(),
		Description: p.Description,
		Location: locationBody{
			Street:  p.Location.Street,
			City:    p.Location.City,
			State:   p.Location.State,
			Zipcode: p.Location.Zipcode,
		},
		Beds:       p.Beds,
		Baths:      p.Baths,
		SquareFeet: p.SquareFeet,
		Amenities:  nonNil(p.Amenities),
		Rates: ratesBody{
			Nightly: p.Rates.Nightly,
			Weekly:  p.Rates.Weekly,
			Monthly: p.Rates.Monthly,
		},
		SellerInfo: sellerInfoBody{
			Name:  p.SellerInfo.Name,
			Email: p.SellerInfo.Email,
			Phone: p.SellerInfo.Phone,
		},
		Images:     nonNil(p.Images),
		IsFeatured: p.IsFeatured,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if owner != nil {
		resp.Owner = &ownerResponse{ID: owner.ID.String(), Username: owner.Username, Image: owner.Image}
	}
	return resp
}

func parseSearchQuery(w http.ResponseWriter, r *http.Request) (property.SearchInput, bool) {
	q := r.URL.Query()
	input := property.SearchInput{
		Location: q.Get("location"),
		Type:     q.Get("type"),
	}

	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid featured flag")
			return input, false
		}
		input.Featured = &featured
	}

	for name, dst := range map[string]*int{
		"page":     &input.Page,
		"pageSize": &input.PageSize,
		"viewport": &input.ViewportWidth,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid "+name)
			return input, false
		}
		*dst = n
	}
	return input, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
