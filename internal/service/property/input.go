package property

import (
	"strings"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 5000
	maxFieldLen       = 200
	maxAmenities      = 50
	maxImageURLLen    = 2048
	maxRoomCount      = 100
)

// LocationInput is the address part of a new listing.
type LocationInput struct {
	Street  string
	City    string
	State   string
	Zipcode string
}

// RatesInput holds the optional prices of a new listing.
type RatesInput struct {
	Nightly *int
	Weekly  *int
	Monthly *int
}

// SellerInfoInput is the contact shown on a new listing.
type SellerInfoInput struct {
	Name  string
	Email string
	Phone string
}

// CreatePropertyInput holds the parameters for listing a property.
type CreatePropertyInput struct {
	Name        string
	Type        string
	Description string
	Location    LocationInput
	Beds        int
	Baths       int
	SquareFeet  int
	Amenities   []string
	Rates       RatesInput
	SellerInfo  SellerInfoInput
	Images      []string
}

// normalize trims every text field and drops blank amenities and images.
func (i *CreatePropertyInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Type = strings.TrimSpace(i.Type)
	i.Description = strings.TrimSpace(i.Description)
	i.Location.Street = strings.TrimSpace(i.Location.Street)
	i.Location.City = strings.TrimSpace(i.Location.City)
	i.Location.State = strings.TrimSpace(i.Location.State)
	i.Location.Zipcode = strings.TrimSpace(i.Location.Zipcode)
	i.SellerInfo.Name = strings.TrimSpace(i.SellerInfo.Name)
	i.SellerInfo.Email = domain.NormalizeEmail(i.SellerInfo.Email)
	i.SellerInfo.Phone = strings.TrimSpace(i.SellerInfo.Phone)
	i.Amenities = compact(i.Amenities)
	i.Images = compact(i.Images)
}

// Validate checks all fields and collects all errors. Nested fields are
// reported with dotted paths so clients can map them onto form sections.
func (i *CreatePropertyInput) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	switch {
	case i.Name == "":
		add("name", "Name is required")
	case len(i.Name) > maxNameLen:
		add("name", "Name is too long")
	}

	if i.Type == "" {
		add("type", "Type is required")
	} else if !domain.PropertyType(i.Type).IsValid() {
		add("type", "Invalid property type")
	}

	if len(i.Description) > maxDescriptionLen {
		add("description", "Description is too long")
	}

	required := []struct {
		field, value, msg string
	}{
		{"location.street", i.Location.Street, "Street is required"},
		{"location.city", i.Location.City, "City is required"},
		{"location.state", i.Location.State, "State is required"},
		{"location.zipcode", i.Location.Zipcode, "Zipcode is required"},
		{"seller_info.name", i.SellerInfo.Name, "Seller name is required"},
		{"seller_info.email", i.SellerInfo.Email, "Seller email is required"},
	}
	for _, r := range required {
		switch {
		case r.value == "":
			add(r.field, r.msg)
		case len(r.value) > maxFieldLen:
			add(r.field, "Too long")
		}
	}
	if i.SellerInfo.Email != "" && !domain.IsValidEmail(i.SellerInfo.Email) {
		add("seller_info.email", "Please enter a valid email address")
	}
	if len(i.SellerInfo.Phone) > maxFieldLen {
		add("seller_info.phone", "Too long")
	}

	checkCount := func(field string, v int, label string) {
		if v < 0 || v > maxRoomCount {
			add(field, label+" must be between 0 and 100")
		}
	}
	checkCount("beds", i.Beds, "Beds")
	checkCount("baths", i.Baths, "Baths")
	if i.SquareFeet <= 0 {
		add("square_feet", "Square feet must be a positive number")
	}

	rates := []struct {
		field string
		value *int
	}{
		{"rates.nightly", i.Rates.Nightly},
		{"rates.weekly", i.Rates.Weekly},
		{"rates.monthly", i.Rates.Monthly},
	}
	anyRate := false
	for _, r := range rates {
		if r.value == nil {
			continue
		}
		anyRate = true
		if *r.value <= 0 {
			add(r.field, "Must be a positive number")
		}
	}
	if !anyRate {
		add("rates", "At least one rate is required")
	}

	if len(i.Amenities) > maxAmenities {
		add("amenities", "Too many amenities")
	}

	switch {
	case len(i.Images) == 0:
		add("images", "At least one image is required")
	case len(i.Images) > domain.MaxPropertyImages:
		add("images", "You can select up to 4 images")
	}
	for _, img := range i.Images {
		if len(img) > maxImageURLLen {
			add("images", "Image URL is too long")
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SearchInput holds the raw search parameters of a listings request.
type SearchInput struct {
	Location string
	Type     string
	Featured *bool
	// Page is 1-based; values below 1 mean the first page.
	Page int
	// PageSize wins over ViewportWidth when positive.
	PageSize      int
	ViewportWidth int
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
