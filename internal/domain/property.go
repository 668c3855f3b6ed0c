package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType is the kind of rental being listed.
type PropertyType string

const (
	PropertyApartment      PropertyType = "Apartment"
	PropertyCondo          PropertyType = "Condo"
	PropertyHouse          PropertyType = "House"
	PropertyCabinOrCottage PropertyType = "Cabin Or Cottage"
	PropertyRoom           PropertyType = "Room"
	PropertyStudio         PropertyType = "Studio"
	PropertyOther          PropertyType = "Other"
)

// PropertyTypeAll is the search value that disables type filtering.
const PropertyTypeAll = "All"

func (t PropertyType) String() string { return string(t) }

// IsValid returns true if the type is a known value.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyApartment, PropertyCondo, PropertyHouse, PropertyCabinOrCottage,
		PropertyRoom, PropertyStudio, PropertyOther:
		return true
	}
	return false
}

// MaxPropertyImages is the number of images a listing may carry.
const MaxPropertyImages = 4

// Location is the street address of a property.
type Location struct {
	Street  string
	City    string
	State   string
	Zipcode string
}

// Rates holds optional prices per stay length, in whole currency units.
type Rates struct {
	Nightly *int
	Weekly  *int
	Monthly *int
}

// HasAny reports whether at least one rate is set.
func (r Rates) HasAny() bool {
	return r.Nightly != nil || r.Weekly != nil || r.Monthly != nil
}

// SellerInfo is the contact shown on a listing.
type SellerInfo struct {
	Name  string
	Email string
	Phone string
}

// Property is a rental listing owned by a user.
type Property struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Type        PropertyType
	Description string
	Location    Location
	Beds        int
	Baths       int
	SquareFeet  int
	Amenities   []string
	Rates       Rates
	SellerInfo  SellerInfo
	Images      []string
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyFilter selects and pages listings.
type PropertyFilter struct {
	// Location matches case-insensitively against name, description and
	// every address field. Empty means no text filter.
	Location string
	// Type filters exactly; nil means any type.
	Type *PropertyType
	// Featured filters on IsFeatured when set.
	Featured *bool
	// OwnerID restricts results to one owner when set.
	OwnerID *uuid.UUID
	Limit   int
	Offset  int
}

// PropertyPage is one page of listings plus the total match count.
type PropertyPage struct {
	Items []Property
	Total int
}

// Bookmark marks a property saved by a user.
type Bookmark struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time
}
