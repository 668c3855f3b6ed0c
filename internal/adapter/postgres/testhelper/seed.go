package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an OAuth-only user (no password hash) with a unique email and username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, nil)
}

// SeedCredentialsUser creates a user carrying the given password hash.
func SeedCredentialsUser(t *testing.T, pool *pgxpool.Pool, passwordHash string) domain.User {
	t.Helper()
	return seedUser(t, pool, &passwordHash)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, passwordHash *string) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, password_hash, image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.Image, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProperty creates a House in Boston owned by ownerID. Optional mutators
// adjust the property before insertion.
func SeedProperty(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, mutate ...func(*domain.Property)) domain.Property {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	nightly := 150
	p := domain.Property{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Seed Property " + suffix,
		Type:        domain.PropertyHouse,
		Description: "A test property " + suffix,
		Location: domain.Location{
			Street:  "1 Main St",
			City:    "Boston",
			State:   "MA",
			Zipcode: "02101",
		},
		Beds:       2,
		Baths:      1,
		SquareFeet: 900,
		Amenities:  []string{"Wifi"},
		Rates:      domain.Rates{Nightly: &nightly},
		SellerInfo: domain.SellerInfo{Name: "Seller", Email: "seller-" + suffix + "@example.com"},
		Images:     []string{"https://img.example.com/" + suffix + ".jpg"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, m := range mutate {
		m(&p)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO properties (id, owner_id, name, type, description, street, city, state, zipcode,
		    beds, baths, square_feet, amenities, rate_nightly, rate_weekly, rate_monthly,
		    seller_name, seller_email, seller_phone, images, is_featured, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		p.ID, p.OwnerID, p.Name, string(p.Type), p.Description,
		p.Location.Street, p.Location.City, p.Location.State, p.Location.Zipcode,
		p.Beds, p.Baths, p.SquareFeet, p.Amenities,
		p.Rates.Nightly, p.Rates.Weekly, p.Rates.Monthly,
		p.SellerInfo.Name, p.SellerInfo.Email, p.SellerInfo.Phone,
		p.Images, p.IsFeatured, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProperty insert: %v", err)
	}

	return p
}

// SeedMessage creates an unread message from senderID about the property,
// addressed to the property owner.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, senderID uuid.UUID, property domain.Property) domain.Message {
	t.Helper()

	suffix := uniqueSuffix()
	m := domain.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: property.OwnerID,
		PropertyID:  property.ID,
		Name:        "Sender " + suffix,
		Email:       "sender-" + suffix + "@example.com",
		Body:        "Is it available? " + suffix,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO messages (id, sender_id, recipient_id, property_id, name, email, phone, body, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.SenderID, m.RecipientID, m.PropertyID, m.Name, m.Email, m.Phone, m.Body, m.Read, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert: %v", err)
	}

	return m
}
