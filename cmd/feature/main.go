// Command feature adds a listing to, or removes it from, the featured
// carousel on the home page.
//
// Usage:
//
//	feature --property=<uuid> [--off]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	propertyrepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/property"
	"github.com/ricmershon/dwellio-sub005/internal/domain"
)

func main() {
	rawID := flag.String("property", "", "id of the listing")
	off := flag.Bool("off", false, "remove the listing from the featured set")
	flag.Parse()

	id, err := uuid.Parse(*rawID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: feature --property=<uuid> [--off]")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	err = propertyrepo.New(pool).SetFeatured(ctx, id, !*off)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No listing found with id %s.\n", id)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update listing: %v", err)
	}

	if *off {
		fmt.Printf("Listing %s removed from featured.\n", id)
	} else {
		fmt.Printf("Listing %s featured.\n", id)
	}
}
