// Command migrate applies all pending database migrations and exits.
//
// Usage:
//
//	migrate
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ricmershon/dwellio-sub005/internal/adapter/postgres"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.MigrateDSN(ctx, dsn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	fmt.Println("Migrations applied.")
}
