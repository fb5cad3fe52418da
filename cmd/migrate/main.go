// Command migrate applies all pending database migrations.
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

	"github.com/forumhq/discuss-backend/internal/adapter/postgres"
	"github.com/forumhq/discuss-backend/migrations"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := postgres.Migrate(ctx, dsn, migrations.FS); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	fmt.Println("Migrations applied.")
}
