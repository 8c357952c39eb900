// Applies the fleet schema to the configured database and verifies the tables.
// Run with: go run scripts/setup_db.go
package main

import (
	"context"
	"fmt"
	"log"

	"fleet-service/internal/config"
	"fleet-service/internal/repository/postgres"

	"github.com/joho/godotenv"
)

const tableExistsQuery = `SELECT EXISTS (
	SELECT FROM information_schema.tables
	WHERE table_schema = 'public'
	AND table_name = $1
)`

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	fmt.Println("Applying schema...")
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	missing := 0
	for _, table := range postgres.Tables() {
		var exists bool
		if err := db.Pool.QueryRow(ctx, tableExistsQuery, table).Scan(&exists); err != nil {
			log.Fatalf("Failed to check table %s: %v", table, err)
		}
		status := "ok"
		if !exists {
			status = "MISSING"
			missing++
		}
		fmt.Printf("  %-10s %s\n", table, status)
	}

	if missing > 0 {
		log.Fatalf("%d table(s) missing", missing)
	}
	fmt.Println("Database ready")
}
