package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"

	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/retry"
)

// NewConnection opens a pooled connection to the database. Idle
// connections are recycled after 30 seconds; acquisition is bounded by
// the connect_timeout in the connection string.
func NewConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(30 * time.Second)

	return db, nil
}

// ConnectWithRetry pings the database under the given retry policy and
// runs migrations once a connection is established. Each failed attempt
// is logged before the next backoff sleep. The HTTP listener must not
// start until this returns nil.
func ConnectWithRetry(ctx context.Context, db *sql.DB, policy retry.Policy) error {
	err := retry.Do(ctx, policy, func(ctx context.Context) error {
		return db.PingContext(ctx)
	}, func(err error) {
		log.Printf("Retry failed: %v", err)
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("PostgreSQL connected successfully")

	if err := RunMigrations(db); err != nil {
		return err
	}

	return nil
}

// RunMigrations runs database migrations using goose. Safe to run
// against an already-initialized store.
func RunMigrations(db *sql.DB) error {
	migrationsDir := "migrations"

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database initialized successfully")
	return nil
}
