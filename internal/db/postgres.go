package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema and seeds the menu.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS (caterer staff)
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CATERER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS (catalog reference data)
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			category VARCHAR(50) NOT NULL,
			position INT NOT NULL,
			name VARCHAR(255) NOT NULL,
			UNIQUE (category, name)
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	if err := seedMenuItems(ctx, db); err != nil {
		return err
	}

	// -------------------------------
	// SUBMISSIONS
	// -------------------------------
	submissionsSQL := `
		CREATE TABLE IF NOT EXISTS submissions (
			id UUID PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			email VARCHAR(255) NOT NULL,
			event_type VARCHAR(100) NOT NULL,
			event_date DATE NOT NULL,
			event_location TEXT NOT NULL,
			guest_count INT NOT NULL,
			selections JSONB NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			pdf_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			reviewed BOOLEAN NOT NULL DEFAULT FALSE,
			reviewed_at TIMESTAMPTZ NULL
		)
	`
	if _, err := db.Exec(ctx, submissionsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

// seedMenuItems loads the embedded catalog into menu_items when the
// table is empty, so PostgresSource always has data to serve.
func seedMenuItems(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for cat, items := range catalog.Default() {
		for i, name := range items {
			_, err := db.Exec(ctx, `
				INSERT INTO menu_items (category, position, name)
				VALUES ($1, $2, $3)
				ON CONFLICT (category, name) DO NOTHING
			`, string(cat), i, name)
			if err != nil {
				return err
			}
		}
	}

	log.Println("✅ Menu catalog seeded")
	return nil
}
