package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrMissingURL is returned when no DATABASE_URL was configured.
var ErrMissingURL = errors.New("DATABASE_URL is not set")

// Open connects to Postgres through the pgx stdlib driver and verifies the
// connection.
func Open(url string) (*sql.DB, error) {
	if url == "" {
		return nil, ErrMissingURL
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS catalog_item (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		parent_id INT REFERENCES catalog_item(id) ON DELETE SET NULL,
		image_src TEXT,
		image_alt TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS product (
		id SERIAL PRIMARY KEY,
		category_id INT NOT NULL DEFAULT 1,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL DEFAULT 0,
		count INT NOT NULL DEFAULT 0,
		date TIMESTAMPTZ NOT NULL DEFAULT now(),
		rating NUMERIC(2,1) NOT NULL DEFAULT 0,
		free_delivery BOOLEAN NOT NULL DEFAULT FALSE,
		sold INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS product_image (
		id SERIAL PRIMARY KEY,
		product_id INT NOT NULL REFERENCES product(id) ON DELETE CASCADE,
		src TEXT NOT NULL,
		alt TEXT NOT NULL DEFAULT 'image'
	)`,
	`CREATE TABLE IF NOT EXISTS tag (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_tag (
		product_id INT NOT NULL REFERENCES product(id) ON DELETE CASCADE,
		tag_id INT NOT NULL REFERENCES tag(id) ON DELETE CASCADE,
		PRIMARY KEY (product_id, tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS product_specification (
		id SERIAL PRIMARY KEY,
		product_id INT NOT NULL REFERENCES product(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		value TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS review (
		id SERIAL PRIMARY KEY,
		product_id INT NOT NULL REFERENCES product(id) ON DELETE CASCADE,
		author TEXT,
		email TEXT,
		text TEXT,
		rate SMALLINT NOT NULL DEFAULT 0,
		date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS promoted_category (
		category_id INT PRIMARY KEY,
		ord INT NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema creates the catalog tables when missing and seeds the promoted
// category list when it is empty.
func EnsureSchema(db *sql.DB, promoted []int) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM promoted_category`).Scan(&count); err != nil {
		return fmt.Errorf("count promoted categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeded := 0
	for i, id := range promoted {
		if _, err := db.Exec(`INSERT INTO promoted_category (category_id, ord) VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, i); err != nil {
			log.Warnf("seed promoted category %d: %v", id, err)
			continue
		}
		seeded++
	}
	log.Infof("seeded %d promoted categories", seeded)
	return nil
}
