package db

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func Connect() error {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		fmt.Println("DATABASE_URL environment variable is not set")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

// Migrate creates the article and briefing tables. Safe to run on
// every startup.
func Migrate() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS article (
			date         TEXT NOT NULL,
			id           TEXT NOT NULL,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			url          TEXT NOT NULL DEFAULT '',
			source       TEXT NOT NULL,
			source_icon  TEXT NOT NULL DEFAULT '',
			category     TEXT NOT NULL DEFAULT 'general',
			image_url    TEXT NOT NULL DEFAULT '',
			author       TEXT NOT NULL DEFAULT '',
			published_at TIMESTAMPTZ NOT NULL,
			fetched_at   TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (date, id)
		);

		CREATE INDEX IF NOT EXISTS idx_article_date_published
			ON article (date, published_at DESC);

		CREATE TABLE IF NOT EXISTS briefing (
			date         TEXT PRIMARY KEY,
			title        TEXT NOT NULL,
			summary      TEXT NOT NULL,
			bullets      TEXT NOT NULL DEFAULT '[]',
			sentiment    TEXT NOT NULL,
			model_used   TEXT NOT NULL,
			generated_at TIMESTAMPTZ NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}
