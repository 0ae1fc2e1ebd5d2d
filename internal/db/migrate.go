package db

import (
	"database/sql"
	"time"
)

// Migrate creates the users and exercises tables if they do not exist.
// The unique constraint on username is what enforces the uniqueness
// invariant; creation never relies on a lookup-then-insert.
func Migrate(retries int, db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS exercises (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			description TEXT NOT NULL,
			duration INT NOT NULL,
			entry_date TEXT NOT NULL
		);`,
	}

	for _, query := range queries {
		_, err := db.Exec(query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
