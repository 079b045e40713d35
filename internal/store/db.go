package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func Open(path string) (*DB, error) {
	// Enable Foreign Keys
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &DB{db}, nil
}

func (d *DB) InitSchema() error {
	if _, err := d.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Fixed-width UTC timestamps so SQL string comparison orders them correctly.
const timeLayout = "2006-01-02T15:04:05.000000Z"

func nowISO() string {
	return time.Now().UTC().Format(timeLayout)
}

func formatISO(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
