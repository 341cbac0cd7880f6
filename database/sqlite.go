package database

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bhoirtrip-alt/plutocollrctions/config"
)

// ErrSourceMissing reports that the legacy SQLite file does not exist. For a
// migration this is a valid terminal state, not a failure: there is nothing
// to migrate.
var ErrSourceMissing = errors.New("sqlite database not found")

// OpenSource opens the legacy SQLite store read-only.
func OpenSource(cfg config.Config) (*sql.DB, error) {
	if !cfg.SourceExists() {
		return nil, ErrSourceMissing
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", cfg.SQLitePath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return db, nil
}
