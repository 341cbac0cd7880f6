package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/bhoirtrip-alt/plutocollrctions/config"
)

// OpenDestination opens the PostgreSQL database the application runs on.
func OpenDestination(cfg config.Config) (*sql.DB, error) {
	return open(cfg.ConnectionString())
}

// OpenAdmin connects to the maintenance database with the same credentials.
// Used to create the application database before it exists.
func OpenAdmin(cfg config.Config) (*sql.DB, error) {
	return open(cfg.AdminConnectionString())
}

func open(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return db, nil
}
