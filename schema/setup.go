package schema

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// EnsureDatabase creates the named database if it doesn't exist. The
// connection must point at the maintenance database, since PostgreSQL cannot
// create a database from inside itself.
func EnsureDatabase(admin *sql.DB, name string) (created bool, err error) {
	var exists bool
	err = admin.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM pg_catalog.pg_database WHERE datname = $1)", name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for database %s: %w", name, err)
	}

	if exists {
		return false, nil
	}

	// CREATE DATABASE does not take bind parameters.
	if _, err := admin.Exec("CREATE DATABASE " + pq.QuoteIdentifier(name)); err != nil {
		return false, fmt.Errorf("failed to create database %s: %w", name, err)
	}

	return true, nil
}
