package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// AddColumn adds a column to a table if it doesn't exist.
func AddColumn(db *sql.DB, tableName, columnName, columnType string) error {
	exists, err := ColumnExists(db, tableName, columnName)
	if err != nil {
		return err
	}

	if !exists {
		query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s",
			pq.QuoteIdentifier(tableName), pq.QuoteIdentifier(columnName), columnType)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to add column %s.%s: %w", tableName, columnName, err)
		}
	}

	return nil
}

// AlterColumnType changes a column to the given type. When the column is
// already at the target type the ALTER is skipped and changed is false, so
// re-runs are explicit no-ops instead of swallowed SQL errors.
func AlterColumnType(db *sql.DB, tableName, columnName, columnType string) (changed bool, err error) {
	columns, err := Columns(db, tableName)
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", tableName, err)
	}

	var current *ColumnInfo
	for i := range columns {
		if columns[i].Name == columnName {
			current = &columns[i]
			break
		}
	}
	if current == nil {
		return false, fmt.Errorf("column %s.%s does not exist", tableName, columnName)
	}

	if typeMatches(*current, columnType) {
		return false, nil
	}

	query := fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s",
		pq.QuoteIdentifier(tableName), pq.QuoteIdentifier(columnName), columnType)
	if _, err := db.Exec(query); err != nil {
		return false, fmt.Errorf("failed to alter %s.%s: %w", tableName, columnName, err)
	}

	return true, nil
}

// typeMatches reports whether a column already has the requested type. Only
// VARCHAR(n) targets are recognized; anything else makes the ALTER run.
func typeMatches(col ColumnInfo, columnType string) bool {
	var length int
	if _, err := fmt.Sscanf(strings.ToUpper(columnType), "VARCHAR(%d)", &length); err != nil {
		return false
	}
	return col.DataType == "character varying" &&
		col.MaxLength.Valid && col.MaxLength.Int64 == int64(length)
}
