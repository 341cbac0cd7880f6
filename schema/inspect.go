package schema

import (
	"database/sql"
	"fmt"
)

// ColumnInfo describes one column as reported by information_schema.
type ColumnInfo struct {
	Name      string
	DataType  string
	MaxLength sql.NullInt64
	Nullable  bool
	Default   sql.NullString
}

// TableExists checks whether a table exists in the public schema.
func TableExists(db *sql.DB, tableName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	if err := db.QueryRow(query, tableName).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for table %s: %w", tableName, err)
	}
	return exists, nil
}

// TableNames returns all tables in the public schema, sorted by name.
func TableNames(db *sql.DB) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// Columns returns column metadata for a given table in ordinal order.
func Columns(db *sql.DB, tableName string) ([]ColumnInfo, error) {
	query := `
		SELECT column_name, data_type, character_maximum_length, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_name = $1
		AND table_schema = 'public'
		ORDER BY ordinal_position
	`

	rows, err := db.Query(query, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var col ColumnInfo
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &col.MaxLength, &nullable, &col.Default); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// ColumnNames returns all column names for a given table.
func ColumnNames(db *sql.DB, tableName string) ([]string, error) {
	columns, err := Columns(db, tableName)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	return names, nil
}

// ColumnExists checks if a column exists in a table.
func ColumnExists(db *sql.DB, tableName, columnName string) (bool, error) {
	columns, err := ColumnNames(db, tableName)
	if err != nil {
		return false, err
	}

	for _, col := range columns {
		if col == columnName {
			return true, nil
		}
	}

	return false, nil
}
