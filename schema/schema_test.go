package schema

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// openTestDB opens an in-memory SQLite database with a fake
// information_schema attached, so the introspection queries have something
// to read without a PostgreSQL server.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Error opening in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	execAll(t, db,
		`ATTACH ':memory:' AS information_schema`,
		`CREATE TABLE information_schema.tables (
			table_schema TEXT NOT NULL,
			table_name TEXT NOT NULL
		)`,
		`CREATE TABLE information_schema.columns (
			table_schema TEXT NOT NULL,
			table_name TEXT NOT NULL,
			column_name TEXT NOT NULL,
			data_type TEXT NOT NULL,
			character_maximum_length INTEGER,
			is_nullable TEXT NOT NULL DEFAULT 'YES',
			column_default TEXT,
			ordinal_position INTEGER NOT NULL
		)`,
	)
	return db
}

func execAll(t *testing.T, db *sql.DB, stmts ...string) {
	t.Helper()
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Error executing %q: %v", stmt, err)
		}
	}
}

func registerTable(t *testing.T, db *sql.DB, name string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO information_schema.tables (table_schema, table_name) VALUES ('public', ?)`, name)
	if err != nil {
		t.Fatalf("Error registering table %s: %v", name, err)
	}
}

func registerColumn(t *testing.T, db *sql.DB, table, column, dataType string, maxLength any, position int) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO information_schema.columns
			(table_schema, table_name, column_name, data_type, character_maximum_length, ordinal_position)
		VALUES ('public', ?, ?, ?, ?, ?)`,
		table, column, dataType, maxLength, position)
	if err != nil {
		t.Fatalf("Error registering column %s.%s: %v", table, column, err)
	}
}

// realColumnCount reads the actual table, not the fake information_schema.
func realColumnCount(t *testing.T, db *sql.DB, table, column string) int {
	t.Helper()
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&count)
	if err != nil {
		t.Fatalf("Error checking %s.%s: %v", table, column, err)
	}
	return count
}

func TestTableExists(t *testing.T) {
	db := openTestDB(t)
	registerTable(t, db, "order")

	exists, err := TableExists(db, "order")
	if err != nil {
		t.Fatalf("Error checking order table: %v", err)
	}
	if !exists {
		t.Error("Expected order table to exist")
	}

	exists, err = TableExists(db, "missing")
	if err != nil {
		t.Fatalf("Error checking missing table: %v", err)
	}
	if exists {
		t.Error("Expected missing table to not exist")
	}
}

func TestAddColumn(t *testing.T) {
	db := openTestDB(t)
	execAll(t, db, `CREATE TABLE product (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	registerColumn(t, db, "product", "id", "integer", nil, 1)
	registerColumn(t, db, "product", "name", "text", nil, 2)

	exists, err := ColumnExists(db, "product", "subcategory")
	if err != nil {
		t.Fatalf("Error checking subcategory column: %v", err)
	}
	if exists {
		t.Fatal("Expected subcategory column to be missing")
	}

	if err := AddColumn(db, "product", "subcategory", "VARCHAR(50)"); err != nil {
		t.Fatalf("Error adding subcategory column: %v", err)
	}
	if realColumnCount(t, db, "product", "subcategory") != 1 {
		t.Error("Expected subcategory column to be added")
	}

	// A column already present must not be added again: the ALTER would
	// fail on a duplicate column, so a nil error proves it was skipped.
	registerColumn(t, db, "product", "subcategory", "character varying", 50, 3)
	if err := AddColumn(db, "product", "subcategory", "VARCHAR(50)"); err != nil {
		t.Fatalf("Expected existing column to be skipped, got error: %v", err)
	}
}

func TestEnsureOptionalColumns(t *testing.T) {
	db := openTestDB(t)
	execAll(t, db,
		`CREATE TABLE product (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`,
		`CREATE TABLE "order" (id INTEGER PRIMARY KEY, order_number TEXT NOT NULL, phone TEXT NOT NULL)`,
	)
	registerColumn(t, db, "product", "id", "integer", nil, 1)
	registerColumn(t, db, "product", "name", "text", nil, 2)
	registerColumn(t, db, "order", "id", "integer", nil, 1)
	registerColumn(t, db, "order", "order_number", "text", nil, 2)
	registerColumn(t, db, "order", "phone", "text", nil, 3)

	if err := EnsureOptionalColumns(db); err != nil {
		t.Fatalf("Error ensuring optional columns: %v", err)
	}

	for _, col := range []struct{ table, column string }{
		{"product", "subcategory"},
		{"product", "colors"},
		{"product", "sizes"},
		{"order", "utr_number"},
		{"order", "payment_screenshot"},
	} {
		if realColumnCount(t, db, col.table, col.column) != 1 {
			t.Errorf("Expected %s.%s to be added", col.table, col.column)
		}
	}
}

func TestAlterColumnTypeAlreadyAtTarget(t *testing.T) {
	db := openTestDB(t)
	registerColumn(t, db, "order", "order_number", "character varying", 30, 1)

	// SQLite cannot ALTER COLUMN TYPE at all, so a nil error proves the
	// ALTER was never issued.
	changed, err := AlterColumnType(db, "order", "order_number", "VARCHAR(30)")
	if err != nil {
		t.Fatalf("Error altering column already at target type: %v", err)
	}
	if changed {
		t.Error("Expected no-op for column already at target type")
	}
}

func TestMigrateOrderFieldsSkipsCompletedFixes(t *testing.T) {
	db := openTestDB(t)
	execAll(t, db,
		`CREATE TABLE product (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`,
		`CREATE TABLE "order" (id INTEGER PRIMARY KEY, order_number TEXT NOT NULL, phone TEXT NOT NULL)`,
	)
	registerTable(t, db, "order")
	registerColumn(t, db, "order", "id", "integer", nil, 1)
	registerColumn(t, db, "order", "order_number", "character varying", 30, 2)
	registerColumn(t, db, "order", "phone", "character varying", 15, 3)
	registerColumn(t, db, "product", "id", "integer", nil, 1)
	registerColumn(t, db, "product", "name", "text", nil, 2)

	if err := MigrateOrderFields(db); err != nil {
		t.Fatalf("Error running schema migration: %v", err)
	}

	// The resizes were already done; the optional columns were not.
	if realColumnCount(t, db, "product", "subcategory") != 1 {
		t.Error("Expected subcategory column to be added")
	}
	if realColumnCount(t, db, "order", "utr_number") != 1 {
		t.Error("Expected utr_number column to be added")
	}
}

func TestMigrateOrderFieldsRequiresOrderTable(t *testing.T) {
	db := openTestDB(t)

	if err := MigrateOrderFields(db); err == nil {
		t.Fatal("Expected error when order table is missing")
	}
}
