package schema

import (
	"database/sql"
	"fmt"
)

// orderFieldFixes are the column resizes the order table needs to hold real
// order numbers and phone numbers.
var orderFieldFixes = []struct {
	column  string
	newType string
}{
	{"order_number", "VARCHAR(30)"},
	{"phone", "VARCHAR(15)"},
}

// optionalColumns were added to the schema after the first deployments;
// databases created before then are missing them.
var optionalColumns = []struct {
	table      string
	column     string
	columnType string
}{
	{"product", "subcategory", "VARCHAR(50)"},
	{"product", "colors", "VARCHAR(200)"},
	{"product", "sizes", "VARCHAR(100)"},
	{"order", "utr_number", "VARCHAR(50)"},
	{"order", "payment_screenshot", "VARCHAR(200)"},
}

// EnsureOptionalColumns adds the columns older databases may be missing, so
// the application and the data migrator can rely on them being present.
func EnsureOptionalColumns(db *sql.DB) error {
	for _, col := range optionalColumns {
		if err := AddColumn(db, col.table, col.column, col.columnType); err != nil {
			return err
		}
	}
	return nil
}

// MigrateOrderFields fixes the field size issues on the order table. A fix
// that failed is reported but does not stop the remaining fixes.
func MigrateOrderFields(db *sql.DB) error {
	fmt.Println("Starting database schema migration...")

	exists, err := TableExists(db, "order")
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("order table does not exist; run the application first to create tables")
	}

	fmt.Println("Ensuring optional columns exist...")
	if err := EnsureOptionalColumns(db); err != nil {
		return err
	}

	for _, fix := range orderFieldFixes {
		changed, err := AlterColumnType(db, "order", fix.column, fix.newType)
		switch {
		case err != nil:
			fmt.Printf("⚠️  %s field update: %v\n", fix.column, err)
		case changed:
			fmt.Printf("✅ Updated %s field to %s\n", fix.column, fix.newType)
		default:
			fmt.Printf("✅ %s field is already %s, skipping\n", fix.column, fix.newType)
		}
	}

	fmt.Println("\nChecking for other potential field size issues...")
	if err := printOrderVarcharSizes(db); err != nil {
		return err
	}

	fmt.Println("\n✅ Database schema migration completed successfully!")
	return nil
}

// VerifyOrderFields re-reads the resized columns so the operator can confirm
// the migration took effect.
func VerifyOrderFields(db *sql.DB) error {
	columns, err := Columns(db, "order")
	if err != nil {
		return fmt.Errorf("failed to verify order fields: %w", err)
	}

	fmt.Println("\nVerification - Updated field sizes:")
	for _, col := range columns {
		if col.Name != "order_number" && col.Name != "phone" {
			continue
		}
		fmt.Printf("  - %s: %s(%d)\n", col.Name, col.DataType, col.MaxLength.Int64)
	}
	return nil
}

func printOrderVarcharSizes(db *sql.DB) error {
	columns, err := Columns(db, "order")
	if err != nil {
		return fmt.Errorf("failed to read order columns: %w", err)
	}

	fmt.Println("\nCurrent field sizes in 'order' table:")
	for _, col := range columns {
		if !col.MaxLength.Valid {
			continue
		}
		fmt.Printf("  - %s: %s(%d)\n", col.Name, col.DataType, col.MaxLength.Int64)
	}
	return nil
}
