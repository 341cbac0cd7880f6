// Package health runs the operational checks for the VelocityThreads
// database: connectivity, table structure, field sizes, and data integrity.
package health

import (
	"database/sql"
	"fmt"

	"github.com/bhoirtrip-alt/plutocollrctions/schema"
)

// A Check is one named health check. It prints its findings and returns an
// error only when the check itself could not run.
type Check struct {
	Name string
	Run  func(db *sql.DB) error
}

// Checks returns the full suite in the order it should run.
func Checks() []Check {
	return []Check{
		{"Database Connection", CheckConnection},
		{"Table Structure", CheckTableStructure},
		{"Field Size Issues", CheckFieldSizes},
		{"Data Integrity", CheckDataIntegrity},
	}
}

// RunAll executes every check and prints a summary. It reports whether all
// checks passed.
func RunAll(db *sql.DB) bool {
	type outcome struct {
		name   string
		passed bool
	}

	var results []outcome
	for _, check := range Checks() {
		fmt.Printf("\n🔍 Running %s check...\n", check.Name)
		err := check.Run(db)
		if err != nil {
			fmt.Printf("❌ %s check failed: %v\n", check.Name, err)
		}
		results = append(results, outcome{check.Name, err == nil})
	}

	fmt.Println("\n" + separator)
	fmt.Println("HEALTH CHECK SUMMARY")
	fmt.Println(separator)

	allPassed := true
	for _, res := range results {
		status := "✅ PASSED"
		if !res.passed {
			status = "❌ FAILED"
			allPassed = false
		}
		fmt.Printf("%s: %s\n", res.name, status)
	}

	if allPassed {
		fmt.Println("\n🎉 All health checks passed! Your database is healthy.")
	} else {
		fmt.Println("\n⚠️  Some health checks failed. Please review the issues above.")
	}

	return allPassed
}

const separator = "=================================================="

// CheckConnection verifies the database answers a trivial query.
func CheckConnection(db *sql.DB) error {
	var version string
	if err := db.QueryRow("SELECT version()").Scan(&version); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	fmt.Printf("✅ Database connection successful: %s\n", version)
	return nil
}

// CheckTableStructure lists every public table with its column metadata.
func CheckTableStructure(db *sql.DB) error {
	tables, err := schema.TableNames(db)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	fmt.Printf("\n📋 Found %d tables in database:\n", len(tables))
	for _, table := range tables {
		fmt.Printf("\n  Table: %s\n", table)

		columns, err := schema.Columns(db, table)
		if err != nil {
			return fmt.Errorf("failed to read columns of %s: %w", table, err)
		}

		for _, col := range columns {
			lengthInfo := ""
			if col.MaxLength.Valid {
				lengthInfo = fmt.Sprintf("(%d)", col.MaxLength.Int64)
			}
			nullableInfo := "NOT NULL"
			if col.Nullable {
				nullableInfo = "NULL"
			}
			defaultInfo := ""
			if col.Default.Valid {
				defaultInfo = " DEFAULT " + col.Default.String
			}
			fmt.Printf("    - %s: %s%s %s%s\n", col.Name, col.DataType, lengthInfo, nullableInfo, defaultInfo)
		}
	}

	return nil
}

// fieldSizeLimits are the advisory minimum sizes for order fields that have
// overflowed in the past.
var fieldSizeLimits = []struct {
	column  string
	minimum int64
}{
	{"order_number", 30},
	{"phone", 15},
}

// CheckFieldSizes warns about varchar columns that may be too small for the
// data the application writes, and shows the lengths already stored.
func CheckFieldSizes(db *sql.DB) error {
	fmt.Println("\n🔍 Checking for potential field size issues...")

	columns, err := schema.Columns(db, "order")
	if err != nil {
		return fmt.Errorf("failed to read order columns: %w", err)
	}

	byName := make(map[string]schema.ColumnInfo, len(columns))
	for _, col := range columns {
		byName[col.Name] = col
	}

	for _, limit := range fieldSizeLimits {
		col, ok := byName[limit.column]
		if !ok {
			continue
		}
		if col.MaxLength.Valid && col.MaxLength.Int64 < limit.minimum {
			fmt.Printf("⚠️  %s field size (%d) may be too small\n", col.Name, col.MaxLength.Int64)
		} else {
			fmt.Printf("✅ %s field size (%d) is adequate\n", col.Name, col.MaxLength.Int64)
		}
	}

	fmt.Println("\n📊 Checking for data that might exceed field limits...")

	lengths, err := OrderNumberLengths(db)
	if err != nil {
		return fmt.Errorf("failed to read order number lengths: %w", err)
	}
	if len(lengths) > 0 {
		fmt.Println("  Order number lengths in database:")
		for _, l := range lengths {
			fmt.Printf("    - %d characters: %d orders\n", l.Length, l.Count)
		}
	}

	return nil
}

// CheckDataIntegrity counts rows per table and looks for orphaned child
// records. Orphans are reported as warnings; the check only fails if the
// queries themselves cannot run.
func CheckDataIntegrity(db *sql.DB) error {
	fmt.Println("\n🔍 Checking data integrity...")

	tables := []string{"user", "product", "order", "order_item", "product_image"}
	for _, table := range tables {
		count, err := CountRows(db, table)
		if err != nil {
			fmt.Printf("  - %s: Error - %v\n", table, err)
			continue
		}
		fmt.Printf("  - %s: %d records\n", table, count)
	}

	fmt.Println("\n🔍 Checking for orphaned records...")

	orphanedItems, err := OrphanedOrderItems(db)
	if err != nil {
		return fmt.Errorf("failed to check for orphaned order items: %w", err)
	}
	if orphanedItems > 0 {
		fmt.Printf("⚠️  Found %d orphaned order items\n", orphanedItems)
	} else {
		fmt.Println("✅ No orphaned order items found")
	}

	orphanedImages, err := OrphanedProductImages(db)
	if err != nil {
		return fmt.Errorf("failed to check for orphaned product images: %w", err)
	}
	if orphanedImages > 0 {
		fmt.Printf("⚠️  Found %d orphaned product images\n", orphanedImages)
	} else {
		fmt.Println("✅ No orphaned product images found")
	}

	return nil
}
