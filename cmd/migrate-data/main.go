// Data migration for VelocityThreads: copies existing rows from the legacy
// SQLite database into PostgreSQL. Optional, and safe to re-run.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bhoirtrip-alt/plutocollrctions/config"
	"github.com/bhoirtrip-alt/plutocollrctions/migrate"
)

func main() {
	cfg := config.Load()

	fmt.Println("VelocityThreads Data Migration Tool")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("Starting data migration...")

	failed := 0
	runner := migrate.NewRunner(cfg)
	runner.OnResult = func(res migrate.Result) {
		switch {
		case res.Failed():
			fmt.Printf("❌ Error migrating %s: %v\n", res.Entity, res.Err)
			failed++
		case res.Skipped:
			fmt.Printf("No %s to migrate\n", res.Entity)
		default:
			fmt.Printf("Migrated %d %s\n", res.Rows, res.Entity)
		}
	}

	_, err := runner.Run()

	switch runner.State() {
	case migrate.StateSourceMissing:
		fmt.Println("SQLite database not found. No data to migrate.")
		fmt.Println("Starting fresh with PostgreSQL.")
		return
	case migrate.StateDestinationUnreachable:
		fmt.Printf("❌ Cannot connect to PostgreSQL: %v\n", err)
		fmt.Println("Please check your configuration.")
		os.Exit(1)
	case migrate.StateNotStarted:
		fmt.Printf("❌ Cannot read SQLite database: %v\n", err)
		os.Exit(1)
	}

	if failed > 0 {
		fmt.Printf("\n⚠️  Migration finished with %d entities failed.\n", failed)
	} else {
		fmt.Println("\n✅ Data migration completed successfully!")
	}

	fmt.Println("\nNote: Product images and payment screenshots are not migrated.")
	fmt.Println("You may need to re-upload these files manually.")

	if failed > 0 {
		os.Exit(1)
	}
}
