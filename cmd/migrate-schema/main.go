// Schema migration for the VelocityThreads database: resizes the order table
// columns that have proven too small in production.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bhoirtrip-alt/plutocollrctions/config"
	"github.com/bhoirtrip-alt/plutocollrctions/database"
	"github.com/bhoirtrip-alt/plutocollrctions/schema"
)

func main() {
	cfg := config.Load()

	fmt.Println("Database Schema Migration for VelocityThreads")
	fmt.Println(strings.Repeat("=", 50))

	db, err := database.OpenDestination(cfg)
	if err != nil {
		fmt.Printf("❌ Error during migration: %v\n", err)
		fmt.Println("\n❌ Migration failed! Please check your database connection.")
		os.Exit(1)
	}
	defer db.Close()

	if err := schema.MigrateOrderFields(db); err != nil {
		fmt.Printf("❌ Error during migration: %v\n", err)
		fmt.Println("\n❌ Migration failed! Please check your database connection.")
		os.Exit(1)
	}

	fmt.Println("\nVerifying migration...")
	if err := schema.VerifyOrderFields(db); err != nil {
		fmt.Printf("❌ Error during verification: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n🎉 Migration completed! You can now run your application.")
}
