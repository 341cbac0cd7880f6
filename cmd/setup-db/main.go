// Database setup for the VelocityThreads PostgreSQL migration: creates the
// application database if it is missing and verifies a connection to it.
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

	fmt.Println("Setting up PostgreSQL database for VelocityThreads...")
	fmt.Println(strings.Repeat("=", 50))

	if err := createDatabase(cfg); err != nil {
		fmt.Printf("Error creating database: %v\n", err)
		fmt.Println("Please check your PostgreSQL connection details in the .env file")
		fmt.Println("\n❌ Database creation failed!")
		os.Exit(1)
	}

	fmt.Println("\nTesting connection...")
	if err := testConnection(cfg); err != nil {
		fmt.Printf("Error testing connection: %v\n", err)
		fmt.Println("\n❌ Database connection test failed!")
		os.Exit(1)
	}

	fmt.Println("\n✅ Database setup completed successfully!")
	fmt.Println("\nNext steps:")
	fmt.Println("1. Update your .env file with correct database credentials")
	fmt.Println("2. Start the application to create tables")
}

func createDatabase(cfg config.Config) error {
	admin, err := database.OpenAdmin(cfg)
	if err != nil {
		return err
	}
	defer admin.Close()

	created, err := schema.EnsureDatabase(admin, cfg.DBName)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Database '%s' created successfully!\n", cfg.DBName)
	} else {
		fmt.Printf("Database '%s' already exists!\n", cfg.DBName)
	}
	return nil
}

func testConnection(cfg config.Config) error {
	db, err := database.OpenDestination(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var version string
	if err := db.QueryRow("SELECT version()").Scan(&version); err != nil {
		return err
	}

	fmt.Printf("Successfully connected to PostgreSQL: %s\n", version)
	return nil
}
