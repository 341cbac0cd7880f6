// Connection test for PostgreSQL. Run this to verify the database connection
// before starting the main application.
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

	fmt.Println("Testing PostgreSQL Connection...")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Host: %s\n", cfg.DBHost)
	fmt.Printf("Port: %s\n", cfg.DBPort)
	fmt.Printf("Database: %s\n", cfg.DBName)
	fmt.Printf("User: %s\n", cfg.DBUser)
	if cfg.DBPassword != "" {
		fmt.Printf("Password: %s\n", strings.Repeat("*", len(cfg.DBPassword)))
	} else {
		fmt.Println("Password: Not set")
	}
	fmt.Println()

	db, err := database.OpenDestination(cfg)
	if err != nil {
		fmt.Printf("❌ Connection failed: %v\n", err)
		fmt.Println("\n🔧 Troubleshooting tips:")
		fmt.Println("1. Check if PostgreSQL is running")
		fmt.Println("2. Verify your credentials in the .env file")
		fmt.Println("3. Ensure the database exists (run setup-db)")
		fmt.Println("4. Check if PostgreSQL accepts connections from your IP")
		fmt.Println("\n💥 Connection test failed. Please fix the issues above.")
		os.Exit(1)
	}
	defer db.Close()

	var version string
	if err := db.QueryRow("SELECT version()").Scan(&version); err != nil {
		fmt.Printf("❌ Unexpected error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Connection successful!")
	fmt.Printf("PostgreSQL Version: %s\n", version)

	tables, err := schema.TableNames(db)
	if err != nil {
		fmt.Printf("❌ Unexpected error listing tables: %v\n", err)
		os.Exit(1)
	}
	if len(tables) > 0 {
		fmt.Printf("\n📋 Existing tables: %s\n", strings.Join(tables, ", "))
	} else {
		fmt.Println("\n📋 No tables found (this is normal for a new database)")
	}

	fmt.Println("\n🎉 Your PostgreSQL connection is working!")
	fmt.Println("You can now start the application.")
}
