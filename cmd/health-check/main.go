// Comprehensive health check for the VelocityThreads database: connectivity,
// schema structure, field sizes, and data integrity.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bhoirtrip-alt/plutocollrctions/config"
	"github.com/bhoirtrip-alt/plutocollrctions/database"
	"github.com/bhoirtrip-alt/plutocollrctions/health"
)

func main() {
	cfg := config.Load()

	fmt.Println("Database Health Check for VelocityThreads")
	fmt.Println(strings.Repeat("=", 50))

	db, err := database.OpenDestination(cfg)
	if err != nil {
		fmt.Printf("❌ Database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if !health.RunAll(db) {
		os.Exit(1)
	}
}
