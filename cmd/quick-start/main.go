// Quick start for the VelocityThreads PostgreSQL setup: prepares the .env
// file, creates the database, verifies the connection, and launches the web
// application.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bhoirtrip-alt/plutocollrctions/config"
	"github.com/bhoirtrip-alt/plutocollrctions/database"
	"github.com/bhoirtrip-alt/plutocollrctions/schema"
)

const envTemplate = `# Database Configuration
DB_HOST=localhost
DB_PORT=5432
DB_NAME=velocity_threads
DB_USER=postgres
DB_PASSWORD=your_password_here
`

func main() {
	appCmd := flag.String("app", "./velocitythreads", "command that starts the web application")
	flag.Parse()

	fmt.Println("🚀 VelocityThreads PostgreSQL Quick Start")
	fmt.Println(strings.Repeat("=", 50))

	if !ensureEnvFile() {
		fmt.Println("\n📝 Please edit the .env file with your PostgreSQL credentials and run this again.")
		return
	}

	cfg := config.Load()
	if cfg.HasPlaceholderPassword() {
		fmt.Println("⚠️  Please update your PostgreSQL password in the .env file!")
		fmt.Println("\n📝 Please edit the .env file with your PostgreSQL credentials and run this again.")
		return
	}
	fmt.Println("✅ .env file found")

	fmt.Println("\n🗄️  Setting up PostgreSQL database...")
	if err := setupDatabase(cfg); err != nil {
		fmt.Printf("❌ Database setup failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Database setup completed!")

	fmt.Println("\n🔌 Testing database connection...")
	if err := testConnection(cfg); err != nil {
		fmt.Printf("❌ Database connection test failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Database connection test passed!")

	startApplication(*appCmd)
}

// ensureEnvFile reports whether a usable .env file is in place, writing the
// template when none exists.
func ensureEnvFile() bool {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		fmt.Println("❌ .env file not found!")
		fmt.Println("Creating .env file with default values...")

		if err := os.WriteFile(".env", []byte(envTemplate), 0644); err != nil {
			fmt.Printf("❌ Failed to create .env file: %v\n", err)
			return false
		}

		fmt.Println("✅ .env file created!")
		fmt.Println("⚠️  Please edit .env file with your actual PostgreSQL password!")
		return false
	}
	return true
}

func setupDatabase(cfg config.Config) error {
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
	return db.Ping()
}

func startApplication(command string) {
	fmt.Println("\n🚀 Starting VelocityThreads application...")
	fmt.Println("The application will be available at: http://localhost:5000")
	fmt.Println("\nPress Ctrl+C to stop the application")

	parts := strings.Fields(command)
	if len(parts) == 0 {
		fmt.Println("❌ No application command given")
		os.Exit(1)
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Error starting application: %v\n", err)
		os.Exit(1)
	}
}
