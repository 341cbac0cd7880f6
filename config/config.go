package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// PlaceholderPassword is the value shipped in the .env template. Tools that
// need real credentials refuse to run while it is still in place.
const PlaceholderPassword = "your_password_here"

// Config holds every connection parameter the tools need. It is built once
// in main and handed to the connection openers, so tests can inject their
// own values instead of reading the environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	SSLMode    string

	// SQLitePath points at the legacy file-backed store data is migrated
	// from. The file being absent means there is nothing to migrate.
	SQLitePath string
}

// Load reads a .env file if one is present, then environment variables,
// then the documented defaults.
func Load() Config {
	// A missing .env file is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	return Config{
		DBHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
		DBName:     getEnvOrDefault("DB_NAME", "velocity_threads"),
		DBUser:     getEnvOrDefault("DB_USER", "postgres"),
		DBPassword: getEnvOrDefault("DB_PASSWORD", PlaceholderPassword),
		SSLMode:    getEnvOrDefault("DB_SSL_MODE", "disable"),
		SQLitePath: getEnvOrDefault("SQLITE_PATH", filepath.Join("instance", "ecommerce.db")),
	}
}

// ConnectionString builds a PostgreSQL connection string for the application
// database. If DATABASE_URL is set (cloud deployments), it wins over the
// composed values.
func (cfg Config) ConnectionString() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return cfg.connectionStringFor(cfg.DBName)
}

// AdminConnectionString targets the maintenance database with the same
// credentials, so the application database can be created before it exists.
func (cfg Config) AdminConnectionString() string {
	return cfg.connectionStringFor("postgres")
}

func (cfg Config) connectionStringFor(dbName string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, dbName, cfg.SSLMode,
	)
}

// HasPlaceholderPassword reports whether DB_PASSWORD was never changed from
// the template value.
func (cfg Config) HasPlaceholderPassword() bool {
	return cfg.DBPassword == PlaceholderPassword
}

// SourceExists reports whether the legacy SQLite file is present.
func (cfg Config) SourceExists() bool {
	_, err := os.Stat(cfg.SQLitePath)
	return !os.IsNotExist(err)
}

// MaskPassword masks the password in a connection string for logging.
func MaskPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		return connStr
	}
	return u.Redacted()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
