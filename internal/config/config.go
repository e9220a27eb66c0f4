package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// StorageMode selects the persistence backend, decided once at startup
type StorageMode string

const (
	// StorageRemote uses the MySQL document store via GORM
	StorageRemote StorageMode = "remote"
	// StorageLocal uses an embedded bbolt file
	StorageLocal StorageMode = "local"
)

// Config holds all configuration for the application
type Config struct {
	AppMode     string
	Port        string
	StorageMode StorageMode
	Database    DatabaseConfig
	Local       LocalStoreConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	AdminEmails []string
	RedisURL    string
	Insight     InsightConfig
}

// DatabaseConfig holds MySQL configuration (remote mode)
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// LocalStoreConfig holds bbolt configuration (local mode)
type LocalStoreConfig struct {
	Path string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// InsightConfig holds settings for the promotional copy generator
type InsightConfig struct {
	APIURL string
	APIKey string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "60"))
	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASS", ""),
			DBName:   getEnv("DB_NAME", "mycloth_atelier"),
		},
		Local: LocalStoreConfig{
			Path: getEnv("LOCAL_STORE_PATH", "mycloth.db"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "default_secret"),
			AccessTokenMins: accessMins,
		},
		Cookie: CookieConfig{
			Secure:   secure,
			SameSite: getEnv("COOKIE_SAMESITE", "lax"),
			Domain:   getEnv("COOKIE_DOMAIN", ""),
		},
		AdminEmails: splitList(getEnv("ADMIN_EMAILS", "prathmeshkambleoffice@gmail.com")),
		RedisURL:    getEnv("REDIS_URL", ""),
		Insight: InsightConfig{
			APIURL: getEnv("INSIGHT_API_URL", ""),
			APIKey: getEnv("INSIGHT_API_KEY", ""),
		},
	}
	config.StorageMode = resolveStorageMode(config.Database)

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, STORAGE: %s]", appMode, config.StorageMode)
	return config, nil
}

// resolveStorageMode picks the backend once. Remote requires real MySQL
// credentials; anything else falls back to the embedded local store.
func resolveStorageMode(d DatabaseConfig) StorageMode {
	if d.Host != "" && d.User != "" {
		return StorageRemote
	}
	return StorageLocal
}

// IsAdminEmail reports whether email is on the bootstrap admin allow-list
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range c.AdminEmails {
		if email == admin {
			return true
		}
	}
	return false
}

// splitList parses a comma-separated env value into trimmed lowercase entries
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.ToLower(strings.TrimSpace(part)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://atelier.mycloth.in"
	}
	return origins
}
