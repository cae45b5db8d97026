package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUser         string
	DBHost         string
	DBName         string
	DBPassword     string
	DBPort         int
	Port           int      // HTTP listen port
	FrontendURL    string   // Frontend origin, always allowed for CORS
	AllowedOrigins []string // CORS origin allow-list (includes FrontendURL)
	UploadDir      string   // Directory for uploaded profile images
	RedisURL       string   // Optional; empty disables the cache
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		DBUser:      getEnv("DB_USER", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBName:      getEnv("DB_NAME", "auth_db"),
		DBPassword:  getEnv("DB_PASSWORD", "admin123"),
		DBPort:      getEnvInt("DB_PORT", 5432),
		Port:        getEnvInt("PORT", 3628),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		UploadDir:   getEnv("UPLOAD_DIR", "Uploads"),
		RedisURL:    getEnv("REDIS_URL", ""),
	}

	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	if cfg.FrontendURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, cfg.FrontendURL)
	}

	return cfg
}

// DatabaseURL assembles the Postgres connection string. Connection
// acquisition is bounded at 10 seconds via connect_timeout.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable&connect_timeout=10",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
