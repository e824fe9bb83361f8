package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Upstream market data
	MarketDataURL     string
	MarketDataTimeout time.Duration
	TrackedSymbols    []string
}

// defaultTrackedSymbols is the fixed set of CSE instruments the system follows.
var defaultTrackedSymbols = []string{
	"JKH", "COMB", "HNB", "SAMP", "DIAL", "LOLC",
	"CTC", "EXPO", "HAYL", "LIOC", "CARG", "SLTL",
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "stockfolio"),
		DBPassword: getEnv("DB_PASSWORD", "stockfolio"),
		DBName:     getEnv("DB_NAME", "stockfolio"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Upstream market data (single bulk endpoint, empty POST body)
		MarketDataURL: getEnv("MARKET_DATA_URL", "https://www.cse.lk/api/tradeSummary"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	// The upstream timeout bounds the single outbound call; there is no retry.
	toStr := getEnv("MARKET_DATA_TIMEOUT", "30s")
	toDur, err := time.ParseDuration(toStr)
	if err != nil {
		log.Printf("Warning: invalid MARKET_DATA_TIMEOUT value '%s', falling back to 30s\n", toStr)
		toDur = 30 * time.Second
	}
	config.MarketDataTimeout = toDur

	config.TrackedSymbols = parseSymbols(getEnv("TRACKED_SYMBOLS", ""))

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// parseSymbols parses a comma-separated symbol list, falling back to the
// default tracked set when the variable is unset or empty.
func parseSymbols(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultTrackedSymbols
	}
	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		return defaultTrackedSymbols
	}
	return symbols
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
