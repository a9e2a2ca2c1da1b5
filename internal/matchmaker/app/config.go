package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/service"
)

const (
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
)

type Config struct {
	Issuer              string        // Optional: expected token issuer (default: bartab-auth)
	Audience            []string      // Optional: comma separated audiences, empty disables the check
	JWKSURL             string        // Optional: JWKS endpoint of the identity provider
	JWKSFile            string        // Optional: JWKS document on disk, used when JWKSURL is empty
	JWKSRefreshInterval time.Duration // Optional: how often verification keys are reloaded (default: 15m)

	StoreDriver         string // Optional: sqlite or dynamodb (default: sqlite)
	DatabaseFile        string // Optional: path to SQLite database file (default: ./matchmaker.db)
	AWSRegion           string // Optional: region for DynamoDB (default: ap-southeast-2)
	DynamoDBEndpoint    string // Optional: endpoint override, e.g. dynamodb-local
	DynamoDBTablePrefix string // Optional: prefix for table names (default: cofound_)

	MatchFallbackWindow int      // Optional: records scanned when a participant index fails (default: 500, max: 10000)
	CORSAllowedOrigins  []string // Optional: comma separated origins (default: *)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "bartab-auth"),
		Audience:            getEnvListOrDefault("AUTH_AUDIENCE", nil),
		JWKSURL:             os.Getenv("AUTH_JWKS_URL"),
		JWKSFile:            os.Getenv("AUTH_JWKS_FILE"),
		JWKSRefreshInterval: getEnvDurationOrDefault("AUTH_JWKS_REFRESH_INTERVAL", 15*time.Minute),

		StoreDriver:         strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverSQLite)),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "matchmaker.db"),
		AWSRegion:           getEnvOrDefault("AWS_REGION", "ap-southeast-2"),
		DynamoDBEndpoint:    os.Getenv("DYNAMODB_ENDPOINT"),
		DynamoDBTablePrefix: getEnvOrDefault("DYNAMODB_TABLE_PREFIX", "cofound_"),

		MatchFallbackWindow: fallbackWindow(getEnvIntOrDefault("MATCH_FALLBACK_WINDOW", service.DefaultFallbackWindow)),
		CORSAllowedOrigins:  getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// fallbackWindow maps non-positive values to the default and caps the rest.
func fallbackWindow(n int) int {
	if n <= 0 {
		return service.DefaultFallbackWindow
	}
	return min(n, service.MaxFallbackWindow)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping blanks.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
