package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      string
	Env       string
	APIPrefix string
}

// MedusaConfig holds the connection settings for the commerce platform
type MedusaConfig struct {
	BackendURL     string
	PublishableKey string
	RequestTimeout time.Duration
}

// CORSConfig holds allowed origins for browser clients
type CORSConfig struct {
	Origins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// RateLimitConfig holds the storefront rate limiter settings.
// An empty RedisAddr disables rate limiting entirely.
type RateLimitConfig struct {
	RedisAddr   string
	MaxRequests int
	Period      time.Duration
}

// SetupConfig holds credentials for the one-shot store setup tool.
// AdminToken wins when set; otherwise the tool logs in with email/password.
type SetupConfig struct {
	AdminToken        string
	AdminEmail        string
	AdminPassword     string
	DefaultStockLevel int
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Server      ServerConfig
	Medusa      MedusaConfig
	CORS        CORSConfig
	Log         LogConfig
	Metrics     MetricsConfig
	RateLimit   RateLimitConfig
	Setup       SetupConfig
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not returning error as .env file is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	config := &Config{
		ServiceName: serviceName,
		Server: ServerConfig{
			Port:      getEnv("PORT", "3001"),
			Env:       getEnv("APP_ENV", "development"),
			APIPrefix: getEnv("API_PREFIX", "api"),
		},
		Medusa: MedusaConfig{
			BackendURL:     getEnv("MEDUSA_BACKEND_URL", "http://localhost:9000"),
			PublishableKey: getEnv("MEDUSA_PUBLISHABLE_KEY", ""),
			RequestTimeout: getEnvAsDuration("MEDUSA_REQUEST_TIMEOUT_SEC", 30*time.Second),
		},
		CORS: CORSConfig{
			Origins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "storefront_bff"),
		},
		RateLimit: RateLimitConfig{
			RedisAddr:   getEnv("REDIS_ADDR", ""),
			MaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
			Period:      getEnvAsDuration("RATE_LIMIT_PERIOD_SEC", time.Minute),
		},
		Setup: SetupConfig{
			AdminToken:        getEnv("MEDUSA_ADMIN_TOKEN", ""),
			AdminEmail:        getEnv("MEDUSA_ADMIN_EMAIL", ""),
			AdminPassword:     getEnv("MEDUSA_ADMIN_PASSWORD", ""),
			DefaultStockLevel: getEnvAsInt("SETUP_DEFAULT_STOCK_LEVEL", 100),
		},
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		fmt.Printf("Warning: invalid value for %s, using default %d\n", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves an environment variable in whole seconds as a duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		fmt.Printf("Warning: invalid value for %s, using default %s\n", key, defaultValue)
		return defaultValue
	}
	return time.Duration(value) * time.Second
}
