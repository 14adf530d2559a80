// Package config loads the runtime configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"school_backend/internal/platform/db"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env      string
	HTTPPort string

	DB db.Config

	RedisHost     string
	RedisPort     string
	RedisPassword string

	SummaryCacheTTL time.Duration
	LoginRateLimit  int
	LoginRateWindow time.Duration

	CORSAllowOrigins []string
	ShutdownTimeout  time.Duration

	// SeedAdminEmail and SeedAdminPassword are only read by cmd/migrate.
	SeedAdminEmail    string
	SeedAdminPassword string
}

// Load returns application config populated from environment variables with sensible defaults.
func Load() App {
	return App{
		Env:      getEnv("APP_ENV", "dev"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		DB: db.Config{
			Driver:         getEnv("DB_DRIVER", db.DriverPostgres),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "school"),
			Password:       os.Getenv("DB_PASSWORD"),
			Name:           getEnv("DB_NAME", "school"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			SQLitePath:     getEnv("SQLITE_PATH", "school.db"),
			ConnectTimeout: durationEnv("DB_CONNECT_TIMEOUT", 60*time.Second),
			RunMigrations:  boolEnv("RUN_MIGRATIONS", false),
		},
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		SummaryCacheTTL:   durationEnv("SUMMARY_CACHE_TTL", 30*time.Second),
		LoginRateLimit:    intEnv("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow:   durationEnv("LOGIN_RATE_WINDOW", time.Minute),
		CORSAllowOrigins:  listEnv("CORS_ALLOW_ORIGINS", []string{"*"}),
		ShutdownTimeout:   durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		SeedAdminEmail:    os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
}

// RedisEnabled reports whether a Redis host is configured.
func (a App) RedisEnabled() bool {
	return a.RedisHost != ""
}

// RedisAddr returns host:port of the Redis server.
func (a App) RedisAddr() string {
	return a.RedisHost + ":" + a.RedisPort
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			log.Printf("invalid bool for %s, using fallback %v", key, fallback)
			return fallback
		}
		return b
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			log.Printf("invalid int for %s, using fallback %d", key, fallback)
			return fallback
		}
		return n
	}
	return fallback
}

// listEnv splits a comma separated value, dropping empty items.
func listEnv(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
