// Package db opens the relational store and provides the query scopes shared by
// every repository.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// DriverPostgres selects PostgreSQL.
	DriverPostgres = "postgres"
	// DriverSQLite selects a local SQLite file, used for development.
	DriverSQLite = "sqlite"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Config holds the connection settings for the relational store.
type Config struct {
	Driver   string
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string

	// SQLitePath is the database file when Driver is DriverSQLite.
	SQLitePath string

	// ConnectTimeout bounds how long Open keeps retrying.
	ConnectTimeout time.Duration

	// RunMigrations makes Open migrate the schema after connecting.
	RunMigrations bool
}

// Opener opens a gorm connection for a DSN. It exists so tests can replace the driver.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the driver-specific DSN for cfg.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.SQLitePath
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslmode)
}

// gormConfig is shared by every connection. TranslateError lets repositories
// detect unique violations with gorm.ErrDuplicatedKey on both drivers.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func openerFor(driver string) (Opener, error) {
	switch driver {
	case "", DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormConfig())
		}, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gormConfig())
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// Open connects to the store described by cfg and migrates the schema when
// cfg.RunMigrations is set.
func Open(cfg Config) (*gorm.DB, error) {
	open, err := openerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, open)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}

// OpenInMemory opens a private in-memory SQLite database with the schema
// migrated. Tests use it in place of a live server.
func OpenInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig())
	if err != nil {
		return nil, err
	}
	// Every pooled connection would otherwise get its own empty database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
