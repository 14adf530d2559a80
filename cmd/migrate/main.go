package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"school_backend/internal/app/di"
	"school_backend/internal/platform/config"
	"school_backend/internal/platform/db"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	if err := run(config.Load()); err != nil {
		log.Fatal(err)
	}
}

// run migrates the schema and seeds the admin when configured. The
// connection is closed before it returns.
func run(cfg config.App) error {
	cfg.DB.RunMigrations = true

	gdb, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Println("[ERROR] Failed to close database:", err)
		}
	}()
	log.Println("migrate ok")

	if cfg.SeedAdminEmail == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, err := di.SeedAdmin(ctx, gdb, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if created {
		log.Println("admin seeded:", cfg.SeedAdminEmail)
	} else {
		log.Println("admin already present:", cfg.SeedAdminEmail)
	}
	return nil
}
