package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"school_backend/internal/app/di"
	"school_backend/internal/app/router"
	"school_backend/internal/platform/config"
	"school_backend/internal/platform/db"
	"school_backend/internal/platform/metrics"
	infraredis "school_backend/internal/platform/redis"
	"school_backend/internal/shared/ratelimiter"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Println("[ERROR] Failed to close database:", err)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if !cfg.RedisEnabled() {
		log.Println("[INFO] REDIS_HOST not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(ctx, cfg.RedisAddr(), cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	c := di.NewContainer(cfg, gdb, rdb)

	// ルータ生成
	r := router.NewRouter(c.Handlers, router.Options{
		DB:               sqlDB,
		Metrics:          metrics.NewHTTP(),
		LoginLimiter:     ratelimiter.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow),
		Invalidator:      c.SummaryCache,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s (env=%s, db=%s)", srv.Addr, cfg.Env, cfg.DB.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("[ERROR] graceful shutdown failed:", err)
	}
}
