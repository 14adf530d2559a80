// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	summaryadapters "school_backend/internal/feature/summary/adapters"
	"school_backend/internal/platform/cache"
)

// NewSummaryRepository creates the count repository behind GET /summary.
// If Redis is available, counts are cached there for ttl.
// Otherwise the decorator passes every call through to the database.
func NewSummaryRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) *cache.CachingCountRepository {
	return cache.NewCachingCountRepository(rdb, ttl, summaryadapters.NewCountRepository(db), "summary")
}
