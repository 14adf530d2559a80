// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"school_backend/internal/feature/summary/domain/entity"
	"school_backend/internal/feature/summary/usecase"
)

// DefaultSummaryTTL is used when no positive TTL is configured.
const DefaultSummaryTTL = 30 * time.Second

// CachingCountRepository decorates a CountRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingCountRepository struct {
	inner     usecase.CountRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CountRepository = (*CachingCountRepository)(nil)

// NewCachingCountRepository decorates a CountRepository with Redis caching.
// If ttl is 0, it defaults to DefaultSummaryTTL. If namespace is empty, it uses "summary".
func NewCachingCountRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CountRepository, namespace string) *CachingCountRepository {
	if ttl <= 0 {
		ttl = DefaultSummaryTTL
	}
	if namespace == "" {
		namespace = "summary"
	}
	return &CachingCountRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// CountActive returns the counts, checking cache first then falling back to the database.
func (c *CachingCountRepository) CountActive(ctx context.Context) (*entity.Counts, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.CountActive(ctx)
	}

	key := c.cacheKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Counts
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops the cached counts. Errors are ignored; the entry expires on its own.
func (c *CachingCountRepository) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey()).Err()
}

// cacheKey generates the cache key of the counts.
func (c *CachingCountRepository) cacheKey() string {
	return c.namespace + ":counts"
}
