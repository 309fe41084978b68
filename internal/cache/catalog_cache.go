package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/morerealm/vrlens-api/internal/models"
)

// listingKey holds the cached public product listing. A single key suffices:
// the public endpoint has no filters or pagination.
const listingKey = "catalog:listing:public"

// listingTTL bounds staleness from writes that bypass the API (e.g. seeding).
const listingTTL = 60 * time.Second

// CatalogCache is a read-through cache for the public product listing.
// Cache failures are logged and treated as misses; the store stays the
// source of truth.
type CatalogCache struct {
	redis *RedisClient
}

// NewCatalogCache creates a new CatalogCache.
func NewCatalogCache(redis *RedisClient) *CatalogCache {
	return &CatalogCache{redis: redis}
}

// GetListing returns the cached public listing and whether it was present.
func (c *CatalogCache) GetListing(ctx context.Context) ([]models.Product, bool) {
	raw, err := c.redis.Get(ctx, listingKey)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Warn().Err(err).Msg("catalog cache entry corrupt, dropping")
		_ = c.redis.Delete(ctx, listingKey)
		return nil, false
	}
	return products, true
}

// SetListing stores the public listing.
func (c *CatalogCache) SetListing(ctx context.Context, products []models.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		log.Warn().Err(err).Msg("catalog cache marshal failed")
		return
	}
	if err := c.redis.Set(ctx, listingKey, string(raw), listingTTL); err != nil {
		log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops the cached listing. Called after every product creation.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.redis.Delete(ctx, listingKey); err != nil {
		log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
