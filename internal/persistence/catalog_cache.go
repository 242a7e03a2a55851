package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ErrCacheMiss signals the listing is not cached.
var ErrCacheMiss = errors.New("catalog cache miss")

// CatalogCache keeps per-store product listings in Redis. Entries are
// invalidated on every product mutation, so a store's public listing
// serves from cache between writes.
type CatalogCache struct {
	redis *Redis
	ttl   time.Duration
}

// NewCatalogCache builds a cache with the given entry TTL.
func NewCatalogCache(r *Redis, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CatalogCache{redis: r, ttl: ttl}
}

func catalogKey(storeID string) string {
	return "catalog:store:" + storeID
}

// GetProducts returns the cached listing for a store, or ErrCacheMiss.
func (c *CatalogCache) GetProducts(ctx context.Context, storeID string) ([]*domain.Product, error) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, ErrCacheMiss
	}

	raw, err := c.redis.Client.Get(ctx, catalogKey(storeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var products []*domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, ErrCacheMiss
	}
	return products, nil
}

// SetProducts stores the listing for a store.
func (c *CatalogCache) SetProducts(ctx context.Context, storeID string, products []*domain.Product) error {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.redis.Client.Set(ctx, catalogKey(storeID), raw, c.ttl).Err()
}

// Invalidate drops the cached listing for a store.
func (c *CatalogCache) Invalidate(ctx context.Context, storeID string) error {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil
	}
	return c.redis.Client.Del(ctx, catalogKey(storeID)).Err()
}
