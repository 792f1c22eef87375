package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gracepoint/church-admin-api/internal/api/metrics"
	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

const pageCacheTTL = 5 * time.Minute

// PageCache caches published pages so public reads skip MongoDB.
// Key format: page:<slug>
type PageCache struct {
	client *redis.Client
}

// NewPageCache creates a PageCache wrapping the given Redis client.
func NewPageCache(client *redis.Client) *PageCache {
	return &PageCache{client: client}
}

// GetPage returns the cached page, or (nil, nil) on a miss.
func (c *PageCache) GetPage(ctx context.Context, slug string) (*domain.Page, error) {
	raw, err := c.client.Get(ctx, c.key(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.PageCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("page cache get: %w", err)
	}

	var page domain.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("page cache decode: %w", err)
	}
	metrics.PageCacheTotal.WithLabelValues("hit").Inc()
	return &page, nil
}

// SetPage stores the page under its slug (expires after pageCacheTTL).
func (c *PageCache) SetPage(ctx context.Context, p *domain.Page) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("page cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(p.Slug), raw, pageCacheTTL).Err()
}

// Invalidate drops the cached copy for slug.
func (c *PageCache) Invalidate(ctx context.Context, slug string) error {
	return c.client.Del(ctx, c.key(slug)).Err()
}

func (c *PageCache) key(slug string) string {
	return "page:" + slug
}
