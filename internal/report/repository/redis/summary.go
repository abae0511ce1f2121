package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"image-insights-srv/internal/report/repository"
)

const summaryKeyFormat = "report:summary:%s"

// SetSummary caches the aggregated summary of a generated report.
func (c *implCache) SetSummary(ctx context.Context, reportID string, data []byte, ttl time.Duration) error {
	key := fmt.Sprintf(summaryKeyFormat, reportID)

	if err := c.client.Set(ctx, key, data, ttl); err != nil {
		c.l.Errorf(ctx, "report.repository.redis.SetSummary: set failed: %v", err)
		return err
	}

	return nil
}

// GetSummary returns the cached summary, or ErrCacheMiss after expiry.
func (c *implCache) GetSummary(ctx context.Context, reportID string) ([]byte, error) {
	key := fmt.Sprintf(summaryKeyFormat, reportID)

	val, err := c.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		c.l.Errorf(ctx, "report.repository.redis.GetSummary: get failed: %v", err)
		return nil, err
	}

	return []byte(val), nil
}
