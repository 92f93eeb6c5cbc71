// Package cache implements adapter caches on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

const trendKeyPrefix = "trends"

// trendCache implements the adapter.TrendCache interface.
type trendCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrendCache creates a new Redis backed trend cache.
func NewTrendCache(client *redis.Client, ttl time.Duration) adapter.TrendCache {
	return &trendCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached trend rows of the owner for month.
func (c *trendCache) Get(ctx context.Context, ownerID uuid.UUID, month string) ([]entity.MonthlyTrendRow, bool, error) {
	payload, err := c.client.Get(ctx, trendKey(ownerID, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read trend cache: %w", err)
	}

	var rows []entity.MonthlyTrendRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached trend: %w", err)
	}
	if rows == nil {
		rows = []entity.MonthlyTrendRow{}
	}
	return rows, true, nil
}

// Set stores the trend rows with the configured TTL.
func (c *trendCache) Set(ctx context.Context, ownerID uuid.UUID, month string, rows []entity.MonthlyTrendRow) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode trend: %w", err)
	}
	if err := c.client.Set(ctx, trendKey(ownerID, month), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write trend cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached trend of the owner.
func (c *trendCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	pattern := fmt.Sprintf("%s:%s:*", trendKeyPrefix, ownerID)

	var keys []string
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan trend cache: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate trend cache: %w", err)
	}
	return nil
}

func trendKey(ownerID uuid.UUID, month string) string {
	return fmt.Sprintf("%s:%s:%s", trendKeyPrefix, ownerID, month)
}
