package selection

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	optionKeyPrefix = "sel:opts:" // Cached distinct values: sel:opts:{attr}:{filter hash}
	optionTTL       = 15 * time.Minute
)

// OptionCache is a read-through Redis cache in front of a Store. Only the
// distinct-value queries are cached; match queries always hit the store.
// Back-office edits surface after the TTL or a Flush.
type OptionCache struct {
	store  Store
	client *redis.Client
}

func NewOptionCache(store Store, client *redis.Client) *OptionCache {
	return &OptionCache{store: store, client: client}
}

func (c *OptionCache) DistinctValues(ctx context.Context, attr string, filters Filters) ([]any, error) {
	key := c.optionKey(attr, filters)

	data, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var cached []any
		if jsonErr := json.Unmarshal([]byte(data), &cached); jsonErr == nil {
			return cached, nil
		}
		// Unreadable entry: fall through and overwrite it.
	} else if err != redis.Nil {
		// Redis being down must not break the wizard.
		return c.store.DistinctValues(ctx, attr, filters)
	}

	values, err := c.store.DistinctValues(ctx, attr, filters)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(values); err == nil {
		c.client.Set(ctx, key, payload, optionTTL)
	}
	return values, nil
}

func (c *OptionCache) Match(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error) {
	return c.store.Match(ctx, filters, limit)
}

func (c *OptionCache) MatchExact(ctx context.Context, filters Filters, limit int) ([]SystemRecord, error) {
	return c.store.MatchExact(ctx, filters, limit)
}

// Flush drops every cached option set.
func (c *OptionCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, optionKeyPrefix+"*", 0).Iterator()
	pipe := c.client.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan option keys: %w", err)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flush option cache: %w", err)
	}
	return nil
}

func (c *OptionCache) optionKey(attr string, filters Filters) string {
	// json.Marshal sorts map keys, so equal filter sets hash equally.
	payload, _ := json.Marshal(filters)
	sum := sha256.Sum256(payload)
	return optionKeyPrefix + attr + ":" + hex.EncodeToString(sum[:8])
}
