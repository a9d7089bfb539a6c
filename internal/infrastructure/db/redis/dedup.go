package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides notification idempotency checks backed by Redis.
// Key format: notify:<key>, where key identifies one state transition.
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this transition has already been notified.
func (d *DedupChecker) IsDuplicate(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this transition has been notified (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, d.key(key), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(key string) string {
	return "notify:" + key
}
