package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/scoreforge/scoreforge/internal/model"
)

const (
	// leaderboardCachePrefix is the Redis key prefix for leaderboard reads.
	leaderboardCachePrefix = "leaderboard:"
	// leaderboardCacheTTL keeps public reads cheap without letting results
	// go stale for long. Submissions invalidate eagerly as well.
	leaderboardCacheTTL = 30 * time.Second
)

// leaderboardKey builds the Redis key for one project/limit combination.
func leaderboardKey(projectID int64, limit int) string {
	return fmt.Sprintf("%s%d:%d", leaderboardCachePrefix, projectID, limit)
}

// GetLeaderboard retrieves a cached leaderboard page.
// Returns nil on a cache miss; a miss is not an error.
func (c *Cache) GetLeaderboard(ctx context.Context, projectID int64, limit int) ([]*model.Score, error) {
	data, err := c.client.Get(ctx, leaderboardKey(projectID, limit)).Bytes()
	if err != nil {
		return nil, nil //nolint:nilerr
	}

	var scores []*model.Score
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, nil //nolint:nilerr
	}

	return scores, nil
}

// SetLeaderboard caches a leaderboard page.
func (c *Cache) SetLeaderboard(ctx context.Context, projectID int64, limit int, scores []*model.Score) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}

	return c.client.Set(ctx, leaderboardKey(projectID, limit), data, leaderboardCacheTTL).Err()
}

// InvalidateLeaderboard drops every cached page for a project.
// Called after each score submission so fresh entries become visible
// before the TTL expires.
func (c *Cache) InvalidateLeaderboard(ctx context.Context, projectID int64) error {
	pattern := fmt.Sprintf("%s%d:*", leaderboardCachePrefix, projectID)

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan leaderboard keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
