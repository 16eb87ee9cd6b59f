package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/scoreforge/scoreforge/internal/model"
)

const (
	// projectCachePrefix is the Redis key prefix for API key resolution.
	// Entries are keyed by the key's lookup hash, never the plaintext.
	projectCachePrefix = "apikey:project:"
	// projectCacheTTL bounds how long a resolution stays cached.
	projectCacheTTL = 5 * time.Minute
)

// cachedProject is the tenant identity stored in Redis.
type cachedProject struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// GetProjectByKeyHash retrieves a cached API key resolution.
// Returns nil on a cache miss; a miss is not an error.
func (c *Cache) GetProjectByKeyHash(ctx context.Context, keyHash string) (*model.Project, error) {
	key := projectCachePrefix + keyHash

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Cache miss is not an error
		return nil, nil //nolint:nilerr
	}

	var cached cachedProject
	if err := json.Unmarshal(data, &cached); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &model.Project{
		ID:      cached.ID,
		Name:    cached.Name,
		OwnerID: cached.OwnerID,
	}, nil
}

// SetProjectByKeyHash caches a successful API key resolution.
func (c *Cache) SetProjectByKeyHash(ctx context.Context, keyHash string, project *model.Project) error {
	key := projectCachePrefix + keyHash

	data, err := json.Marshal(cachedProject{
		ID:      project.ID,
		Name:    project.Name,
		OwnerID: project.OwnerID,
	})
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	return c.client.Set(ctx, key, data, projectCacheTTL).Err()
}
