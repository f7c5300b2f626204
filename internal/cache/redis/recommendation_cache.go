package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// defaultRecommendationTTL bounds staleness across process restarts with a
// refreshed dataset; within one process lifetime the dataset never changes.
const defaultRecommendationTTL = 10 * time.Minute

// RecommendationCache implements domain.RecommendationCache with JSON-
// serialized values.
//
// Key schema:
//
//	recs:{teamA|teamB} - JSON RankedRecommendations
type RecommendationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRecommendationCache creates a RecommendationCache backed by the given
// Client. A non-positive ttl falls back to the default.
func NewRecommendationCache(c *Client, ttl time.Duration) *RecommendationCache {
	if ttl <= 0 {
		ttl = defaultRecommendationTTL
	}
	return &RecommendationCache{rdb: c.rdb, ttl: ttl}
}

func recsKey(key string) string { return "recs:" + key }

// Get retrieves a cached ranking. Returns domain.ErrNotFound on a miss.
func (rc *RecommendationCache) Get(ctx context.Context, key string) (domain.RankedRecommendations, error) {
	data, err := rc.rdb.Get(ctx, recsKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.RankedRecommendations{}, domain.ErrNotFound
		}
		return domain.RankedRecommendations{}, fmt.Errorf("redis: get recommendations %s: %w", key, err)
	}

	var recs domain.RankedRecommendations
	if err := json.Unmarshal(data, &recs); err != nil {
		return domain.RankedRecommendations{}, fmt.Errorf("redis: unmarshal recommendations %s: %w", key, err)
	}
	return recs, nil
}

// Set stores a ranking under the given key with the configured TTL.
func (rc *RecommendationCache) Set(ctx context.Context, key string, recs domain.RankedRecommendations) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("redis: marshal recommendations %s: %w", key, err)
	}
	if err := rc.rdb.Set(ctx, recsKey(key), data, rc.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set recommendations %s: %w", key, err)
	}
	return nil
}

// Compile-time interface check.
var _ domain.RecommendationCache = (*RecommendationCache)(nil)
