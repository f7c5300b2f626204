package domain

import "context"

// RecommendationCache stores ranked recommendation results keyed by the team
// set they were computed for. The dataset is static for the lifetime of the
// process, so cached entries never go stale while the process runs; the TTL
// only bounds staleness across restarts with refreshed data.
type RecommendationCache interface {
	// Get returns the cached result for key, or ErrNotFound on a miss.
	Get(ctx context.Context, key string) (RankedRecommendations, error)
	Set(ctx context.Context, key string, recs RankedRecommendations) error
}
