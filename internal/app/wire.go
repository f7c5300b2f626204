package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	s3blob "github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/blob/s3"
	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/cache/redis"
	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/config"
	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/dataset"
	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// Dependencies bundles the constructed domain-level dependencies.
type Dependencies struct {
	Dataset             domain.Dataset
	RecommendationCache domain.RecommendationCache // nil when the cache is disabled
}

// Wire constructs the concrete dependencies from the configuration and
// returns them with a cleanup function to be called on shutdown.
func Wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{}

	// --- Dataset source ---
	var src dataset.Source
	switch cfg.Dataset.Source {
	case config.SourceS3:
		blobClient, err := s3blob.New(ctx, s3blob.ClientConfig{
			Endpoint:       cfg.S3.Endpoint,
			Region:         cfg.S3.Region,
			Bucket:         cfg.S3.Bucket,
			AccessKey:      cfg.S3.AccessKey,
			SecretKey:      cfg.S3.SecretKey,
			UseSSL:         cfg.S3.UseSSL,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: s3: %w", err)
		}
		closers = append(closers, func() { _ = blobClient.Close() })

		if err := blobClient.Health(ctx); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: s3: %w", err)
		}

		blobSrc := dataset.BlobSource{
			Reader: s3blob.NewReader(blobClient),
			Prefix: cfg.S3.Prefix,
		}
		if err := blobSrc.Check(ctx, cfg.Dataset.BattersFile, cfg.Dataset.BowlersFile, cfg.Dataset.MatchupsFile); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: s3: %w", err)
		}
		src = blobSrc
	default:
		src = dataset.FileSource{Dir: cfg.Dataset.Dir}
	}

	// --- Dataset load (startup barrier) ---
	store, err := dataset.Load(ctx, src, cfg.Teams, dataset.Files{
		Batters:  cfg.Dataset.BattersFile,
		Bowlers:  cfg.Dataset.BowlersFile,
		Matchups: cfg.Dataset.MatchupsFile,
	}, logger)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("wire: dataset: %w", err)
	}
	deps.Dataset = store

	// --- Optional Redis recommendation cache ---
	if cfg.Cache.Enabled {
		redisClient, err := redis.New(ctx, redis.ClientConfig{
			Addr:       cfg.Cache.Addr,
			Password:   cfg.Cache.Password,
			DB:         cfg.Cache.DB,
			PoolSize:   cfg.Cache.PoolSize,
			MaxRetries: cfg.Cache.MaxRetries,
			TLSEnabled: cfg.Cache.TLSEnabled,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: redis: %w", err)
		}
		closers = append(closers, func() { _ = redisClient.Close() })

		ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
		deps.RecommendationCache = redis.NewRecommendationCache(redisClient, ttl)
	}

	return deps, cleanup, nil
}
