// Package service implements the recommendation ranking engine, the
// multi-bet composer, and the direct dataset lookups behind the HTTP
// handlers.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// maxRecommendations caps the ranked list returned to the frontend.
const maxRecommendations = 7

// RecommendationService ranks proposition markets across all players of the
// teams contesting a match.
type RecommendationService struct {
	data   domain.Dataset
	cache  domain.RecommendationCache // optional, may be nil
	logger *slog.Logger
}

// NewRecommendationService creates the engine. cache may be nil, in which
// case every request is computed from the dataset.
func NewRecommendationService(data domain.Dataset, cache domain.RecommendationCache, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		data:   data,
		cache:  cache,
		logger: logger,
	}
}

// Recommend scans every player on the given teams, emits one entry per
// (player, market) pair with a non-zero percentage, sorts descending by
// percentage value, and returns the top entries plus the pre-truncation
// count. Ties keep encounter order: team input order, batters before
// bowlers, market catalog order.
func (s *RecommendationService) Recommend(ctx context.Context, teams []string) (domain.RankedRecommendations, error) {
	if s.data == nil {
		return domain.RankedRecommendations{}, domain.ErrDataUnavailable
	}

	key := cacheKey(teams)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "recommendation cache get failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	entries := make([]domain.Recommendation, 0, 32)
	for _, team := range teams {
		entries = appendMarketEntries(entries, s.data.Batters(team), domain.RoleBatting)
		entries = appendMarketEntries(entries, s.data.Bowlers(team), domain.RoleBowling)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PercentageValue > entries[j].PercentageValue
	})

	total := len(entries)
	if len(entries) > maxRecommendations {
		entries = entries[:maxRecommendations]
	}

	result := domain.RankedRecommendations{
		Entries:        entries,
		TotalAvailable: total,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.logger.WarnContext(ctx, "recommendation cache set failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	return result, nil
}

// appendMarketEntries walks the market catalog for each player in the given
// role and collects one entry per non-zero percentage. Zero is the source
// data's "no qualifying data" sentinel and is excluded rather than ranked.
func appendMarketEntries(entries []domain.Recommendation, players []domain.Player, role domain.Role) []domain.Recommendation {
	defs := domain.MarketsForRole(role)
	for _, p := range players {
		for _, def := range defs {
			stat, ok := def.Stat(p)
			if !ok || stat.Percentage == 0 {
				continue
			}
			entries = append(entries, domain.Recommendation{
				PlayerName:      p.Name,
				Team:            p.Team,
				MarketID:        def.ID,
				Market:          def.DisplayName,
				Percentage:      formatPercent(stat.Percentage),
				PercentageValue: stat.Percentage,
				Role:            role,
			})
		}
	}
	return entries
}

// formatPercent renders a normalized percentage the way the source data
// spells it, e.g. 35.5 -> "35.5%".
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// cacheKey derives a cache key from the team list. Team order is part of
// the key because tie ordering in the ranked output follows encounter order.
func cacheKey(teams []string) string {
	return strings.Join(teams, "|")
}
