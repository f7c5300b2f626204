package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// StatsService serves direct dataset lookups with no ranking logic.
type StatsService struct {
	data   domain.Dataset
	logger *slog.Logger
}

// NewStatsService creates the lookup service.
func NewStatsService(data domain.Dataset, logger *slog.Logger) *StatsService {
	return &StatsService{data: data, logger: logger}
}

// TeamPlayers returns the team's batters and bowlers in dataset order.
// Returns domain.ErrNotFound for a team outside the catalog.
func (s *StatsService) TeamPlayers(ctx context.Context, team string) (batters, bowlers []domain.Player, err error) {
	if s.data == nil {
		return nil, nil, domain.ErrDataUnavailable
	}
	if !s.data.HasTeam(team) {
		return nil, nil, fmt.Errorf("team %q: %w", team, domain.ErrNotFound)
	}
	return s.data.Batters(team), s.data.Bowlers(team), nil
}

// PlayerStats returns the merged batting/bowling view of a single player.
func (s *StatsService) PlayerStats(ctx context.Context, name string) (domain.Player, error) {
	if s.data == nil {
		return domain.Player{}, domain.ErrDataUnavailable
	}
	return s.data.PlayerByName(ctx, name)
}

// TeamStats returns the aggregate summary for a catalog team.
func (s *StatsService) TeamStats(ctx context.Context, team string) (domain.TeamSummary, error) {
	if s.data == nil {
		return domain.TeamSummary{}, domain.ErrDataUnavailable
	}
	return s.data.TeamSummary(ctx, team)
}

// Matchups returns the distinct matchup labels in dataset order.
func (s *StatsService) Matchups(ctx context.Context) ([]string, error) {
	if s.data == nil {
		return nil, domain.ErrDataUnavailable
	}
	return s.data.MatchupLabels(), nil
}

// MatchupPlayers returns the rows recorded under one matchup label.
func (s *StatsService) MatchupPlayers(ctx context.Context, label string) ([]domain.Matchup, error) {
	if s.data == nil {
		return nil, domain.ErrDataUnavailable
	}
	return s.data.MatchupPlayers(ctx, label)
}
