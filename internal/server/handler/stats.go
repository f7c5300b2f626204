package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// StatsService defines the dataset lookups the stats handler requires from
// the service layer. Declared locally so the handler package does not depend
// on the concrete service implementation.
type StatsService interface {
	TeamPlayers(ctx context.Context, team string) (batters, bowlers []domain.Player, err error)
	PlayerStats(ctx context.Context, name string) (domain.Player, error)
	TeamStats(ctx context.Context, team string) (domain.TeamSummary, error)
	Matchups(ctx context.Context) ([]string, error)
	MatchupPlayers(ctx context.Context, label string) ([]domain.Matchup, error)
}

// StatsHandler serves the direct dataset lookup endpoints.
type StatsHandler struct {
	stats  StatsService
	logger *slog.Logger
}

// NewStatsHandler creates a StatsHandler with the given service and logger.
func NewStatsHandler(stats StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger,
	}
}

type batterJSON struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Team         string `json:"team"`
	TotalInnings int    `json:"total_innings"`
	TotalRuns    int    `json:"total_runs"`
}

type bowlerJSON struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Team         string `json:"team"`
	TotalInnings int    `json:"total_innings"`
	TotalWickets int    `json:"total_wickets"`
}

type teamPlayersResponse struct {
	Team         string       `json:"team"`
	Batters      []batterJSON `json:"batters"`
	Bowlers      []bowlerJSON `json:"bowlers"`
	TotalPlayers int          `json:"total_players"`
}

// TeamPlayers returns all players for a team.
// GET /players/{team}
func (h *StatsHandler) TeamPlayers(w http.ResponseWriter, r *http.Request) {
	team := pathParam(r, "team")

	batters, bowlers, err := h.stats.TeamPlayers(r.Context(), team)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Team not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "team players lookup failed",
			slog.String("team", team),
			slog.String("error", err.Error()),
		)
		writeError(w, errorStatus(err), "failed to load team players")
		return
	}

	resp := teamPlayersResponse{
		Team:    team,
		Batters: make([]batterJSON, 0, len(batters)),
		Bowlers: make([]bowlerJSON, 0, len(bowlers)),
	}
	for _, p := range batters {
		resp.Batters = append(resp.Batters, batterJSON{
			Name:         p.Name,
			Type:         "batter",
			Team:         p.Team,
			TotalInnings: p.Batting.TotalInnings,
			TotalRuns:    p.Batting.TotalRuns,
		})
	}
	for _, p := range bowlers {
		resp.Bowlers = append(resp.Bowlers, bowlerJSON{
			Name:         p.Name,
			Type:         "bowler",
			Team:         p.Team,
			TotalInnings: p.Bowling.TotalInnings,
			TotalWickets: p.Bowling.TotalWickets,
		})
	}
	resp.TotalPlayers = len(resp.Batters) + len(resp.Bowlers)

	writeJSON(w, http.StatusOK, resp)
}

// PlayerStats returns the merged batting/bowling stats for one player.
// GET /player-stats/{player_name}
func (h *StatsHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "player_name")

	player, err := h.stats.PlayerStats(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "player stats lookup failed",
			slog.String("player", name),
			slog.String("error", err.Error()),
		)
		writeError(w, errorStatus(err), "failed to load player stats")
		return
	}

	writeJSON(w, http.StatusOK, player)
}

// TeamStats returns aggregate statistics for one team.
// GET /team-stats/{team_name}
func (h *StatsHandler) TeamStats(w http.ResponseWriter, r *http.Request) {
	team := pathParam(r, "team_name")

	summary, err := h.stats.TeamStats(r.Context(), team)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Team not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "team stats lookup failed",
			slog.String("team", team),
			slog.String("error", err.Error()),
		)
		writeError(w, errorStatus(err), "failed to load team stats")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// ListMatchups returns the distinct matchup labels in the dataset.
// GET /matchups
func (h *StatsHandler) ListMatchups(w http.ResponseWriter, r *http.Request) {
	labels, err := h.stats.Matchups(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "matchups lookup failed",
			slog.String("error", err.Error()),
		)
		writeError(w, errorStatus(err), "failed to load matchups")
		return
	}
	if labels == nil {
		labels = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"matchups": labels,
		"total":    len(labels),
	})
}

// MatchupPlayers returns the rows recorded under one matchup label.
// GET /matchup-players?matchup=<label>
func (h *StatsHandler) MatchupPlayers(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("matchup")
	if label == "" {
		writeError(w, http.StatusBadRequest, "matchup query parameter is required")
		return
	}

	rows, err := h.stats.MatchupPlayers(r.Context(), label)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Matchup not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "matchup players lookup failed",
			slog.String("matchup", label),
			slog.String("error", err.Error()),
		)
		writeError(w, errorStatus(err), "failed to load matchup players")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"matchup": label,
		"players": rows,
		"total":   len(rows),
	})
}
