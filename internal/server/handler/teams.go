package handler

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Fixture is one entry of the static match catalog.
type Fixture struct {
	Home string
	Away string
}

// TeamsHandler serves the fixed team list and the static match catalog.
type TeamsHandler struct {
	teams    []string
	fixtures []Fixture
	logger   *slog.Logger
}

// NewTeamsHandler creates a TeamsHandler over the configured catalogs.
func NewTeamsHandler(teams []string, fixtures []Fixture, logger *slog.Logger) *TeamsHandler {
	return &TeamsHandler{
		teams:    teams,
		fixtures: fixtures,
		logger:   logger,
	}
}

// ListTeams returns the fixed franchise list.
// GET /teams
func (h *TeamsHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"teams": h.teams})
}

type matchJSON struct {
	ID          string `json:"id"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	DisplayName string `json:"display_name"`
}

// ListMatches returns the configured match combinations. The id format
// "<home>_vs_<away>" is what POST /recommendations accepts as match_id.
// GET /matches
func (h *TeamsHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches := make([]matchJSON, 0, len(h.fixtures))
	for _, f := range h.fixtures {
		matches = append(matches, matchJSON{
			ID:          f.Home + "_vs_" + f.Away,
			HomeTeam:    f.Home,
			AwayTeam:    f.Away,
			DisplayName: fmt.Sprintf("%s vs %s", f.Home, f.Away),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}
