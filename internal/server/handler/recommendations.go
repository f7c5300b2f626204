package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// RecommendationService defines what the recommendations handler requires
// from the engine.
type RecommendationService interface {
	Recommend(ctx context.Context, teams []string) (domain.RankedRecommendations, error)
}

// TeamCatalog answers whether a team name is recognized.
type TeamCatalog interface {
	HasTeam(team string) bool
}

// RecommendationHandler serves the ranked recommendation endpoint.
type RecommendationHandler struct {
	recs   RecommendationService
	teams  TeamCatalog
	logger *slog.Logger
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(recs RecommendationService, teams TeamCatalog, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recs:   recs,
		teams:  teams,
		logger: logger,
	}
}

type recommendationsRequest struct {
	WinnerTeam string `json:"winner_team"`
	MatchID    string `json:"match_id"`
}

type recommendationsResponse struct {
	WinnerTeam      string                  `json:"winner_team"`
	MatchTeams      []string                `json:"match_teams"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	TotalAvailable  int                     `json:"total_available"`
}

// Recommend ranks markets across the players of the selected match.
// POST /recommendations
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.WinnerTeam == "" || !h.teams.HasTeam(req.WinnerTeam) {
		writeError(w, http.StatusBadRequest, "Invalid winner team")
		return
	}

	matchTeams := matchTeams(req.WinnerTeam, req.MatchID)

	ranked, err := h.recs.Recommend(r.Context(), matchTeams)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "recommendation ranking failed",
			slog.String("winner_team", req.WinnerTeam),
			slog.String("match_id", req.MatchID),
			slog.String("error", err.Error()),
		)
		writeError(w, errorStatus(err), "failed to build recommendations")
		return
	}

	if ranked.Entries == nil {
		ranked.Entries = []domain.Recommendation{}
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{
		WinnerTeam:      req.WinnerTeam,
		MatchTeams:      matchTeams,
		Recommendations: ranked.Entries,
		TotalAvailable:  ranked.TotalAvailable,
	})
}

// matchTeams derives the competing teams from a "<home>_vs_<away>" match id,
// falling back to just the winner when the id is absent or malformed.
func matchTeams(winner, matchID string) []string {
	if matchID != "" {
		parts := strings.Split(matchID, "_vs_")
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			return parts
		}
	}
	return []string{winner}
}
