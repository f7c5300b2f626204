package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// MultiBetService defines what the multi-bet handler requires from the
// composer.
type MultiBetService interface {
	Build(ctx context.Context, winnerTeam string, legs []domain.MultiBetLeg) (domain.MultiBet, error)
}

// MultiBetHandler serves the multi-bet composition endpoint.
type MultiBetHandler struct {
	multi  MultiBetService
	logger *slog.Logger
}

// NewMultiBetHandler creates a MultiBetHandler.
func NewMultiBetHandler(multi MultiBetService, logger *slog.Logger) *MultiBetHandler {
	return &MultiBetHandler{
		multi:  multi,
		logger: logger,
	}
}

type buildMultiRequest struct {
	WinnerTeam   string               `json:"winner_team"`
	SelectedBets []domain.MultiBetLeg `json:"selected_bets"`
}

// BuildMulti composes a multi-bet from the winner selection and the chosen
// legs.
// POST /build-multi
func (h *MultiBetHandler) BuildMulti(w http.ResponseWriter, r *http.Request) {
	var req buildMultiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	bet, err := h.multi.Build(r.Context(), req.WinnerTeam, req.SelectedBets)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "multi bet composition failed",
			slog.String("winner_team", req.WinnerTeam),
			slog.String("error", err.Error()),
		)
		writeError(w, errorStatus(err), "failed to build multi bet")
		return
	}

	writeJSON(w, http.StatusOK, map[string]domain.MultiBet{"multi_bet": bet})
}
