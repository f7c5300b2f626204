package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// MultiBetService composes combined-probability estimates from a winner
// selection plus caller-chosen market legs. Results are returned to the
// caller and never stored.
type MultiBetService struct {
	logger *slog.Logger
}

// NewMultiBetService creates the composer.
func NewMultiBetService(logger *slog.Logger) *MultiBetService {
	return &MultiBetService{logger: logger}
}

// Build validates the selection (winner present, at least one leg, every
// leg a catalog market) and multiplies the per-leg probabilities as
// independent events. Legs with a non-positive percentage multiply by 1
// instead of zeroing the slip, mirroring the dataset's "zero means no
// evidence" convention. The winner selection is counted in total_legs but
// contributes no multiplier.
func (s *MultiBetService) Build(ctx context.Context, winnerTeam string, legs []domain.MultiBetLeg) (domain.MultiBet, error) {
	if strings.TrimSpace(winnerTeam) == "" {
		return domain.MultiBet{}, fmt.Errorf("winner team is required: %w", domain.ErrValidation)
	}
	if len(legs) == 0 {
		return domain.MultiBet{}, fmt.Errorf("at least one bet must be selected: %w", domain.ErrValidation)
	}
	for _, leg := range legs {
		if _, ok := domain.MarketByID(leg.MarketID); !ok {
			return domain.MultiBet{}, fmt.Errorf("unknown market %q: %w", leg.MarketID, domain.ErrValidation)
		}
	}

	probability := 1.0
	for _, leg := range legs {
		if leg.PercentageValue > 0 {
			probability *= leg.PercentageValue / 100
		}
	}
	combined := probability * 100

	odds := "N/A"
	if combined > 0 {
		odds = fmt.Sprintf("%.2f", 100/combined)
	}

	bet := domain.MultiBet{
		SlipID:       uuid.New().String(),
		WinnerTeam:   winnerTeam,
		SelectedBets: legs,
		// The winner selection is an implicit extra leg.
		TotalLegs:          len(legs) + 1,
		CombinedPercentage: fmt.Sprintf("%.2f%%", combined),
		EstimatedOdds:      odds,
		CreatedAt:          time.Now().UTC(),
	}

	s.logger.InfoContext(ctx, "multi bet composed",
		slog.String("slip_id", bet.SlipID),
		slog.String("winner_team", winnerTeam),
		slog.Int("total_legs", bet.TotalLegs),
		slog.String("combined_percentage", bet.CombinedPercentage),
	)

	return bet, nil
}
