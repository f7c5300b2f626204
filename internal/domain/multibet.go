package domain

import "time"

// MultiBetLeg is one caller-selected proposition within a multi-bet. Legs
// arrive as untrusted client input and are not re-resolved against the
// dataset when the slip is composed.
type MultiBetLeg struct {
	PlayerName      string   `json:"player_name"`
	MarketID        MarketID `json:"market_id"`
	Market          string   `json:"market"`
	PercentageValue float64  `json:"percentage_value"`
}

// MultiBet is a composed parlay estimate. The winner selection counts as a
// leg in TotalLegs but carries no probability multiplier of its own.
type MultiBet struct {
	SlipID             string        `json:"slip_id"`
	WinnerTeam         string        `json:"winner_team"`
	SelectedBets       []MultiBetLeg `json:"selected_bets"`
	TotalLegs          int           `json:"total_legs"`
	CombinedPercentage string        `json:"combined_percentage"`
	EstimatedOdds      string        `json:"estimated_odds"`
	CreatedAt          time.Time     `json:"created_at"`
}
