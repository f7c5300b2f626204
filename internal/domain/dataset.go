package domain

import "context"

// Matchup is one row of the matchups file: a player mapped to a team within
// a named head-to-head matchup.
type Matchup struct {
	Player string `json:"player"`
	Team   string `json:"team"`
	Label  string `json:"matchup"`
}

// TeamSummary aggregates a team's dataset rows.
type TeamSummary struct {
	Team           string `json:"team"`
	BatterCount    int    `json:"batter_count"`
	BowlerCount    int    `json:"bowler_count"`
	TotalRuns      int    `json:"total_runs"`
	TotalWickets   int    `json:"total_wickets"`
	TopRunScorer   string `json:"top_run_scorer,omitempty"`
	TopWicketTaker string `json:"top_wicket_taker,omitempty"`
}

// Dataset is the read-only view of the loaded player statistics. It is fully
// populated before the server starts serving and never mutated afterwards,
// so implementations need no locking for concurrent readers.
type Dataset interface {
	Teams() []string
	HasTeam(team string) bool

	// Batters and Bowlers return the team's players in dataset file order.
	// An unknown team yields an empty slice, not an error.
	Batters(team string) []Player
	Bowlers(team string) []Player

	// PlayerByName returns the merged (batting + bowling) view of a player.
	// The lookup is case-insensitive. Returns ErrNotFound for unknown names.
	PlayerByName(ctx context.Context, name string) (Player, error)

	TeamSummary(ctx context.Context, team string) (TeamSummary, error)

	MatchupLabels() []string
	MatchupPlayers(ctx context.Context, label string) ([]Matchup, error)
}
