package domain

// Role distinguishes batting and bowling markets.
type Role string

const (
	RoleBatting Role = "batting"
	RoleBowling Role = "bowling"
)

// MarketStat is one market's historical outcome for a player. Percentage is
// normalized to a number in [0,100] at ingestion. The source data spells
// "no qualifying data" as the literal zero-percent value, so a zero
// Percentage is treated as absent throughout.
type MarketStat struct {
	Percentage  float64 `json:"percentage"`
	Occurrences int     `json:"occurrences"`
}

// BattingStats holds a batter's totals and the four batting market stats.
type BattingStats struct {
	TotalInnings  int        `json:"total_innings"`
	TotalRuns     int        `json:"total_runs"`
	Runs10Plus    MarketStat `json:"runs_10_plus"`
	Runs20Plus    MarketStat `json:"runs_20_plus"`
	HitSix        MarketStat `json:"hit_six"`
	TopTeamScorer MarketStat `json:"top_team_scorer"`
}

// BowlingStats holds a bowler's totals and the three bowling market stats.
type BowlingStats struct {
	TotalInnings   int        `json:"total_innings"`
	TotalWickets   int        `json:"total_wickets"`
	Wicket1Plus    MarketStat `json:"wicket_1_plus"`
	Wicket2Plus    MarketStat `json:"wicket_2_plus"`
	TopTeamWickets MarketStat `json:"top_team_wickets"`
}

// Player is one entry of the loaded dataset. A player present in both the
// batters and bowlers files carries both stat blocks (all-rounder). Team
// membership never changes after load.
type Player struct {
	Name    string        `json:"name"`
	Team    string        `json:"team"`
	Batting *BattingStats `json:"batting,omitempty"`
	Bowling *BowlingStats `json:"bowling,omitempty"`
}
