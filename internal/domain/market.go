package domain

// MarketID is the stable key of a proposition market.
type MarketID string

const (
	MarketRuns10Plus     MarketID = "runs_10_plus"
	MarketRuns20Plus     MarketID = "runs_20_plus"
	MarketHitSix         MarketID = "hit_six"
	MarketTopTeamScorer  MarketID = "top_team_scorer"
	MarketWicket1Plus    MarketID = "wicket_1_plus"
	MarketWicket2Plus    MarketID = "wicket_2_plus"
	MarketTopTeamWickets MarketID = "top_team_wickets"
)

// MarketDefinition describes one proposition market: its stable ID, the
// label shown to users, which role it applies to, and how to read the
// backing stat off a player.
type MarketDefinition struct {
	ID          MarketID
	DisplayName string
	Role        Role

	batting func(BattingStats) MarketStat
	bowling func(BowlingStats) MarketStat
}

// Stat resolves the market's stat for p. ok is false when the player has no
// stats block for the market's role.
func (d MarketDefinition) Stat(p Player) (stat MarketStat, ok bool) {
	switch d.Role {
	case RoleBatting:
		if p.Batting == nil {
			return MarketStat{}, false
		}
		return d.batting(*p.Batting), true
	case RoleBowling:
		if p.Bowling == nil {
			return MarketStat{}, false
		}
		return d.bowling(*p.Bowling), true
	}
	return MarketStat{}, false
}

// markets is the fixed catalog: four batting markets followed by three
// bowling markets. Tie ordering in ranked recommendations depends on this
// order, so entries must not be reordered.
var markets = []MarketDefinition{
	{
		ID:          MarketRuns10Plus,
		DisplayName: "10+ Runs",
		Role:        RoleBatting,
		batting:     func(s BattingStats) MarketStat { return s.Runs10Plus },
	},
	{
		ID:          MarketRuns20Plus,
		DisplayName: "20+ Runs",
		Role:        RoleBatting,
		batting:     func(s BattingStats) MarketStat { return s.Runs20Plus },
	},
	{
		ID:          MarketHitSix,
		DisplayName: "To Hit a Six",
		Role:        RoleBatting,
		batting:     func(s BattingStats) MarketStat { return s.HitSix },
	},
	{
		ID:          MarketTopTeamScorer,
		DisplayName: "Top Team Run Scorer (TTRS)",
		Role:        RoleBatting,
		batting:     func(s BattingStats) MarketStat { return s.TopTeamScorer },
	},
	{
		ID:          MarketWicket1Plus,
		DisplayName: "1+ Wickets",
		Role:        RoleBowling,
		bowling:     func(s BowlingStats) MarketStat { return s.Wicket1Plus },
	},
	{
		ID:          MarketWicket2Plus,
		DisplayName: "2+ Wickets",
		Role:        RoleBowling,
		bowling:     func(s BowlingStats) MarketStat { return s.Wicket2Plus },
	},
	{
		ID:          MarketTopTeamWickets,
		DisplayName: "Top Team Wicket Taker",
		Role:        RoleBowling,
		bowling:     func(s BowlingStats) MarketStat { return s.TopTeamWickets },
	},
}

// MarketsForRole returns the catalog entries applicable to the given role,
// preserving catalog order.
func MarketsForRole(role Role) []MarketDefinition {
	defs := make([]MarketDefinition, 0, len(markets))
	for _, d := range markets {
		if d.Role == role {
			defs = append(defs, d)
		}
	}
	return defs
}

// MarketByID looks up a catalog entry by its stable key. A false ok means
// the id is not a catalog market; callers validating client input treat
// that as a bad request.
func MarketByID(id MarketID) (MarketDefinition, bool) {
	for _, d := range markets {
		if d.ID == id {
			return d, true
		}
	}
	return MarketDefinition{}, false
}
