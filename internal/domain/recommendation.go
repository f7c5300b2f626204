package domain

// Recommendation is one ranked (player, market) pair. Recommendations are
// built per request and never persisted.
type Recommendation struct {
	PlayerName      string   `json:"player_name"`
	Team            string   `json:"team"`
	MarketID        MarketID `json:"market_id"`
	Market          string   `json:"market"`
	Percentage      string   `json:"percentage"`
	PercentageValue float64  `json:"percentage_value"`
	Role            Role     `json:"type"`
}

// RankedRecommendations is the engine output: the top entries after sorting
// descending by percentage, plus the count before truncation.
type RankedRecommendations struct {
	Entries        []Recommendation `json:"recommendations"`
	TotalAvailable int              `json:"total_available"`
}
