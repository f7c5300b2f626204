package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// fakeDataset implements domain.Dataset over fixed player slices.
type fakeDataset struct {
	teams   []string
	batters map[string][]domain.Player
	bowlers map[string][]domain.Player
}

func (f *fakeDataset) Teams() []string { return f.teams }

func (f *fakeDataset) HasTeam(team string) bool {
	for _, t := range f.teams {
		if t == team {
			return true
		}
	}
	return false
}

func (f *fakeDataset) Batters(team string) []domain.Player { return f.batters[team] }
func (f *fakeDataset) Bowlers(team string) []domain.Player { return f.bowlers[team] }

func (f *fakeDataset) PlayerByName(ctx context.Context, name string) (domain.Player, error) {
	return domain.Player{}, domain.ErrNotFound
}

func (f *fakeDataset) TeamSummary(ctx context.Context, team string) (domain.TeamSummary, error) {
	return domain.TeamSummary{}, domain.ErrNotFound
}

func (f *fakeDataset) MatchupLabels() []string { return nil }

func (f *fakeDataset) MatchupPlayers(ctx context.Context, label string) ([]domain.Matchup, error) {
	return nil, domain.ErrNotFound
}

// fakeCache records get/set traffic for cache interaction tests.
type fakeCache struct {
	store   map[string]domain.RankedRecommendations
	gets    int
	sets    int
	failGet error
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]domain.RankedRecommendations)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (domain.RankedRecommendations, error) {
	c.gets++
	if c.failGet != nil {
		return domain.RankedRecommendations{}, c.failGet
	}
	recs, ok := c.store[key]
	if !ok {
		return domain.RankedRecommendations{}, domain.ErrNotFound
	}
	return recs, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, recs domain.RankedRecommendations) error {
	c.sets++
	c.store[key] = recs
	return nil
}

func batter(name, team string, runs10 float64) domain.Player {
	return domain.Player{
		Name: name,
		Team: team,
		Batting: &domain.BattingStats{
			Runs10Plus: domain.MarketStat{Percentage: runs10},
		},
	}
}

func bowler(name, team string, wicket1 float64) domain.Player {
	return domain.Player{
		Name: name,
		Team: team,
		Bowling: &domain.BowlingStats{
			Wicket1Plus: domain.MarketStat{Percentage: wicket1},
		},
	}
}

func TestRecommendRanking(t *testing.T) {
	data := &fakeDataset{
		teams: []string{"Sydney Sixers", "Melbourne Stars"},
		batters: map[string][]domain.Player{
			"Sydney Sixers":   {batter("J Smith", "Sydney Sixers", 72.5)},
			"Melbourne Stars": {batter("A Khan", "Melbourne Stars", 90)},
		},
		bowlers: map[string][]domain.Player{
			"Sydney Sixers": {bowler("B Lee", "Sydney Sixers", 81.6)},
		},
	}
	svc := NewRecommendationService(data, nil, discardLogger())

	ranked, err := svc.Recommend(context.Background(), []string{"Sydney Sixers", "Melbourne Stars"})
	if err != nil {
		t.Fatal(err)
	}

	if ranked.TotalAvailable != 3 {
		t.Errorf("total available = %d, want 3", ranked.TotalAvailable)
	}
	wantOrder := []string{"A Khan", "B Lee", "J Smith"}
	if len(ranked.Entries) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(ranked.Entries), len(wantOrder))
	}
	for i, want := range wantOrder {
		if ranked.Entries[i].PlayerName != want {
			t.Errorf("entries[%d] = %q, want %q", i, ranked.Entries[i].PlayerName, want)
		}
	}

	top := ranked.Entries[0]
	if top.MarketID != domain.MarketRuns10Plus || top.Market != "10+ Runs" {
		t.Errorf("top entry market = %q/%q", top.MarketID, top.Market)
	}
	if top.Percentage != "90%" || top.PercentageValue != 90 {
		t.Errorf("top entry percentage = %q/%v", top.Percentage, top.PercentageValue)
	}
	if top.Role != domain.RoleBatting {
		t.Errorf("top entry role = %q", top.Role)
	}
	if ranked.Entries[1].Role != domain.RoleBowling {
		t.Errorf("second entry role = %q, want bowling", ranked.Entries[1].Role)
	}
}

func TestRecommendExcludesZeroPercentages(t *testing.T) {
	data := &fakeDataset{
		teams: []string{"Sydney Sixers"},
		batters: map[string][]domain.Player{
			"Sydney Sixers": {
				batter("J Smith", "Sydney Sixers", 72.5),
				batter("No Data", "Sydney Sixers", 0),
			},
		},
		bowlers: map[string][]domain.Player{},
	}
	svc := NewRecommendationService(data, nil, discardLogger())

	ranked, err := svc.Recommend(context.Background(), []string{"Sydney Sixers"})
	if err != nil {
		t.Fatal(err)
	}
	if ranked.TotalAvailable != 1 {
		t.Errorf("total available = %d, want 1", ranked.TotalAvailable)
	}
	for _, e := range ranked.Entries {
		if e.PercentageValue <= 0 || e.PercentageValue > 100 {
			t.Errorf("entry %q percentage %v outside (0,100]", e.PlayerName, e.PercentageValue)
		}
	}
}

func TestRecommendTruncatesToTop(t *testing.T) {
	// Ten batters, each with one non-zero market.
	players := make([]domain.Player, 10)
	for i := range players {
		players[i] = batter(fmt.Sprintf("P%d", i), "Sydney Sixers", float64(50+i))
	}
	data := &fakeDataset{
		teams:   []string{"Sydney Sixers"},
		batters: map[string][]domain.Player{"Sydney Sixers": players},
		bowlers: map[string][]domain.Player{},
	}
	svc := NewRecommendationService(data, nil, discardLogger())

	ranked, err := svc.Recommend(context.Background(), []string{"Sydney Sixers"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked.Entries) != maxRecommendations {
		t.Errorf("got %d entries, want %d", len(ranked.Entries), maxRecommendations)
	}
	if ranked.TotalAvailable != 10 {
		t.Errorf("total available = %d, want 10", ranked.TotalAvailable)
	}
	if ranked.Entries[0].PlayerName != "P9" {
		t.Errorf("top entry = %q, want the highest percentage", ranked.Entries[0].PlayerName)
	}
}

func TestRecommendTieOrderIsStable(t *testing.T) {
	data := &fakeDataset{
		teams: []string{"Sydney Sixers", "Melbourne Stars"},
		batters: map[string][]domain.Player{
			"Sydney Sixers":   {batter("First", "Sydney Sixers", 60)},
			"Melbourne Stars": {batter("Second", "Melbourne Stars", 60)},
		},
		bowlers: map[string][]domain.Player{
			"Sydney Sixers": {bowler("Third", "Sydney Sixers", 60)},
		},
	}
	svc := NewRecommendationService(data, nil, discardLogger())

	ranked, err := svc.Recommend(context.Background(), []string{"Sydney Sixers", "Melbourne Stars"})
	if err != nil {
		t.Fatal(err)
	}

	// Ties keep encounter order: team input order, batters before bowlers.
	wantOrder := []string{"First", "Third", "Second"}
	for i, want := range wantOrder {
		if ranked.Entries[i].PlayerName != want {
			t.Errorf("entries[%d] = %q, want %q", i, ranked.Entries[i].PlayerName, want)
		}
	}
}

func TestRecommendEmptyTeams(t *testing.T) {
	data := &fakeDataset{teams: []string{"Sydney Sixers"}}
	svc := NewRecommendationService(data, nil, discardLogger())

	ranked, err := svc.Recommend(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked.Entries) != 0 || ranked.TotalAvailable != 0 {
		t.Errorf("expected empty result, got %+v", ranked)
	}
}

func TestRecommendNoDataset(t *testing.T) {
	svc := NewRecommendationService(nil, nil, discardLogger())
	_, err := svc.Recommend(context.Background(), []string{"Sydney Sixers"})
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestRecommendUsesCache(t *testing.T) {
	data := &fakeDataset{
		teams: []string{"Sydney Sixers"},
		batters: map[string][]domain.Player{
			"Sydney Sixers": {batter("J Smith", "Sydney Sixers", 72.5)},
		},
		bowlers: map[string][]domain.Player{},
	}
	cache := newFakeCache()
	svc := NewRecommendationService(data, cache, discardLogger())
	ctx := context.Background()

	first, err := svc.Recommend(ctx, []string{"Sydney Sixers"})
	if err != nil {
		t.Fatal(err)
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}

	second, err := svc.Recommend(ctx, []string{"Sydney Sixers"})
	if err != nil {
		t.Fatal(err)
	}
	if cache.gets != 2 {
		t.Errorf("cache gets = %d, want 2", cache.gets)
	}
	if cache.sets != 1 {
		t.Errorf("cache hit still wrote: sets = %d", cache.sets)
	}
	if len(second.Entries) != len(first.Entries) || second.TotalAvailable != first.TotalAvailable {
		t.Errorf("cached result diverges: %+v vs %+v", second, first)
	}
}

func TestRecommendSurvivesCacheFailure(t *testing.T) {
	data := &fakeDataset{
		teams: []string{"Sydney Sixers"},
		batters: map[string][]domain.Player{
			"Sydney Sixers": {batter("J Smith", "Sydney Sixers", 72.5)},
		},
		bowlers: map[string][]domain.Player{},
	}
	cache := newFakeCache()
	cache.failGet = errors.New("connection refused")
	svc := NewRecommendationService(data, cache, discardLogger())

	ranked, err := svc.Recommend(context.Background(), []string{"Sydney Sixers"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked.Entries) != 1 {
		t.Errorf("expected computed result despite cache failure, got %+v", ranked)
	}
}
