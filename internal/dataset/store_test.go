package dataset

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// memSource serves CSV payloads from a map, standing in for the file and
// blob sources.
type memSource map[string]string

func (m memSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	body, ok := m[name]
	if !ok {
		return nil, errors.New("no such file: " + name)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

var testTeams = []string{"Sydney Sixers", "Melbourne Stars"}

var testFiles = Files{
	Batters:  "batters.csv",
	Bowlers:  "bowlers.csv",
	Matchups: "matchups.csv",
}

func testSource() memSource {
	return memSource{
		"batters.csv": `BatsmanName,Team,Total.Innings,Total.Runs,Percentage.of.No.of.times.BatsmanName.scored.more.than.10.runs,Percentage.of.No.of.times.BatsmanName.scored.more.than.20.runs,Percentage.of.No.of.Times.BatsmanName.Hit.Atleast.One.Six,Percentage.of.Top.Team.Runs.Scorer
J Smith,Sydney Sixers,40,1250,72.5%,55%,48.2%,20%
C Green,Sydney Sixers,30,700,60%,40%,35%,10%
A Khan,Melbourne Stars,35,980,68%,41.3%,30%,15%
`,
		"bowlers.csv": `BowlerName,bowling_team,Innings.by.Bowler,Total.Wickets,Percentage.of.No.of.times.BowlerName.Took.Atleast.1.Wicket,Percentage.of.No.of.times.BowlerName.Took.Atleast.2.Wicket,Percentage.of.Top.Wicket.Taker.for.Team
B Lee,Sydney Sixers,38,52,81.6%,47.4%,26.3%
c green,Sydney Sixers,25,20,55%,25%,5%
`,
		"matchups.csv": `Player,Team,Matchup
J Smith,Sydney Sixers,Sixers v Stars
A Khan,Melbourne Stars,Sixers v Stars
B Lee,Sydney Sixers,Sixers v Thunder
`,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load(context.Background(), testSource(), testTeams, testFiles, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoad(t *testing.T) {
	s := loadTestStore(t)

	if got := s.Teams(); len(got) != 2 || got[0] != "Sydney Sixers" {
		t.Errorf("unexpected teams: %v", got)
	}
	if !s.HasTeam("Sydney Sixers") {
		t.Error("HasTeam missed a catalog team")
	}
	if s.HasTeam("Perth Scorchers") {
		t.Error("HasTeam accepted a team outside the catalog")
	}

	if got := len(s.Batters("Sydney Sixers")); got != 2 {
		t.Errorf("Sixers batter count = %d, want 2", got)
	}
	if got := len(s.Bowlers("Sydney Sixers")); got != 2 {
		t.Errorf("Sixers bowler count = %d, want 2", got)
	}
	if got := s.Batters("Perth Scorchers"); len(got) != 0 {
		t.Errorf("unknown team returned players: %v", got)
	}
}

func TestLoadFailsOnBadFile(t *testing.T) {
	src := testSource()
	src["bowlers.csv"] = "BowlerName,bowling_team\nB Lee,Sydney Sixers\n"

	_, err := Load(context.Background(), src, testTeams, testFiles, discardLogger())
	if err == nil {
		t.Fatal("expected load to fail on a malformed file")
	}
	if !strings.Contains(err.Error(), "bowlers.csv") {
		t.Errorf("error should name the failing file: %v", err)
	}
}

func TestAllRounderMerge(t *testing.T) {
	s := loadTestStore(t)
	ctx := context.Background()

	// C Green appears in both files with different case; the merged entry
	// carries both stat blocks and the batting spelling.
	p, err := s.PlayerByName(ctx, "C GREEN")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "C Green" {
		t.Errorf("merged name = %q, want batting spelling %q", p.Name, "C Green")
	}
	if p.Batting == nil || p.Bowling == nil {
		t.Fatalf("all-rounder missing a stat block: batting=%v bowling=%v", p.Batting != nil, p.Bowling != nil)
	}

	// Both team slices expose the merged entry.
	for _, b := range s.Batters("Sydney Sixers") {
		if strings.EqualFold(b.Name, "C Green") && b.Bowling == nil {
			t.Error("batter slice entry lost the bowling block")
		}
	}
	for _, b := range s.Bowlers("Sydney Sixers") {
		if strings.EqualFold(b.Name, "C Green") && b.Batting == nil {
			t.Error("bowler slice entry lost the batting block")
		}
	}
}

func TestSameNameOnTwoTeamsStaysDistinct(t *testing.T) {
	src := testSource()
	src["batters.csv"] = `BatsmanName,Team,Total.Innings,Total.Runs,Percentage.of.No.of.times.BatsmanName.scored.more.than.10.runs,Percentage.of.No.of.times.BatsmanName.scored.more.than.20.runs,Percentage.of.No.of.Times.BatsmanName.Hit.Atleast.One.Six,Percentage.of.Top.Team.Runs.Scorer
J Smith,Sydney Sixers,40,1250,72.5%,55%,48.2%,20%
J Smith,Melbourne Stars,10,200,30%,15%,10%,5%
`
	src["bowlers.csv"] = `BowlerName,bowling_team,Innings.by.Bowler,Total.Wickets,Percentage.of.No.of.times.BowlerName.Took.Atleast.1.Wicket,Percentage.of.No.of.times.BowlerName.Took.Atleast.2.Wicket,Percentage.of.Top.Wicket.Taker.for.Team
J Smith,Melbourne Stars,12,9,40%,20%,8%
`
	s, err := Load(context.Background(), src, testTeams, testFiles, discardLogger())
	if err != nil {
		t.Fatal(err)
	}

	sixers := s.Batters("Sydney Sixers")
	if len(sixers) != 1 {
		t.Fatalf("Sixers batter count = %d, want 1", len(sixers))
	}
	// The later Stars row must not clobber the Sixers player.
	if sixers[0].Team != "Sydney Sixers" {
		t.Errorf("Sixers slice carries team %q", sixers[0].Team)
	}
	if sixers[0].Batting.TotalRuns != 1250 {
		t.Errorf("Sixers J Smith runs = %d, want 1250", sixers[0].Batting.TotalRuns)
	}
	// The bowling block belongs to the Stars player only.
	if sixers[0].Bowling != nil {
		t.Error("Stars bowling stats merged into the Sixers player")
	}

	stars := s.Batters("Melbourne Stars")
	if len(stars) != 1 {
		t.Fatalf("Stars batter count = %d, want 1", len(stars))
	}
	if stars[0].Team != "Melbourne Stars" || stars[0].Batting.TotalRuns != 200 {
		t.Errorf("Stars entry = %+v", stars[0])
	}
	if stars[0].Bowling == nil || stars[0].Bowling.TotalWickets != 9 {
		t.Errorf("Stars all-rounder merge lost the bowling block: %+v", stars[0].Bowling)
	}

	// Name-only lookup resolves to the earliest file row.
	p, err := s.PlayerByName(context.Background(), "J Smith")
	if err != nil {
		t.Fatal(err)
	}
	if p.Team != "Sydney Sixers" {
		t.Errorf("PlayerByName team = %q, want first row's team", p.Team)
	}
}

func TestPlayerByNameNotFound(t *testing.T) {
	s := loadTestStore(t)
	_, err := s.PlayerByName(context.Background(), "Nobody")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamSummary(t *testing.T) {
	s := loadTestStore(t)
	sum, err := s.TeamSummary(context.Background(), "Sydney Sixers")
	if err != nil {
		t.Fatal(err)
	}

	if sum.BatterCount != 2 || sum.BowlerCount != 2 {
		t.Errorf("counts = %d/%d, want 2/2", sum.BatterCount, sum.BowlerCount)
	}
	if sum.TotalRuns != 1950 {
		t.Errorf("total runs = %d, want 1950", sum.TotalRuns)
	}
	if sum.TotalWickets != 72 {
		t.Errorf("total wickets = %d, want 72", sum.TotalWickets)
	}
	if sum.TopRunScorer != "J Smith" {
		t.Errorf("top run scorer = %q, want %q", sum.TopRunScorer, "J Smith")
	}
	if sum.TopWicketTaker != "B Lee" {
		t.Errorf("top wicket taker = %q, want %q", sum.TopWicketTaker, "B Lee")
	}

	if _, err := s.TeamSummary(context.Background(), "Perth Scorchers"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for non-catalog team, got %v", err)
	}
}

func TestMatchups(t *testing.T) {
	s := loadTestStore(t)

	labels := s.MatchupLabels()
	want := []string{"Sixers v Stars", "Sixers v Thunder"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}

	rows, err := s.MatchupPlayers(context.Background(), "Sixers v Stars")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(rows))
	}

	if _, err := s.MatchupPlayers(context.Background(), "Sixers v Heat"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown label, got %v", err)
	}
}
