package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// Files names the three dataset files within a Source.
type Files struct {
	Batters  string
	Bowlers  string
	Matchups string
}

// playerKey identifies a player within the dataset. Name alone is not
// enough: two different players may share a name on different teams.
type playerKey struct {
	name string // folded
	team string
}

// Store is the immutable in-memory dataset. Build it with Load; once
// returned it is safe for concurrent readers without locking.
type Store struct {
	teams   []string
	teamSet map[string]bool

	batters map[string][]domain.Player // keyed by team, file order
	bowlers map[string][]domain.Player
	players map[playerKey]domain.Player // merged view
	byName  map[string]domain.Player    // name-only lookup index

	labels  []string // distinct matchup labels, file order
	byLabel map[string][]domain.Matchup
}

// Load fetches and parses the three dataset files from src concurrently and
// assembles the store. Any fetch or parse failure fails the whole load; the
// caller is expected to abort startup rather than serve partial data.
func Load(ctx context.Context, src Source, teams []string, files Files, logger *slog.Logger) (*Store, error) {
	var (
		batters  []domain.Player
		bowlers  []domain.Player
		matchups []domain.Matchup
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		batters, err = loadFile(ctx, src, files.Batters, parseBatters)
		return err
	})
	g.Go(func() (err error) {
		bowlers, err = loadFile(ctx, src, files.Bowlers, parseBowlers)
		return err
	})
	g.Go(func() (err error) {
		matchups, err = loadFile(ctx, src, files.Matchups, parseMatchups)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dataset: load: %w", err)
	}

	s := build(teams, batters, bowlers, matchups)

	logger.InfoContext(ctx, "dataset loaded",
		slog.Int("teams", len(s.teams)),
		slog.Int("batters", len(batters)),
		slog.Int("bowlers", len(bowlers)),
		slog.Int("matchup_rows", len(matchups)),
	)
	return s, nil
}

// loadFile opens one file from the source and runs the given parser over it.
func loadFile[T any](ctx context.Context, src Source, name string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rows, err := parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}

// build assembles the indexed, merged store from parsed rows. Players are
// merged by (folded name, team) so same-named players on different teams
// stay distinct entries. Batter rows are inserted first so an all-rounder's
// merged entry keeps the batting name spelling.
func build(teams []string, batters, bowlers []domain.Player, matchups []domain.Matchup) *Store {
	s := &Store{
		teams:   append([]string(nil), teams...),
		teamSet: make(map[string]bool, len(teams)),
		batters: make(map[string][]domain.Player),
		bowlers: make(map[string][]domain.Player),
		players: make(map[playerKey]domain.Player),
		byName:  make(map[string]domain.Player),
		byLabel: make(map[string][]domain.Matchup),
	}
	for _, t := range teams {
		s.teamSet[t] = true
	}

	for _, p := range batters {
		s.players[playerKey{foldName(p.Name), p.Team}] = p
	}
	for _, p := range bowlers {
		key := playerKey{foldName(p.Name), p.Team}
		if merged, ok := s.players[key]; ok {
			merged.Bowling = p.Bowling
			s.players[key] = merged
		} else {
			s.players[key] = p
		}
	}

	// Team slices reference the merged entries so a dual-role player shows
	// both stat blocks regardless of which list it is read from.
	for _, p := range batters {
		merged := s.players[playerKey{foldName(p.Name), p.Team}]
		s.batters[p.Team] = append(s.batters[p.Team], merged)
	}
	for _, p := range bowlers {
		merged := s.players[playerKey{foldName(p.Name), p.Team}]
		s.bowlers[p.Team] = append(s.bowlers[p.Team], merged)
	}

	// Name-only index for the single-player lookup. On a cross-team name
	// collision the earliest file row wins, batters before bowlers.
	for _, p := range batters {
		name := foldName(p.Name)
		if _, ok := s.byName[name]; !ok {
			s.byName[name] = s.players[playerKey{name, p.Team}]
		}
	}
	for _, p := range bowlers {
		name := foldName(p.Name)
		if _, ok := s.byName[name]; !ok {
			s.byName[name] = s.players[playerKey{name, p.Team}]
		}
	}

	for _, m := range matchups {
		if _, ok := s.byLabel[m.Label]; !ok {
			s.labels = append(s.labels, m.Label)
		}
		s.byLabel[m.Label] = append(s.byLabel[m.Label], m)
	}

	return s
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Teams returns the fixed team catalog.
func (s *Store) Teams() []string {
	return s.teams
}

// HasTeam reports whether the team is part of the catalog.
func (s *Store) HasTeam(team string) bool {
	return s.teamSet[team]
}

// Batters returns the team's batters in file order.
func (s *Store) Batters(team string) []domain.Player {
	return s.batters[team]
}

// Bowlers returns the team's bowlers in file order.
func (s *Store) Bowlers(team string) []domain.Player {
	return s.bowlers[team]
}

// PlayerByName returns the merged view of a player, case-insensitively.
func (s *Store) PlayerByName(ctx context.Context, name string) (domain.Player, error) {
	p, ok := s.byName[foldName(name)]
	if !ok {
		return domain.Player{}, fmt.Errorf("dataset: player %q: %w", name, domain.ErrNotFound)
	}
	return p, nil
}

// TeamSummary aggregates the team's dataset rows.
func (s *Store) TeamSummary(ctx context.Context, team string) (domain.TeamSummary, error) {
	if !s.teamSet[team] {
		return domain.TeamSummary{}, fmt.Errorf("dataset: team %q: %w", team, domain.ErrNotFound)
	}

	sum := domain.TeamSummary{Team: team}

	topRuns, topWickets := -1, -1
	for _, p := range s.batters[team] {
		sum.BatterCount++
		sum.TotalRuns += p.Batting.TotalRuns
		if p.Batting.TotalRuns > topRuns {
			topRuns = p.Batting.TotalRuns
			sum.TopRunScorer = p.Name
		}
	}
	for _, p := range s.bowlers[team] {
		sum.BowlerCount++
		sum.TotalWickets += p.Bowling.TotalWickets
		if p.Bowling.TotalWickets > topWickets {
			topWickets = p.Bowling.TotalWickets
			sum.TopWicketTaker = p.Name
		}
	}
	return sum, nil
}

// MatchupLabels returns the distinct matchup labels in file order.
func (s *Store) MatchupLabels() []string {
	return s.labels
}

// MatchupPlayers returns the rows recorded under the given matchup label.
func (s *Store) MatchupPlayers(ctx context.Context, label string) ([]domain.Matchup, error) {
	rows, ok := s.byLabel[label]
	if !ok {
		return nil, fmt.Errorf("dataset: matchup %q: %w", label, domain.ErrNotFound)
	}
	return rows, nil
}

// Compile-time interface check.
var _ domain.Dataset = (*Store)(nil)
