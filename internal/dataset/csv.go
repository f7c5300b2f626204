package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/domain"
)

// Column names as they appear in the source CSV exports. The percentage
// columns carry either a "%"-suffixed string or a bare numeric; the count
// columns are plain integers and may be absent in older exports.
const (
	colBatterName    = "BatsmanName"
	colBatterTeam    = "Team"
	colBatterInnings = "Total.Innings"
	colBatterRuns    = "Total.Runs"

	colCntRuns10    = "No.of.times.BatsmanName.scored.more.than.10.runs"
	colCntRuns20    = "No.of.times.BatsmanName.scored.more.than.20.runs"
	colCntHitSix    = "No.of.Times.BatsmanName.Hit.Atleast.One.Six"
	colCntTopScorer = "Top.Team.Runs.Scorer"

	colPctRuns10    = "Percentage.of.No.of.times.BatsmanName.scored.more.than.10.runs"
	colPctRuns20    = "Percentage.of.No.of.times.BatsmanName.scored.more.than.20.runs"
	colPctHitSix    = "Percentage.of.No.of.Times.BatsmanName.Hit.Atleast.One.Six"
	colPctTopScorer = "Percentage.of.Top.Team.Runs.Scorer"

	colBowlerName    = "BowlerName"
	colBowlerTeam    = "bowling_team"
	colBowlerInnings = "Innings.by.Bowler"
	colBowlerWickets = "Total.Wickets"

	colCntWicket1    = "No.of.times.BowlerName.Took.Atleast.1.Wicket"
	colCntWicket2    = "No.of.times.BowlerName.Took.Atleast.2.Wicket"
	colCntTopWickets = "Top.Wicket.Taker.for.Team"

	colPctWicket1    = "Percentage.of.No.of.times.BowlerName.Took.Atleast.1.Wicket"
	colPctWicket2    = "Percentage.of.No.of.times.BowlerName.Took.Atleast.2.Wicket"
	colPctTopWickets = "Percentage.of.Top.Wicket.Taker.for.Team"

	colMatchupPlayer = "Player"
	colMatchupTeam   = "Team"
	colMatchupLabel  = "Matchup"
)

// header maps column names to their index within one CSV file.
type header map[string]int

func readHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

// require returns the index of a mandatory column.
func (h header) require(col string) (int, error) {
	i, ok := h[col]
	if !ok {
		return 0, fmt.Errorf("dataset: missing column %q", col)
	}
	return i, nil
}

// optional returns the index of a column, or -1 when the export lacks it.
func (h header) optional(col string) int {
	i, ok := h[col]
	if !ok {
		return -1
	}
	return i
}

// parsePercent normalizes a percentage cell to a float in [0,100]. Accepted
// forms: "35.5%", "35.5", and the empty cell (treated as the zero sentinel).
// Both spellings of the same value normalize to the identical float.
func parsePercent(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("dataset: bad percentage %q: %w", raw, err)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("dataset: percentage %q out of range [0,100]", raw)
	}
	return v, nil
}

// parseCount reads a non-negative integer cell. Empty cells count as zero.
func parseCount(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("dataset: bad count %q: %w", raw, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("dataset: negative count %q", raw)
	}
	return n, nil
}

// cell returns the trimmed value at index i, or "" when i is -1 (optional
// column absent from this export).
func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// marketStat assembles one MarketStat from a percentage cell and an optional
// count cell.
func marketStat(record []string, pctIdx, cntIdx int) (domain.MarketStat, error) {
	pct, err := parsePercent(cell(record, pctIdx))
	if err != nil {
		return domain.MarketStat{}, err
	}
	cnt, err := parseCount(cell(record, cntIdx))
	if err != nil {
		return domain.MarketStat{}, err
	}
	return domain.MarketStat{Percentage: pct, Occurrences: cnt}, nil
}

// parseBatters reads the batters CSV into players carrying batting stats.
func parseBatters(src io.Reader) ([]domain.Player, error) {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: batters header: %w", err)
	}
	h := readHeader(head)

	iName, err := h.require(colBatterName)
	if err != nil {
		return nil, err
	}
	iTeam, err := h.require(colBatterTeam)
	if err != nil {
		return nil, err
	}
	iInnings, err := h.require(colBatterInnings)
	if err != nil {
		return nil, err
	}
	iRuns, err := h.require(colBatterRuns)
	if err != nil {
		return nil, err
	}
	pctIdx := [4]int{}
	for k, col := range []string{colPctRuns10, colPctRuns20, colPctHitSix, colPctTopScorer} {
		if pctIdx[k], err = h.require(col); err != nil {
			return nil, err
		}
	}
	cntIdx := [4]int{
		h.optional(colCntRuns10),
		h.optional(colCntRuns20),
		h.optional(colCntHitSix),
		h.optional(colCntTopScorer),
	}

	var players []domain.Player
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: batters line %d: %w", line, err)
		}

		name, team := cell(record, iName), cell(record, iTeam)
		if name == "" || team == "" {
			return nil, fmt.Errorf("dataset: batters line %d: empty player or team name", line)
		}
		innings, err := parseCount(cell(record, iInnings))
		if err != nil {
			return nil, fmt.Errorf("dataset: batters line %d: %w", line, err)
		}
		runs, err := parseCount(cell(record, iRuns))
		if err != nil {
			return nil, fmt.Errorf("dataset: batters line %d: %w", line, err)
		}

		stats := &domain.BattingStats{TotalInnings: innings, TotalRuns: runs}
		dst := [4]*domain.MarketStat{&stats.Runs10Plus, &stats.Runs20Plus, &stats.HitSix, &stats.TopTeamScorer}
		for k := range dst {
			ms, err := marketStat(record, pctIdx[k], cntIdx[k])
			if err != nil {
				return nil, fmt.Errorf("dataset: batters line %d: %w", line, err)
			}
			*dst[k] = ms
		}

		players = append(players, domain.Player{Name: name, Team: team, Batting: stats})
	}
	return players, nil
}

// parseBowlers reads the bowlers CSV into players carrying bowling stats.
func parseBowlers(src io.Reader) ([]domain.Player, error) {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: bowlers header: %w", err)
	}
	h := readHeader(head)

	iName, err := h.require(colBowlerName)
	if err != nil {
		return nil, err
	}
	iTeam, err := h.require(colBowlerTeam)
	if err != nil {
		return nil, err
	}
	iInnings, err := h.require(colBowlerInnings)
	if err != nil {
		return nil, err
	}
	iWickets, err := h.require(colBowlerWickets)
	if err != nil {
		return nil, err
	}
	pctIdx := [3]int{}
	for k, col := range []string{colPctWicket1, colPctWicket2, colPctTopWickets} {
		if pctIdx[k], err = h.require(col); err != nil {
			return nil, err
		}
	}
	cntIdx := [3]int{
		h.optional(colCntWicket1),
		h.optional(colCntWicket2),
		h.optional(colCntTopWickets),
	}

	var players []domain.Player
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: bowlers line %d: %w", line, err)
		}

		name, team := cell(record, iName), cell(record, iTeam)
		if name == "" || team == "" {
			return nil, fmt.Errorf("dataset: bowlers line %d: empty player or team name", line)
		}
		innings, err := parseCount(cell(record, iInnings))
		if err != nil {
			return nil, fmt.Errorf("dataset: bowlers line %d: %w", line, err)
		}
		wickets, err := parseCount(cell(record, iWickets))
		if err != nil {
			return nil, fmt.Errorf("dataset: bowlers line %d: %w", line, err)
		}

		stats := &domain.BowlingStats{TotalInnings: innings, TotalWickets: wickets}
		dst := [3]*domain.MarketStat{&stats.Wicket1Plus, &stats.Wicket2Plus, &stats.TopTeamWickets}
		for k := range dst {
			ms, err := marketStat(record, pctIdx[k], cntIdx[k])
			if err != nil {
				return nil, fmt.Errorf("dataset: bowlers line %d: %w", line, err)
			}
			*dst[k] = ms
		}

		players = append(players, domain.Player{Name: name, Team: team, Bowling: stats})
	}
	return players, nil
}

// parseMatchups reads the matchups CSV.
func parseMatchups(src io.Reader) ([]domain.Matchup, error) {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: matchups header: %w", err)
	}
	h := readHeader(head)

	iPlayer, err := h.require(colMatchupPlayer)
	if err != nil {
		return nil, err
	}
	iTeam, err := h.require(colMatchupTeam)
	if err != nil {
		return nil, err
	}
	iLabel, err := h.require(colMatchupLabel)
	if err != nil {
		return nil, err
	}

	var rows []domain.Matchup
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: matchups line %d: %w", line, err)
		}

		row := domain.Matchup{
			Player: cell(record, iPlayer),
			Team:   cell(record, iTeam),
			Label:  cell(record, iLabel),
		}
		if row.Player == "" || row.Label == "" {
			return nil, fmt.Errorf("dataset: matchups line %d: empty player or matchup label", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
