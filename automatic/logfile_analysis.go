package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/stats"
)

// Summary aggregates a batch of games from player A's side.
type Summary struct {
	PlayerA string
	PlayerB string
	Games   int
	AWins   int
	BWins   int
	Draws   int
	// AFirst counts games in which A had Black (and so moved first).
	AFirst int
	// FirstMoverScore counts wins for whoever had Black, draws as half.
	FirstMoverScore float64
	Margins         stats.Sample
}

// Summarize builds a Summary from finished games.
func Summarize(results []GameResult) Summary {
	var s Summary
	for _, r := range results {
		if s.Games == 0 {
			s.PlayerA, s.PlayerB = r.PlayerA, r.PlayerB
		}
		s.Games++
		m := r.Margin()
		s.Margins.Push(float64(m))
		if r.AColor == board.Black {
			s.AFirst++
		}
		switch {
		case m > 0:
			s.AWins++
			if r.AColor == board.Black {
				s.FirstMoverScore++
			}
		case m < 0:
			s.BWins++
			if r.AColor == board.White {
				s.FirstMoverScore++
			}
		default:
			s.Draws++
			s.FirstMoverScore += 0.5
		}
	}
	return s
}

func pct(n, of float64) float64 {
	if of == 0 {
		return 0
	}
	return 100.0 * n / of
}

func (s Summary) String() string {
	var sb strings.Builder
	g := float64(s.Games)
	aScore := float64(s.AWins) + 0.5*float64(s.Draws)
	fmt.Fprintf(&sb, "Games played: %d\n", s.Games)
	fmt.Fprintf(&sb, "%v wins: %d, %v wins: %d, draws: %d\n", s.PlayerA, s.AWins, s.PlayerB, s.BWins, s.Draws)
	fmt.Fprintf(&sb, "%v score: %.1f (%.3f%%)\n", s.PlayerA, aScore, pct(aScore, g))
	fmt.Fprintf(&sb, "%v went first: %d (%.3f%%)\n", s.PlayerA, s.AFirst, pct(float64(s.AFirst), g))
	fmt.Fprintf(&sb, "Player who went first wins: %.1f (%.3f%%)\n", s.FirstMoverScore, pct(s.FirstMoverScore, g))
	lo, hi := s.Margins.ConfidenceInterval(95)
	fmt.Fprintf(&sb, "%v disc margin: mean %.3f  stdev %.3f  95%% CI [%.3f, %.3f]\n",
		s.PlayerA, s.Margins.Mean(), s.Margins.Stdev(), lo, hi)
	if s.Games > 1 {
		sb.WriteString("Margin histogram:\n")
		s.Margins.Fprint(&sb, 10, 40)
	}
	return sb.String()
}

// AnalyzeLogFile reads a game log written by PlayGames and summarizes it.
func AnalyzeLogFile(filepath string) (Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return Summary{}, err
	}
	defer file.Close()
	r := csv.NewReader(file)

	// Record looks like:
	// gameID,playerA,playerB,aColor,aDiscs,bDiscs,turns
	var results []GameResult
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Summary{}, err
		}
		if record[0] == "gameID" {
			continue
		}
		res, err := resultFromRecord(record)
		if err != nil {
			return Summary{}, fmt.Errorf("game %v: %w", record[0], err)
		}
		results = append(results, res)
	}
	return Summarize(results), nil
}

func resultFromRecord(record []string) (GameResult, error) {
	if len(record) != 7 {
		return GameResult{}, fmt.Errorf("expected 7 fields, got %d", len(record))
	}
	color, err := board.PlayerFromString(record[3])
	if err != nil {
		return GameResult{}, err
	}
	nums := make([]int, 3)
	for i := range nums {
		nums[i], err = strconv.Atoi(record[4+i])
		if err != nil {
			return GameResult{}, err
		}
	}
	return GameResult{
		GameID:  record[0],
		PlayerA: record[1],
		PlayerB: record[2],
		AColor:  color,
		ADiscs:  nums[0],
		BDiscs:  nums[1],
		Turns:   nums[2],
	}, nil
}
