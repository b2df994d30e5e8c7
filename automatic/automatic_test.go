package automatic

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/difficulty"
)

var (
	playerA = Player{Name: "shallow", Difficulty: difficulty.Config{Depth: 1, Randomness: 0.5}}
	playerB = Player{Name: "deeper", Difficulty: difficulty.Config{Depth: 2, Randomness: 0.2}}
)

func fixedSeeds(n int) [][32]byte {
	seeds := make([][32]byte, n)
	for i := range seeds {
		seeds[i][0] = byte(i + 1)
	}
	return seeds
}

func TestPlayGame(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string, 1)
	r := NewGameRunner(playerA, playerB, logchan, true)
	res, err := r.PlayGame(context.Background(), fixedSeeds(1)[0], true)
	is.NoErr(err)
	is.Equal(res.AColor, board.Black)
	is.True(res.ADiscs+res.BDiscs <= board.NumSquares)
	is.True(res.ADiscs+res.BDiscs > 4)
	is.True(res.Turns >= res.ADiscs+res.BDiscs-4)

	line := <-logchan
	is.True(strings.HasPrefix(line, res.GameID+",shallow,deeper,Black,"))
}

func TestSameSeedSameGame(t *testing.T) {
	is := is.New(t)
	seed := fixedSeeds(3)[2]
	r1 := NewGameRunner(playerA, playerB, nil, false)
	r2 := NewGameRunner(playerA, playerB, nil, true)
	g1, err := r1.PlayGame(context.Background(), seed, false)
	is.NoErr(err)
	g2, err := r2.PlayGame(context.Background(), seed, false)
	is.NoErr(err)
	is.Equal(g1.ADiscs, g2.ADiscs)
	is.Equal(g1.BDiscs, g2.BDiscs)
	is.Equal(g1.Turns, g2.Turns)
}

func TestPlayGames(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	opts := Options{NumGames: 6, Threads: 3, Seeds: fixedSeeds(6), EvalCache: true}
	sum, err := PlayGames(context.Background(), playerA, playerB, opts, &buf)
	is.NoErr(err)
	is.Equal(sum.Games, 6)
	is.Equal(sum.AWins+sum.BWins+sum.Draws, 6)
	is.Equal(sum.AFirst, 3)
	is.Equal(sum.Margins.Len(), 6)
	is.Equal(strings.Count(buf.String(), "\n"), 7)
	is.True(strings.HasPrefix(buf.String(), logHeader))
	is.True(strings.Contains(sum.String(), "Games played: 6"))

	// The same seeds replay the same games, whatever the thread count.
	opts.Threads = 1
	again, err := PlayGames(context.Background(), playerA, playerB, opts, nil)
	is.NoErr(err)
	is.Equal(again.Margins.Values(), sum.Margins.Values())

	path := filepath.Join(t.TempDir(), "games.csv")
	is.NoErr(os.WriteFile(path, buf.Bytes(), 0o644))
	fromLog, err := AnalyzeLogFile(path)
	is.NoErr(err)
	is.Equal(fromLog.Games, 6)
	is.Equal(fromLog.AWins, sum.AWins)
	is.Equal(fromLog.Draws, sum.Draws)
	is.Equal(fromLog.PlayerA, "shallow")
}

func TestPlayGamesCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := PlayGames(ctx, playerA, playerB, Options{NumGames: 4, Threads: 2}, nil)
	is.True(err != nil)
	is.Equal(sum.Games, 0)
	is.Equal(IsPlaying.Value(), int64(0))
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	sum := Summarize([]GameResult{
		{PlayerA: "a", PlayerB: "b", AColor: board.Black, ADiscs: 40, BDiscs: 24},
		{PlayerA: "a", PlayerB: "b", AColor: board.White, ADiscs: 20, BDiscs: 44},
		{PlayerA: "a", PlayerB: "b", AColor: board.Black, ADiscs: 32, BDiscs: 32},
		{PlayerA: "a", PlayerB: "b", AColor: board.White, ADiscs: 36, BDiscs: 28},
	})
	is.Equal(sum.Games, 4)
	is.Equal(sum.AWins, 2)
	is.Equal(sum.BWins, 1)
	is.Equal(sum.Draws, 1)
	is.Equal(sum.AFirst, 2)
	// Black won games 1 and 2, game 3 drew.
	is.Equal(sum.FirstMoverScore, 2.5)
	is.Equal(sum.Margins.Mean(), 0.0)
}

func TestSeedsRoundTrip(t *testing.T) {
	is := is.New(t)
	seeds, err := GenerateSeeds(5)
	is.NoErr(err)
	is.True(seeds[0] != seeds[1])

	path := filepath.Join(t.TempDir(), "seeds.txt")
	is.NoErr(SaveSeeds(seeds, path))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)

	_, err = ReadSeeds(strings.NewReader("not-base64!\n"))
	is.True(err != nil)
	_, err = ReadSeeds(strings.NewReader("AAAA\n"))
	is.True(err != nil)
}

func TestLogLineQuotesNames(t *testing.T) {
	is := is.New(t)
	g := GameResult{
		GameID:  "g1",
		PlayerA: `depth 2, "greedy"`,
		PlayerB: "plain",
		AColor:  board.White,
		ADiscs:  30,
		BDiscs:  34,
		Turns:   60,
	}
	line := g.logLine()
	is.Equal(line, "g1,\"depth 2, \"\"greedy\"\"\",plain,White,30,34,60\n")

	path := filepath.Join(t.TempDir(), "games.csv")
	is.NoErr(os.WriteFile(path, []byte(logHeader+line), 0o644))
	sum, err := AnalyzeLogFile(path)
	is.NoErr(err)
	is.Equal(sum.Games, 1)
	is.Equal(sum.BWins, 1)
	is.Equal(sum.PlayerA, `depth 2, "greedy"`)
}
