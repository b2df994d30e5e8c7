package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// Options controls a batch of games.
type Options struct {
	NumGames int
	Threads  int
	// Seeds, if given, are used in order (wrapping around). Otherwise
	// fresh seeds are generated.
	Seeds     [][32]byte
	EvalCache bool
}

// PlayGames plays opts.NumGames games between a and b, alternating who
// has Black, spread over opts.Threads goroutines. One CSV line per game
// is written to logWriter if it is not nil. If ctx ends early the games
// finished so far are summarized and ctx's error is returned.
func PlayGames(ctx context.Context, a, b Player, opts Options, logWriter io.Writer) (Summary, error) {
	if IsPlaying.Value() > 0 {
		return Summary{}, errors.New("games are already being played, please wait till complete")
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	threads := max(opts.Threads, 1)
	seeds := opts.Seeds
	if len(seeds) == 0 {
		var err error
		seeds, err = GenerateSeeds(opts.NumGames)
		if err != nil {
			return Summary{}, err
		}
	}
	log.Debug().Msgf("Starting %v games, %v threads", opts.NumGames, threads)

	CVCCounter.Set(0)
	jobs := make(chan int, 100)
	var logChan chan string
	logDone := make(chan error, 1)
	if logWriter != nil {
		logChan = make(chan string, 100)
		go func() {
			_, err := io.WriteString(logWriter, logHeader)
			for msg := range logChan {
				if err == nil {
					_, err = io.WriteString(logWriter, msg)
				}
			}
			logDone <- err
		}()
	} else {
		logDone <- nil
	}

	results := make([]GameResult, opts.NumGames)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < opts.NumGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return gctx.Err()
			}
		}
		return nil
	})
	for t := 0; t < threads; t++ {
		g.Go(func() error {
			r := NewGameRunner(a, b, logChan, opts.EvalCache)
			for i := range jobs {
				res, err := r.PlayGame(gctx, seeds[i%len(seeds)], i%2 == 0)
				if err != nil {
					return err
				}
				results[i] = res
				CVCCounter.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	if logChan != nil {
		close(logChan)
	}
	if logErr := <-logDone; err == nil {
		err = logErr
	}
	log.Info().Int64("games", CVCCounter.Value()).Msg("All games finished.")

	played := lo.Filter(results, func(r GameResult, _ int) bool {
		return r.GameID != ""
	})
	return Summarize(played), err
}
