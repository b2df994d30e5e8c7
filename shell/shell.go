package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/difficulty"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/history"
	"github.com/domino14/reversi/search"
	"github.com/domino14/reversi/turnplayer"
	"github.com/domino14/reversi/zobrist"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("no game in progress; use `new` to start one")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	presets difficulty.Presets
	weights equity.Weights
	options *turnplayer.GameOptions
	rng     *frand.RNG
	zobrist *zobrist.Zobrist
	noDelay bool
	version string

	game      *game.Session
	history   *history.History
	computer  *turnplayer.ComputerPlayer
	evaluator equity.Scorer
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController creates an interactive controller that reads from the
// terminal.
func NewShellController(cfg *config.Config, gitVersion string) (*ShellController, error) {
	sc, err := newController(cfg, nil)
	if err != nil {
		return nil, err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mreversi>\033[0m ",
		HistoryFile:     "/tmp/reversi-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stderr()
	sc.version = gitVersion
	return sc, nil
}

func newController(cfg *config.Config, out io.Writer) (*ShellController, error) {
	presets, err := cfg.Difficulties()
	if err != nil {
		return nil, err
	}
	weights := equity.DefaultWeights
	if path := cfg.GetString(config.ConfigWeightsFile); path != "" {
		weights, err = equity.LoadWeights(path)
		if err != nil {
			return nil, err
		}
	}
	opts := &turnplayer.GameOptions{}
	if err := opts.SetDefaults(cfg, presets); err != nil {
		return nil, err
	}
	var rng *frand.RNG
	if seed := cfg.GetUint64(config.ConfigSeed); seed != 0 {
		rng = search.NewSeededRNG(seed)
	} else {
		rng = frand.New()
	}
	z := &zobrist.Zobrist{}
	z.InitializeFrom(rng)
	return &ShellController{
		out:     out,
		config:  cfg,
		presets: presets,
		weights: weights,
		options: opts,
		rng:     rng,
		zobrist: z,
	}, nil
}

func (sc *ShellController) scorer() equity.Scorer {
	ev := equity.NewEvaluator(sc.weights)
	if !sc.config.GetBool(config.ConfigEvalCache) {
		return ev
	}
	return equity.NewCachedEvaluator(ev, sc.zobrist, 0)
}

// computerDifficulty is the difficulty the computer actually plays with.
func (sc *ShellController) computerDifficulty() difficulty.Config {
	if sc.noDelay {
		return sc.options.Difficulty.NoDelay()
	}
	return sc.options.Difficulty
}

func (sc *ShellController) IsPlaying() bool {
	return sc.game != nil && sc.game.Status() == game.Playing
}

func (sc *ShellController) IsComputerOnTurn() bool {
	return sc.IsPlaying() && sc.game.CurrentPlayer() == sc.options.ComputerColor()
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) handle(ctx context.Context, line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help", "h":
		return sc.help(cmd)
	case "new", "n":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "moves", "m":
		return sc.moves(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "pass":
		return sc.pass(cmd)
	case "aiplay", "ai":
		return sc.aiplay(ctx, cmd)
	case "hint":
		return sc.hint(cmd)
	case "eval":
		return sc.eval(cmd)
	case "undo", "u":
		return sc.undo(cmd)
	case "list", "history":
		return sc.list(cmd)
	case "difficulty", "diff":
		return sc.difficulty(cmd)
	case "autoplay":
		return sc.autoplay(ctx, cmd)
	default:
		// A bare position plays it.
		if len(cmd.args) == 0 && len(cmd.options) == 0 && sc.IsPlaying() {
			if _, err := turnplayer.ParseMove(sc.game.CurrentPlayer(), []string{cmd.cmd}); err == nil {
				return sc.play(&shellcmd{cmd: "play", args: []string{cmd.cmd}})
			}
		}
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

// Execute runs a single command line and prints its output.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.handle(context.Background(), line)
	if err != nil {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sc.version != "" {
		sc.showMessage("reversi " + sc.version)
	}
	sc.showMessage("Type `help` for a list of commands, `new` to start a game.")

	for {
		if sc.IsComputerOnTurn() {
			err := sc.computerMove(ctx)
			if err == nil {
				continue
			}
			sc.showError(err)
		}

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.handle(ctx, line)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup releases anything the controller still holds.
func (sc *ShellController) Cleanup() {
	if sc.computer != nil {
		res := sc.computer.LastResult()
		log.Debug().Int("last-nodes", res.Nodes).Msg("shell-cleanup")
	}
	if c, ok := sc.evaluator.(*equity.CachedEvaluator); ok {
		hits, misses := c.Stats()
		log.Debug().Uint64("hits", hits).Uint64("misses", misses).Msg("eval-cache-stats")
	}
}
