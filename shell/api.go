package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/reversi/automatic"
	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/equity"
	"github.com/domino14/reversi/game"
	"github.com/domino14/reversi/history"
	"github.com/domino14/reversi/search"
	"github.com/domino14/reversi/turnplayer"
)

func intOption(cmd *shellcmd, key string, defaultI int) (int, error) {
	v, ok := cmd.options[key]
	if !ok {
		return defaultI, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("option -%s: %w", key, err)
	}
	return i, nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	if len(cmd.args) == 0 {
		usage(&sb)
	} else {
		usageTopic(&sb, cmd.args[0])
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	opts := *sc.options
	if c, ok := cmd.options["color"]; ok {
		if err := opts.SetHumanColor(c); err != nil {
			return nil, err
		}
	}
	if d, ok := cmd.options["difficulty"]; ok {
		if err := opts.SetDifficulty(d, sc.presets); err != nil {
			return nil, err
		}
	}
	*sc.options = opts

	sc.game = game.NewSession()
	sc.history = history.Attach(sc.game)
	sc.evaluator = sc.scorer()
	solver := search.NewSolver(sc.evaluator, sc.rng)
	sc.computer = turnplayer.NewComputerPlayer(solver, sc.computerDifficulty(), sc.rng)
	log.Info().Str("uid", sc.game.UID()).
		Str("human", opts.HumanColor.String()).
		Str("difficulty", opts.DifficultyTag).
		Msg("new-game")

	var sb strings.Builder
	fmt.Fprintf(&sb, "You play %v against a %v computer.\n", opts.HumanColor, opts.DifficultyTag)
	sb.WriteString(sc.game.ToDisplayText())
	return msg(sb.String()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	legal := sc.game.LegalMoves()
	strs := lo.Map(legal, func(p board.Position, _ int) string { return p.String() })
	return msg(fmt.Sprintf("%v has %d legal moves: %s",
		sc.game.CurrentPlayer(), len(legal), strings.Join(strs, " "))), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("play <position>, e.g. play d3")
	}
	if sc.IsComputerOnTurn() {
		return nil, errors.New("it is the computer's turn; use `ai` to let it move")
	}
	m, err := turnplayer.ParseMove(sc.game.CurrentPlayer(), cmd.args)
	if err != nil {
		return nil, err
	}
	if err := turnplayer.ApplyParsed(sc.game, m); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	return sc.play(&shellcmd{cmd: "play", args: []string{"pass"}})
}

// computerMove lets the computer play for whichever side is on turn.
func (sc *ShellController) computerMove(ctx context.Context) error {
	resp, err := sc.aiplay(ctx, nil)
	if err != nil {
		return err
	}
	sc.showMessage(resp.message)
	return nil
}

func (sc *ShellController) aiplay(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	p := sc.game.CurrentPlayer()
	if err := sc.computer.PlayTurn(ctx, sc.game); err != nil {
		return nil, err
	}
	res := sc.computer.LastResult()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Computer (%v) plays %v", p, sc.game.LastMove().ShortDescription())
	switch {
	case res.Forced:
		sb.WriteString(" (forced)")
	case res.Randomized:
		sb.WriteString(" (random)")
	default:
		fmt.Fprintf(&sb, " (score %.2f, %d nodes)", res.Score, res.Nodes)
	}
	sb.WriteString("\n")
	sb.WriteString(sc.game.ToDisplayText())
	return msg(sb.String()), nil
}

func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	cfg := sc.options.Difficulty.NoDelay()
	cfg.Randomness = 0
	depth, err := intOption(cmd, "depth", cfg.Depth)
	if err != nil {
		return nil, err
	}
	cfg.Depth = depth
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	solver := search.NewSolver(sc.evaluator, sc.rng)
	res, ok := solver.Search(sc.game.Board(), sc.game.CurrentPlayer(), cfg)
	if !ok {
		return msg("No legal moves."), nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Best move for %v at depth %d: %v (score %.2f)\n",
		sc.game.CurrentPlayer(), cfg.Depth, res.Move, res.Score)
	if len(res.Variation) > 0 {
		fmt.Fprintf(&sb, "Line: %s\n", res.VariationString())
	}
	fmt.Fprintf(&sb, "Nodes: %d in %v", res.Nodes, res.Elapsed)
	return msg(sb.String()), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	ev := equity.NewEvaluator(sc.weights)
	b := sc.game.Board()
	p := sc.game.CurrentPlayer()
	breakdown := ev.Breakdown(b, p)
	keys := lo.Keys(breakdown)
	slices.Sort(keys)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Evaluation for %v:\n", p)
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %-10s %8.2f\n", k, breakdown[k])
	}
	fmt.Fprintf(&sb, "  %-10s %8.2f", "total", ev.Score(b, p))
	return msg(sb.String()), nil
}

// undoCount is the number of snapshots to drop to get back to the human's
// previous turn.
func (sc *ShellController) undoCount() int {
	for i := sc.history.Len() - 2; i >= 0; i-- {
		snap, _ := sc.history.At(i)
		if snap.ToMove == sc.options.HumanColor && snap.Status == game.Playing {
			return sc.history.Len() - 1 - i
		}
	}
	return 0
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if sc.history == nil {
		return nil, errNoGame
	}
	n := sc.undoCount()
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	if n == 0 {
		return nil, errors.New("nothing to undo")
	}
	snap, err := sc.history.Undo(n)
	if err != nil {
		return nil, err
	}
	sc.game.Restore(snap)
	log.Debug().Int("moves", n).Int("turn", snap.Turn).Msg("undo")
	return msg(fmt.Sprintf("Took back %d moves.\n%s", n, sc.game.ToDisplayText())), nil
}

func (sc *ShellController) list(cmd *shellcmd) (*Response, error) {
	if sc.history == nil {
		return nil, errNoGame
	}
	mvs := sc.history.Moves()
	if len(mvs) == 0 {
		return msg("No moves yet."), nil
	}
	return msg(strings.Join(mvs, " ")), nil
}

func (sc *ShellController) difficulty(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		var sb strings.Builder
		for _, tag := range sc.presets.Tags() {
			c, _ := sc.presets.Get(tag)
			marker := "  "
			if tag == sc.options.DifficultyTag {
				marker = "* "
			}
			fmt.Fprintf(&sb, "%s%-13s depth %d  randomness %.2f  thinking %v-%v\n",
				marker, tag, c.Depth, c.Randomness, c.ThinkingTimeMin, c.ThinkingTimeMax)
		}
		return msg(strings.TrimRight(sb.String(), "\n")), nil
	}
	if err := sc.options.SetDifficulty(cmd.args[0], sc.presets); err != nil {
		return nil, err
	}
	if sc.computer != nil {
		sc.computer.SetDifficulty(sc.computerDifficulty())
	}
	return msg("Difficulty set to " + sc.options.DifficultyTag), nil
}

func (sc *ShellController) autoplay(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		if cmd.args[0] != "analyze" || len(cmd.args) != 2 {
			return nil, errors.New("autoplay analyze <logfile>")
		}
		summary, err := automatic.AnalyzeLogFile(cmd.args[1])
		if err != nil {
			return nil, err
		}
		return msg(summary.String()), nil
	}

	numGames, err := intOption(cmd, "games", 100)
	if err != nil {
		return nil, err
	}
	threads, err := intOption(cmd, "threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	if numGames < 1 {
		return nil, errors.New("-games must be at least 1")
	}
	players := [2]automatic.Player{}
	for i, key := range []string{"a", "b"} {
		tag := sc.options.DifficultyTag
		if t, ok := cmd.options[key]; ok {
			tag = t
		}
		c, err := sc.presets.Get(tag)
		if err != nil {
			return nil, err
		}
		players[i] = automatic.Player{
			Name:       strings.ToUpper(key) + "-" + tag,
			Difficulty: c,
			Weights:    sc.weights,
		}
	}

	opts := automatic.Options{
		NumGames:  numGames,
		Threads:   threads,
		EvalCache: sc.config.GetBool(config.ConfigEvalCache),
	}
	if path, ok := cmd.options["seeds"]; ok {
		opts.Seeds, err = automatic.LoadSeeds(path)
		if err != nil {
			return nil, err
		}
	}
	var logWriter io.Writer
	if path, ok := cmd.options["logfile"]; ok {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		logWriter = f
	}

	log.Info().Int("games", numGames).Int("threads", threads).
		Str("a", players[0].Name).Str("b", players[1].Name).Msg("autoplay-starting")
	summary, err := automatic.PlayGames(ctx, players[0], players[1], opts, logWriter)
	if err != nil {
		return nil, err
	}
	return msg(summary.String()), nil
}
