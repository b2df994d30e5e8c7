package turnplayer

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/board"
	"github.com/domino14/reversi/config"
	"github.com/domino14/reversi/difficulty"
)

// GameOptions are the choices made when starting a human-vs-computer game.
type GameOptions struct {
	HumanColor    board.Player
	DifficultyTag string
	Difficulty    difficulty.Config
}

func (opts *GameOptions) SetDefaults(cfg *config.Config, presets difficulty.Presets) error {
	if opts.HumanColor == 0 {
		if err := opts.SetHumanColor(cfg.GetString(config.ConfigHumanColor)); err != nil {
			return err
		}
		log.Debug().Str("human-color", opts.HumanColor.String()).Msg("using-default-color")
	}
	if opts.DifficultyTag == "" {
		if err := opts.SetDifficulty(cfg.GetString(config.ConfigDifficulty), presets); err != nil {
			return err
		}
		log.Debug().Str("difficulty", opts.DifficultyTag).Msg("using-default-difficulty")
	}
	return nil
}

func (opts *GameOptions) SetHumanColor(color string) error {
	p, err := board.PlayerFromString(color)
	if err != nil {
		return fmt.Errorf("%v is not a valid color; use black or white", color)
	}
	opts.HumanColor = p
	return nil
}

func (opts *GameOptions) SetDifficulty(tag string, presets difficulty.Presets) error {
	c, err := presets.Get(tag)
	if err != nil {
		return err
	}
	opts.DifficultyTag = tag
	opts.Difficulty = c
	return nil
}

// ComputerColor is the side the computer plays.
func (opts *GameOptions) ComputerColor() board.Player {
	return opts.HumanColor.Opponent()
}
