// Package config loads application settings from flags, REVERSI_*
// environment variables and defaults, in that order of precedence.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/reversi/difficulty"
)

const (
	ConfigDebug           = "debug"
	ConfigDifficulty      = "difficulty"
	ConfigDifficultyFile  = "difficulty-file"
	ConfigWeightsFile     = "weights-file"
	ConfigHumanColor      = "human-color"
	ConfigSeed            = "seed"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigEvalCache       = "eval-cache"
	ConfigCPUProfile      = "cpu-profile"
)

type Config struct {
	viper.Viper
	args []string
}

// DefaultConfig returns a configuration with only the defaults applied.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigDifficulty, difficulty.Intermediate)
	c.SetDefault(ConfigDifficultyFile, "")
	c.SetDefault(ConfigWeightsFile, "")
	c.SetDefault(ConfigHumanColor, "black")
	c.SetDefault(ConfigSeed, 0)
	c.SetDefault(ConfigAutoplayThreads, 4)
	c.SetDefault(ConfigEvalCache, true)
	c.SetDefault(ConfigCPUProfile, "")
}

// Load parses args and the environment into c.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("reversi", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigDifficulty, difficulty.Intermediate, "computer difficulty: "+strings.Join(difficulty.Tags(), ", "))
	fs.String(ConfigDifficultyFile, "", "YAML file of difficulty preset overrides")
	fs.String(ConfigWeightsFile, "", "YAML file of evaluator weights")
	fs.String(ConfigHumanColor, "black", "the color the human plays: black or white")
	fs.Uint64(ConfigSeed, 0, "random seed for the computer player; 0 picks one at random")
	fs.Int(ConfigAutoplayThreads, 4, "number of worker goroutines for autoplay")
	fs.Bool(ConfigEvalCache, true, "cache static evaluations during search")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	// Everything from the first positional argument on is a shell command
	// with its own -key value options.
	fs.SetInterspersed(false)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("reversi")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Difficulties returns the difficulty presets, with the overrides file
// applied if one is configured.
func (c *Config) Difficulties() (difficulty.Presets, error) {
	path := c.GetString(ConfigDifficultyFile)
	if path == "" {
		return difficulty.DefaultPresets(), nil
	}
	return difficulty.LoadPresets(path)
}
