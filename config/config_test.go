package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/reversi/difficulty"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetString(ConfigDifficulty), difficulty.Intermediate)
	is.Equal(c.GetString(ConfigHumanColor), "black")
	is.Equal(c.GetInt(ConfigAutoplayThreads), 4)
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.GetBool(ConfigEvalCache), true)
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--difficulty", "expert", "--debug", "--seed", "99", "--autoplay-threads=2"}))
	is.Equal(c.GetString(ConfigDifficulty), difficulty.Expert)
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.GetUint64(ConfigSeed), uint64(99))
	is.Equal(c.GetInt(ConfigAutoplayThreads), 2)
	is.Equal(c.GetString(ConfigHumanColor), "black")
}

func TestEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("REVERSI_HUMAN_COLOR", "white")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString(ConfigHumanColor), "white")
}

func TestBadFlag(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.True(c.Load([]string{"--no-such-flag"}) != nil)
}

func TestDifficulties(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	ps, err := c.Difficulties()
	is.NoErr(err)
	is.Equal(ps.Tags(), difficulty.Tags())

	path := filepath.Join(t.TempDir(), "d.yaml")
	is.NoErr(os.WriteFile(path, []byte("beginner:\n  depth: 1\n"), 0o644))
	c.Set(ConfigDifficultyFile, path)
	ps, err = c.Difficulties()
	is.NoErr(err)
	b, err := ps.Get(difficulty.Beginner)
	is.NoErr(err)
	is.Equal(b.Depth, 1)
}

func TestPositionalArgs(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--debug", "autoplay", "-games", "10"}))
	is.Equal(c.Args(), []string{"autoplay", "-games", "10"})
}

func TestFlagsAfterCommandBelongToTheCommand(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--seed", "7", "autoplay", "-a", "beginner", "--debug", "true"}))
	is.Equal(c.GetUint64(ConfigSeed), uint64(7))
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.Args(), []string{"autoplay", "-a", "beginner", "--debug", "true"})
}
