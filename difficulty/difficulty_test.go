package difficulty

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func TestPresets(t *testing.T) {
	is := is.New(t)
	is.Equal(Tags(), []string{Beginner, Intermediate, Advanced, Expert})

	c, err := FromTag(Beginner)
	is.NoErr(err)
	is.Equal(c, Config{Depth: 2, Randomness: 0.3,
		ThinkingTimeMin: 500 * time.Millisecond, ThinkingTimeMax: time.Second})

	c, err = FromTag(Expert)
	is.NoErr(err)
	is.Equal(c.Depth, 8)
	is.Equal(c.Randomness, 0.0)

	for _, tag := range Tags() {
		c, err := FromTag(tag)
		is.NoErr(err)
		is.NoErr(c.Validate())
	}
}

func TestUnknownTag(t *testing.T) {
	is := is.New(t)
	_, err := FromTag("grandmaster")
	is.True(errors.Is(err, ErrUnknownDifficulty))
}

func TestPresetsAreIndependent(t *testing.T) {
	is := is.New(t)
	ps := DefaultPresets()
	ps.byTag[Beginner] = Config{Depth: 99}
	c, err := FromTag(Beginner)
	is.NoErr(err)
	is.Equal(c.Depth, 2)
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	is.True(Config{Depth: 0}.Validate() != nil)
	is.True(Config{Depth: 1, Randomness: 1.5}.Validate() != nil)
	is.True(Config{Depth: 1, Randomness: -0.1}.Validate() != nil)
	is.True(Config{Depth: 1, ThinkingTimeMin: time.Second}.Validate() != nil)
	is.NoErr(Config{Depth: 1, Randomness: 1}.Validate())
}

func TestThinkingDelay(t *testing.T) {
	is := is.New(t)
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	c, _ := FromTag(Intermediate)
	for i := 0; i < 1000; i++ {
		d := c.ThinkingDelay(rng)
		is.True(d >= c.ThinkingTimeMin)
		is.True(d <= c.ThinkingTimeMax)
	}
	is.Equal(c.NoDelay().ThinkingDelay(rng), time.Duration(0))
	fixed := Config{Depth: 1, ThinkingTimeMin: time.Second, ThinkingTimeMax: time.Second}
	is.Equal(fixed.ThinkingDelay(rng), time.Second)
}

func TestLoadPresets(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "difficulty.yaml")
	doc := `
expert:
  depth: 10
blitz:
  depth: 3
  randomness: 0.05
  thinking_time_max: 200ms
`
	is.NoErr(os.WriteFile(path, []byte(doc), 0o644))
	ps, err := LoadPresets(path)
	is.NoErr(err)

	c, err := ps.Get(Expert)
	is.NoErr(err)
	is.Equal(c.Depth, 10)
	is.Equal(c.ThinkingTimeMin, 1200*time.Millisecond)

	c, err = ps.Get("blitz")
	is.NoErr(err)
	is.Equal(c, Config{Depth: 3, Randomness: 0.05, ThinkingTimeMax: 200 * time.Millisecond})
	is.Equal(ps.Tags(), []string{Beginner, "blitz", Intermediate, Advanced, Expert})

	// built-ins are untouched
	c, _ = FromTag(Expert)
	is.Equal(c.Depth, 8)
}

func TestParsePresetsRejectsInvalid(t *testing.T) {
	is := is.New(t)
	_, err := ParsePresets([]byte("nodepth:\n  randomness: 0.2\n"))
	is.True(err != nil)
	_, err = ParsePresets([]byte("beginner: [1, 2]\n"))
	is.True(err != nil)
}
