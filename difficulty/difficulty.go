// Package difficulty maps difficulty tags to the immutable search settings
// the computer opponent plays with.
package difficulty

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnknownDifficulty is returned for a tag with no preset.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
	Expert       = "expert"
)

// Config is the search configuration for one difficulty level. It is a
// value; pass it around, never share a pointer to it.
type Config struct {
	// Depth is the search depth in plies.
	Depth int `yaml:"depth" json:"depth"`
	// Randomness is the probability of playing a uniformly random legal
	// move instead of searching.
	Randomness float64 `yaml:"randomness" json:"randomness"`
	// ThinkingTimeMin and ThinkingTimeMax bound the cosmetic delay before
	// the computer moves.
	ThinkingTimeMin time.Duration `yaml:"thinking_time_min" json:"thinking_time_min"`
	ThinkingTimeMax time.Duration `yaml:"thinking_time_max" json:"thinking_time_max"`
}

// Validate checks that c describes a usable search.
func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", c.Depth)
	}
	if c.Randomness < 0 || c.Randomness > 1 {
		return fmt.Errorf("randomness must be in [0, 1], got %v", c.Randomness)
	}
	if c.ThinkingTimeMin < 0 || c.ThinkingTimeMin > c.ThinkingTimeMax {
		return fmt.Errorf("bad thinking time range [%v, %v]", c.ThinkingTimeMin, c.ThinkingTimeMax)
	}
	return nil
}

// Rand is the subset of a random source that ThinkingDelay draws from.
// *frand.RNG satisfies it.
type Rand interface {
	Uint64n(n uint64) uint64
}

// ThinkingDelay draws a delay uniformly from [ThinkingTimeMin,
// ThinkingTimeMax].
func (c Config) ThinkingDelay(rng Rand) time.Duration {
	span := int64(c.ThinkingTimeMax - c.ThinkingTimeMin)
	if span <= 0 {
		return c.ThinkingTimeMin
	}
	return c.ThinkingTimeMin + time.Duration(rng.Uint64n(uint64(span)+1))
}

// NoDelay returns a copy of c that moves instantly. The automatic runner
// uses it.
func (c Config) NoDelay() Config {
	c.ThinkingTimeMin = 0
	c.ThinkingTimeMax = 0
	return c
}

// Presets is an immutable set of named difficulty configurations.
type Presets struct {
	byTag map[string]Config
}

var builtin = map[string]Config{
	Beginner: {
		Depth: 2, Randomness: 0.3,
		ThinkingTimeMin: 500 * time.Millisecond, ThinkingTimeMax: time.Second,
	},
	Intermediate: {
		Depth: 4, Randomness: 0.1,
		ThinkingTimeMin: 800 * time.Millisecond, ThinkingTimeMax: 1500 * time.Millisecond,
	},
	Advanced: {
		Depth: 6, Randomness: 0,
		ThinkingTimeMin: time.Second, ThinkingTimeMax: 2 * time.Second,
	},
	Expert: {
		Depth: 8, Randomness: 0,
		ThinkingTimeMin: 1200 * time.Millisecond, ThinkingTimeMax: 2500 * time.Millisecond,
	},
}

// DefaultPresets returns the four built-in levels.
func DefaultPresets() Presets {
	m := make(map[string]Config, len(builtin))
	for k, v := range builtin {
		m[k] = v
	}
	return Presets{byTag: m}
}

// Get looks up a tag.
func (ps Presets) Get(tag string) (Config, error) {
	c, ok := ps.byTag[tag]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, tag)
	}
	return c, nil
}

// Tags lists the known tags, easiest first.
func (ps Presets) Tags() []string {
	tags := make([]string, 0, len(ps.byTag))
	for k := range ps.byTag {
		tags = append(tags, k)
	}
	sort.SliceStable(tags, func(i, j int) bool {
		a, b := ps.byTag[tags[i]], ps.byTag[tags[j]]
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		return tags[i] < tags[j]
	})
	return tags
}

// FromTag returns the built-in configuration for tag.
func FromTag(tag string) (Config, error) {
	return DefaultPresets().Get(tag)
}

// Tags lists the built-in tags, easiest first.
func Tags() []string {
	return DefaultPresets().Tags()
}
