package difficulty

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// LoadPresets reads a YAML file of difficulty overrides, keyed by tag, and
// layers it over the built-in presets. A tag in the file may set only some
// fields; the rest keep their built-in values. New tags start from zero
// values and must set everything Validate needs.
//
//	expert:
//	  depth: 10
//	blitz:
//	  depth: 3
//	  randomness: 0.05
func LoadPresets(path string) (Presets, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return Presets{}, err
	}
	return ParsePresets(bts)
}

// ParsePresets is LoadPresets on an in-memory document.
func ParsePresets(bts []byte) (Presets, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(bts, &raw); err != nil {
		return Presets{}, fmt.Errorf("parsing difficulty presets: %w", err)
	}
	ps := DefaultPresets()
	for tag, node := range raw {
		c := ps.byTag[tag]
		if err := node.Decode(&c); err != nil {
			return Presets{}, fmt.Errorf("difficulty %q: %w", tag, err)
		}
		if err := c.Validate(); err != nil {
			return Presets{}, fmt.Errorf("difficulty %q: %w", tag, err)
		}
		ps.byTag[tag] = c
		log.Debug().Str("tag", tag).Interface("config", c).Msg("loaded-difficulty")
	}
	return ps, nil
}
