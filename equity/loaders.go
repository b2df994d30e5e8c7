package equity

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// LoadWeights reads evaluator weights from a YAML file. Keys left out of
// the file keep their DefaultWeights value.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights
	bts, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := yaml.Unmarshal(bts, &w); err != nil {
		return DefaultWeights, fmt.Errorf("parsing weights file %s: %w", path, err)
	}
	log.Debug().Interface("weights", w).Str("path", path).Msg("loaded-weights")
	return w, nil
}
