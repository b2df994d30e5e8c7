package equity

import (
	"github.com/samber/lo"

	"github.com/domino14/reversi/board"
)

// Weights are the multipliers for each calculator.
type Weights struct {
	Position  float64 `yaml:"position" json:"position"`
	Mobility  float64 `yaml:"mobility" json:"mobility"`
	Stability float64 `yaml:"stability" json:"stability"`
	Corner    float64 `yaml:"corner" json:"corner"`
}

// DefaultWeights is what every difficulty preset is calibrated against.
var DefaultWeights = Weights{
	Position:  1.0,
	Mobility:  0.8,
	Stability: 1.2,
	Corner:    2.0,
}

type weightedCalculator struct {
	calc   Calculator
	weight float64
}

// Evaluator is the static evaluation function used at search leaves. It is
// immutable once built and safe to share.
type Evaluator struct {
	calculators []weightedCalculator
}

// NewEvaluator builds the standard four-term evaluator.
func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{
		calculators: []weightedCalculator{
			{PositionCalculator{}, w.Position},
			{MobilityCalculator{}, w.Mobility},
			{StabilityCalculator{}, w.Stability},
			{CornerCalculator{}, w.Corner},
		},
	}
}

// NewDefaultEvaluator is NewEvaluator(DefaultWeights).
func NewDefaultEvaluator() *Evaluator {
	return NewEvaluator(DefaultWeights)
}

// Score is the weighted sum of all calculators, from p's perspective.
func (e *Evaluator) Score(b board.Board, p board.Player) float64 {
	return lo.SumBy(e.calculators, func(wc weightedCalculator) float64 {
		if wc.weight == 0 {
			return 0
		}
		return wc.weight * wc.calc.Evaluate(b, p)
	})
}

// Breakdown returns the weighted contribution of each calculator, keyed by
// calculator type. Useful for explaining an evaluation in the shell.
func (e *Evaluator) Breakdown(b board.Board, p board.Player) map[string]float64 {
	return lo.SliceToMap(e.calculators, func(wc weightedCalculator) (string, float64) {
		return wc.calc.Type(), wc.weight * wc.calc.Evaluate(b, p)
	})
}
