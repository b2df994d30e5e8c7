// Package stats summarizes samples of game results.
package stats

import (
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Sample holds every value pushed to it.
type Sample struct {
	values []float64
}

func (s *Sample) Push(val float64) {
	s.values = append(s.values, val)
}

func (s *Sample) Len() int {
	return len(s.values)
}

// Values returns the pushed values. The caller must not modify them.
func (s *Sample) Values() []float64 {
	return s.values
}

func (s *Sample) Mean() float64 {
	if len(s.values) == 0 {
		return 0.0
	}
	return stat.Mean(s.values, nil)
}

// Stdev is the sample (n-1) standard deviation.
func (s *Sample) Stdev() float64 {
	if len(s.values) <= 1 {
		return 0.0
	}
	_, std := stat.MeanStdDev(s.values, nil)
	return std
}

// StandardError returns the standard error of the mean.
func (s *Sample) StandardError() float64 {
	if len(s.values) == 0 {
		return 0.0
	}
	return s.Stdev() / math.Sqrt(float64(len(s.values)))
}

// ConfidenceInterval returns the bounds around the mean for a confidence
// level given in percent, e.g. 95.
func (s *Sample) ConfidenceInterval(pct float64) (float64, float64) {
	m := s.Mean()
	half := ZVal(pct) * s.StandardError()
	return m - half, m + half
}

// Fprint draws a text histogram of the sample.
func (s *Sample) Fprint(w io.Writer, bins, width int) error {
	if len(s.values) == 0 {
		return nil
	}
	h := histogram.Hist(bins, s.values)
	return histogram.Fprint(w, h, histogram.Linear(width))
}

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}
