// Package statistics summarises per-trial earnings samples.
package statistics

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidence is the confidence level used for reported intervals.
const DefaultConfidence = 0.95

// Sample is an ordered set of observations. The zero value is empty and
// ready to use. A Sample is not safe for concurrent use.
type Sample struct {
	values []float64
}

// NewSample returns a sample holding a copy of values.
func NewSample(values ...float64) *Sample {
	return &Sample{values: slices.Clone(values)}
}

// Add appends one observation.
func (s *Sample) Add(v float64) {
	s.values = append(s.values, v)
}

// Merge appends every observation of other, preserving its order.
func (s *Sample) Merge(other *Sample) {
	if other == nil {
		return
	}
	s.values = append(s.values, other.values...)
}

// N returns the number of observations.
func (s *Sample) N() int {
	return len(s.values)
}

// Values returns a copy of the observations in insertion order.
func (s *Sample) Values() []float64 {
	return slices.Clone(s.values)
}

// Min returns the smallest observation, or 0 for an empty sample.
func (s *Sample) Min() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return slices.Min(s.values)
}

// Max returns the largest observation, or 0 for an empty sample.
func (s *Sample) Max() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return slices.Max(s.values)
}

// Mean returns the arithmetic mean, or 0 for an empty sample.
func (s *Sample) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return stat.Mean(s.values, nil)
}

// StdDev returns the sample standard deviation, or 0 with fewer than two
// observations.
func (s *Sample) StdDev() float64 {
	if len(s.values) < 2 {
		return 0
	}
	return stat.StdDev(s.values, nil)
}

// Median returns the middle observation.
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at p (0.0 to 1.0), interpolating between
// neighbouring observations.
func (s *Sample) Percentile(p float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// ConfidenceInterval returns a two-sided Student's t interval for the mean
// at the given level. Both bounds are NaN with fewer than two observations.
func (s *Sample) ConfidenceInterval(level float64) (float64, float64) {
	n := len(s.values)
	if n <= 1 {
		return math.NaN(), math.NaN()
	}

	mean := s.Mean()
	halfWidth := TCritical(n-1, level) * s.StdDev() / math.Sqrt(float64(n))
	return mean - halfWidth, mean + halfWidth
}

// TCritical returns the two-sided critical value of Student's t with df
// degrees of freedom.
func TCritical(df int, level float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	return dist.Quantile(1 - (1-level)/2)
}

// Summary is a fixed snapshot of a sample's descriptive statistics.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
	P5     float64
	P25    float64
	P75    float64
	P95    float64

	Confidence float64
	CILow      float64
	CIHigh     float64
}

// Summarize computes the summary with an interval at the given level.
func (s *Sample) Summarize(level float64) Summary {
	lo, hi := s.ConfidenceInterval(level)
	return Summary{
		N:          s.N(),
		Min:        s.Min(),
		Max:        s.Max(),
		Mean:       s.Mean(),
		StdDev:     s.StdDev(),
		Median:     s.Median(),
		P5:         s.Percentile(0.05),
		P25:        s.Percentile(0.25),
		P75:        s.Percentile(0.75),
		P95:        s.Percentile(0.95),
		Confidence: level,
		CILow:      lo,
		CIHigh:     hi,
	}
}

// HasInterval reports whether the confidence interval is defined.
func (s Summary) HasInterval() bool {
	return !math.IsNaN(s.CILow) && !math.IsNaN(s.CIHigh)
}
