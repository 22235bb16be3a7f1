// Package score implements probabilistic forecast verification scores
// for binary events: the Brier score and its skill, reliability, and
// resolution companions. All scorers are pure functions over aligned
// in-memory arrays; the only state a scorer carries is the name,
// precision, and binning configuration captured at construction.
package score

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when the outcome and prediction
// sequences disagree in length after valid-index selection.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrIndexOutOfRange is returned when a ValidIndexes selection refers
// to a position outside the scored collection.
var ErrIndexOutOfRange = errors.New("index out of range")

// GroundTruthSet is an ordered sequence of observed binary outcomes,
// aligned index-for-index with a PredictionSet. Outcome 1 means the
// second class was the true outcome.
type GroundTruthSet struct {
	Outcomes []int
}

// PredictionSet is an ordered sequence of two-class probability pairs.
// Each pair should sum to 1; only the second-class probability is
// consumed by the scorers.
type PredictionSet struct {
	Proba [][2]float64
}

// ValidIndexes restricts evaluation to a subset of instances.
// A nil ValidIndexes selects every instance.
type ValidIndexes interface {
	indexes(n int) ([]int, error)
}

// IndexRange selects the contiguous half-open range [Start, End).
type IndexRange struct {
	Start int
	End   int
}

func (r IndexRange) indexes(n int) ([]int, error) {
	if r.Start < 0 || r.End > n || r.Start > r.End {
		return nil, fmt.Errorf("%w: range [%d,%d) over %d instances", ErrIndexOutOfRange, r.Start, r.End, n)
	}
	idx := make([]int, 0, r.End-r.Start)
	for i := r.Start; i < r.End; i++ {
		idx = append(idx, i)
	}
	return idx, nil
}

// IndexSet selects explicit positions, scored in the given order.
type IndexSet []int

func (s IndexSet) indexes(n int) ([]int, error) {
	for _, i := range s {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: index %d over %d instances", ErrIndexOutOfRange, i, n)
		}
	}
	return s, nil
}

// Scorer is the contract shared by all verification scores.
type Scorer interface {
	// Name returns the display label configured at construction.
	Name() string
	// Precision returns the number of decimal places used when the
	// score is formatted for reporting.
	Precision() int
	// LowerIsBetter reports whether smaller values indicate better
	// forecasts.
	LowerIsBetter() bool
	// Bounds returns the declared theoretical minimum and maximum.
	// They describe the score, they are not enforced at runtime.
	Bounds() (min, max float64)
	// Evaluate runs the full pipeline: valid-index selection, column
	// extraction, dimension check, then the formula.
	Evaluate(gt GroundTruthSet, preds PredictionSet, valid ValidIndexes) (float64, error)
	// Score applies the raw formula to aligned probability arrays:
	// the true second-class probability (0 or 1 per instance) and the
	// forecast second-class probability.
	Score(yTrueProba, yProba []float64) (float64, error)
}

// Suite returns one instance of every scorer, with the given options
// applied to each. Bin options only affect the binned scorers.
func Suite(opts ...Option) []Scorer {
	return []Scorer{
		NewBrierScore(opts...),
		NewBrierSkillScore(opts...),
		NewBrierScoreReliability(opts...),
		NewBrierScoreResolution(opts...),
	}
}

// Option configures a scorer at construction.
type Option func(*config)

// WithName overrides the default display label.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithPrecision sets the reporting precision in decimal places.
func WithPrecision(p int) Option {
	return func(c *config) { c.precision = p }
}

// WithBins sets the probability bins used by the reliability and
// resolution scores.
func WithBins(b Bins) Option {
	return func(c *config) { c.bins = b }
}

type config struct {
	name      string
	precision int
	bins      Bins
}

func newConfig(name string, opts ...Option) config {
	c := config{name: name, precision: 3, bins: DefaultBins()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c config) Name() string   { return c.name }
func (c config) Precision() int { return c.precision }

// alignedColumns extracts the second-class forecast probability column
// and the binary outcome column, restricted to valid, and verifies the
// two selections align. Selection never silently truncates: a length
// disagreement is an ErrDimensionMismatch.
func alignedColumns(gt GroundTruthSet, preds PredictionSet, valid ValidIndexes) (yTrue, yProba []float64, err error) {
	var gi, pi []int
	if valid == nil {
		gi = allIndexes(len(gt.Outcomes))
		pi = allIndexes(len(preds.Proba))
	} else {
		if gi, err = valid.indexes(len(gt.Outcomes)); err != nil {
			return nil, nil, fmt.Errorf("select outcomes: %w", err)
		}
		if pi, err = valid.indexes(len(preds.Proba)); err != nil {
			return nil, nil, fmt.Errorf("select predictions: %w", err)
		}
	}
	if len(gi) != len(pi) {
		return nil, nil, fmt.Errorf("%w: %d outcomes vs %d predictions selected",
			ErrDimensionMismatch, len(gi), len(pi))
	}

	yTrue = make([]float64, len(gi))
	for k, i := range gi {
		yTrue[k] = float64(gt.Outcomes[i])
	}
	yProba = make([]float64, len(pi))
	for k, i := range pi {
		yProba[k] = preds.Proba[i][1]
	}
	return yTrue, yProba, nil
}

func allIndexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func checkAligned(yTrueProba, yProba []float64) error {
	if len(yTrueProba) != len(yProba) {
		return fmt.Errorf("%w: %d true vs %d predicted values",
			ErrDimensionMismatch, len(yTrueProba), len(yProba))
	}
	return nil
}
