package score

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// BrierScoreResolution is the discrimination component of the Brier
// score decomposition. It uses the same binning as the reliability
// score but measures how far each bin's observed relative frequency
// sits from the overall climatological mean, normalized by the outcome
// uncertainty climo*(1-climo). Higher is better: 0 means the forecasts
// never separate the two outcome classes.
type BrierScoreResolution struct {
	config
}

var _ Scorer = (*BrierScoreResolution)(nil)

// NewBrierScoreResolution builds a resolution scorer. Defaults: name
// "brier_resolution", precision 3, DefaultBins.
func NewBrierScoreResolution(opts ...Option) *BrierScoreResolution {
	return &BrierScoreResolution{config: newConfig("brier_resolution", opts...)}
}

// LowerIsBetter is false: higher resolution is better.
func (s *BrierScoreResolution) LowerIsBetter() bool { return false }

// Bounds returns the theoretical range [0, 1].
func (s *BrierScoreResolution) Bounds() (float64, float64) { return 0, 1 }

// Bins returns the binning configuration captured at construction.
func (s *BrierScoreResolution) Bins() Bins { return s.bins }

// Evaluate selects the valid instances, extracts the probability
// columns, and applies Score.
func (s *BrierScoreResolution) Evaluate(gt GroundTruthSet, preds PredictionSet, valid ValidIndexes) (float64, error) {
	yTrue, yProba, err := alignedColumns(gt, preds, valid)
	if err != nil {
		return 0, err
	}
	return s.Score(yTrue, yProba)
}

// Score computes (1/N) * sum over occupied bins of
// count * (observed relative frequency - climatology)^2, divided by the
// outcome uncertainty climo*(1-climo). Empty bins contribute nothing.
// When every outcome is identical the uncertainty is zero and
// resolution is undefined; Score returns NaN rather than an error so
// callers can report the degenerate case.
func (s *BrierScoreResolution) Score(yTrueProba, yProba []float64) (float64, error) {
	if err := checkAligned(yTrueProba, yProba); err != nil {
		return 0, err
	}
	climo := stat.Mean(yTrueProba, nil)
	unc := climo * (1 - climo)

	posCounts, allCounts := s.bins.outcomeHistograms(yTrueProba, yProba)
	sum := 0.0
	for i, n := range allCounts {
		if n == 0 {
			continue
		}
		relFreq := float64(posCounts[i]) / float64(n)
		d := relFreq - climo
		sum += float64(n) * d * d
	}
	if unc == 0 {
		return math.NaN(), nil
	}
	return sum / float64(len(yProba)) / unc, nil
}
