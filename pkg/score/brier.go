package score

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// BrierScore is the mean squared error between the forecast probability
// of the second class and the observed binary outcome. Lower is better.
type BrierScore struct {
	config
}

var _ Scorer = (*BrierScore)(nil)

// NewBrierScore builds a Brier scorer. Defaults: name "brier_score",
// precision 3.
func NewBrierScore(opts ...Option) *BrierScore {
	return &BrierScore{config: newConfig("brier_score", opts...)}
}

// LowerIsBetter is true: 0 is a perfect forecast.
func (s *BrierScore) LowerIsBetter() bool { return true }

// Bounds returns the theoretical range [0, 1].
func (s *BrierScore) Bounds() (float64, float64) { return 0, 1 }

// Evaluate selects the valid instances, extracts the probability
// columns, and applies Score.
func (s *BrierScore) Evaluate(gt GroundTruthSet, preds PredictionSet, valid ValidIndexes) (float64, error) {
	yTrue, yProba, err := alignedColumns(gt, preds, valid)
	if err != nil {
		return 0, err
	}
	return s.Score(yTrue, yProba)
}

// Score computes mean((yProba - yTrueProba)^2).
func (s *BrierScore) Score(yTrueProba, yProba []float64) (float64, error) {
	if err := checkAligned(yTrueProba, yProba); err != nil {
		return 0, err
	}
	return meanSquaredDiff(yTrueProba, yProba), nil
}

// BrierSkillScore normalizes the Brier score against a climatological
// reference forecast: 1 - BS/refVar, where refVar is the mean squared
// deviation of the outcomes from their own mean. Higher is better; 1 is
// a perfect forecast, 0 matches climatology.
type BrierSkillScore struct {
	config
}

var _ Scorer = (*BrierSkillScore)(nil)

// NewBrierSkillScore builds a Brier skill scorer. Defaults: name
// "brier_skill_score", precision 3.
func NewBrierSkillScore(opts ...Option) *BrierSkillScore {
	return &BrierSkillScore{config: newConfig("brier_skill_score", opts...)}
}

// LowerIsBetter is false: higher skill is better.
func (s *BrierSkillScore) LowerIsBetter() bool { return false }

// Bounds returns the declared range [-1, 1]. A forecast much worse than
// climatology can fall below -1; the bound is a reporting convention.
func (s *BrierSkillScore) Bounds() (float64, float64) { return -1, 1 }

// Evaluate selects the valid instances, extracts the probability
// columns, and applies Score.
func (s *BrierSkillScore) Evaluate(gt GroundTruthSet, preds PredictionSet, valid ValidIndexes) (float64, error) {
	yTrue, yProba, err := alignedColumns(gt, preds, valid)
	if err != nil {
		return 0, err
	}
	return s.Score(yTrue, yProba)
}

// Score computes 1 - BS/refVar. When every outcome is identical the
// reference variance is zero and skill is undefined; Score returns NaN
// rather than an error so callers can report the degenerate case.
func (s *BrierSkillScore) Score(yTrueProba, yProba []float64) (float64, error) {
	if err := checkAligned(yTrueProba, yProba); err != nil {
		return 0, err
	}
	bs := meanSquaredDiff(yTrueProba, yProba)
	climo := stat.Mean(yTrueProba, nil)
	refVar := stat.MomentAbout(2, yTrueProba, climo, nil)
	if refVar == 0 {
		return math.NaN(), nil
	}
	return 1 - bs/refVar, nil
}

func meanSquaredDiff(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := b[i] - a[i]
		sum += d * d
	}
	return sum / float64(len(a))
}
