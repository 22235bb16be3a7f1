package score

// BrierScoreReliability is the calibration component of the Brier score
// decomposition. Forecast probabilities are grouped into bins; each
// occupied bin contributes its count times the squared gap between the
// bin center and the observed relative frequency of positive outcomes
// in that bin. Lower is better: 0 means every stated probability
// matched the observed frequency.
type BrierScoreReliability struct {
	config
}

var _ Scorer = (*BrierScoreReliability)(nil)

// NewBrierScoreReliability builds a reliability scorer. Defaults: name
// "brier_reliability", precision 3, DefaultBins.
func NewBrierScoreReliability(opts ...Option) *BrierScoreReliability {
	return &BrierScoreReliability{config: newConfig("brier_reliability", opts...)}
}

// LowerIsBetter is true: 0 is perfect calibration.
func (s *BrierScoreReliability) LowerIsBetter() bool { return true }

// Bounds returns the theoretical range [0, 1].
func (s *BrierScoreReliability) Bounds() (float64, float64) { return 0, 1 }

// Bins returns the binning configuration captured at construction.
func (s *BrierScoreReliability) Bins() Bins { return s.bins }

// Evaluate selects the valid instances, extracts the probability
// columns, and applies Score.
func (s *BrierScoreReliability) Evaluate(gt GroundTruthSet, preds PredictionSet, valid ValidIndexes) (float64, error) {
	yTrue, yProba, err := alignedColumns(gt, preds, valid)
	if err != nil {
		return 0, err
	}
	return s.Score(yTrue, yProba)
}

// Score computes (1/N) * sum over occupied bins of
// count * (center - observed relative frequency)^2. Bins holding no
// forecasts have an undefined relative frequency and contribute
// nothing to the sum.
func (s *BrierScoreReliability) Score(yTrueProba, yProba []float64) (float64, error) {
	if err := checkAligned(yTrueProba, yProba); err != nil {
		return 0, err
	}
	posCounts, allCounts := s.bins.outcomeHistograms(yTrueProba, yProba)
	centers := s.bins.centers

	sum := 0.0
	for i, n := range allCounts {
		if n == 0 {
			continue
		}
		relFreq := float64(posCounts[i]) / float64(n)
		d := centers[i] - relFreq
		sum += float64(n) * d * d
	}
	return sum / float64(len(yProba)), nil
}

// outcomeHistograms bins the forecast probabilities twice: once
// restricted to instances with a positive outcome, once over all
// instances.
func (b Bins) outcomeHistograms(yTrueProba, yProba []float64) (pos, all []int) {
	var posProba []float64
	for i, p := range yProba {
		if yTrueProba[i] == 1 {
			posProba = append(posProba, p)
		}
	}
	return b.histogram(posProba), b.histogram(yProba)
}
