package score

import (
	"errors"
	"math"
	"testing"
)

func pairs(proba ...float64) PredictionSet {
	ps := PredictionSet{Proba: make([][2]float64, len(proba))}
	for i, p := range proba {
		ps.Proba[i] = [2]float64{1 - p, p}
	}
	return ps
}

func TestEvaluate_NilValidIndexesScoresEverything(t *testing.T) {
	gt := GroundTruthSet{Outcomes: []int{0, 0, 1, 1}}
	preds := pairs(0.1, 0.2, 0.8, 0.9)

	s := NewBrierScore()
	got, err := s.Evaluate(gt, preds, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if math.Abs(got-0.025) > 1e-9 {
		t.Errorf("brier: got %f, want 0.025", got)
	}
}

func TestEvaluate_FullRangeMatchesNil(t *testing.T) {
	gt := GroundTruthSet{Outcomes: []int{0, 1, 0, 1, 1}}
	preds := pairs(0.2, 0.7, 0.4, 0.9, 0.6)

	for _, s := range Suite() {
		full, err := s.Evaluate(gt, preds, nil)
		if err != nil {
			t.Fatalf("%s nil: %v", s.Name(), err)
		}
		ranged, err := s.Evaluate(gt, preds, IndexRange{Start: 0, End: 5})
		if err != nil {
			t.Fatalf("%s range: %v", s.Name(), err)
		}
		explicit, err := s.Evaluate(gt, preds, IndexSet{0, 1, 2, 3, 4})
		if err != nil {
			t.Fatalf("%s set: %v", s.Name(), err)
		}
		if full != ranged || full != explicit {
			t.Errorf("%s: nil=%f range=%f set=%f, want all equal", s.Name(), full, ranged, explicit)
		}
	}
}

func TestEvaluate_SubsetSelection(t *testing.T) {
	gt := GroundTruthSet{Outcomes: []int{0, 0, 1, 1, 1, 0}}
	preds := pairs(0.1, 0.9, 0.8, 0.2, 0.9, 0.1)

	s := NewBrierScore()
	got, err := s.Evaluate(gt, preds, IndexSet{0, 2, 4})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// (0.1-0)^2, (0.8-1)^2, (0.9-1)^2 over 3 instances
	want := (0.01 + 0.04 + 0.01) / 3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("subset brier: got %f, want %f", got, want)
	}

	ranged, err := s.Evaluate(gt, preds, IndexRange{Start: 2, End: 4})
	if err != nil {
		t.Fatalf("Evaluate range: %v", err)
	}
	want = (0.04 + 0.64) / 2
	if math.Abs(ranged-want) > 1e-9 {
		t.Errorf("ranged brier: got %f, want %f", ranged, want)
	}
}

func TestEvaluate_DimensionMismatch(t *testing.T) {
	gt := GroundTruthSet{Outcomes: []int{0, 0, 1, 1}}
	preds := pairs(0.1, 0.2, 0.8)

	for _, s := range Suite() {
		if _, err := s.Evaluate(gt, preds, nil); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s: got err %v, want ErrDimensionMismatch", s.Name(), err)
		}
	}
}

func TestEvaluate_IndexOutOfRange(t *testing.T) {
	gt := GroundTruthSet{Outcomes: []int{0, 1}}
	preds := pairs(0.1, 0.9)

	tests := []struct {
		name  string
		valid ValidIndexes
	}{
		{"set too high", IndexSet{0, 2}},
		{"set negative", IndexSet{-1}},
		{"range past end", IndexRange{Start: 0, End: 3}},
		{"range negative", IndexRange{Start: -1, End: 1}},
		{"range inverted", IndexRange{Start: 2, End: 1}},
	}
	s := NewBrierScore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Evaluate(gt, preds, tt.valid); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("got err %v, want ErrIndexOutOfRange", err)
			}
		})
	}
}

func TestScore_DirectMismatch(t *testing.T) {
	for _, s := range Suite() {
		if _, err := s.Score([]float64{0, 1, 1, 0}, []float64{0.1, 0.9, 0.8}); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s: got err %v, want ErrDimensionMismatch", s.Name(), err)
		}
	}
}

func TestSuite_Metadata(t *testing.T) {
	tests := []struct {
		name        string
		lowerBetter bool
		min, max    float64
	}{
		{"brier_score", true, 0, 1},
		{"brier_skill_score", false, -1, 1},
		{"brier_reliability", true, 0, 1},
		{"brier_resolution", false, 0, 1},
	}
	suite := Suite()
	if len(suite) != len(tests) {
		t.Fatalf("suite size: got %d, want %d", len(suite), len(tests))
	}
	for i, tt := range tests {
		s := suite[i]
		if s.Name() != tt.name {
			t.Errorf("scorer %d name: got %q, want %q", i, s.Name(), tt.name)
		}
		if s.Precision() != 3 {
			t.Errorf("%s precision: got %d, want 3", tt.name, s.Precision())
		}
		if s.LowerIsBetter() != tt.lowerBetter {
			t.Errorf("%s lower_is_better: got %v, want %v", tt.name, s.LowerIsBetter(), tt.lowerBetter)
		}
		min, max := s.Bounds()
		if min != tt.min || max != tt.max {
			t.Errorf("%s bounds: got [%g,%g], want [%g,%g]", tt.name, min, max, tt.min, tt.max)
		}
	}
}

func TestOptions(t *testing.T) {
	custom, err := NewBins([]float64{0, 0.5, 1})
	if err != nil {
		t.Fatalf("NewBins: %v", err)
	}
	s := NewBrierScoreReliability(WithName("calibration"), WithPrecision(5), WithBins(custom))
	if s.Name() != "calibration" {
		t.Errorf("name: got %q, want calibration", s.Name())
	}
	if s.Precision() != 5 {
		t.Errorf("precision: got %d, want 5", s.Precision())
	}
	if s.Bins().Count() != 2 {
		t.Errorf("bins: got %d, want 2", s.Bins().Count())
	}
}
