package score

import (
	"math"
	"testing"
)

// Every occupied bin observing the overall base rate means the
// forecasts never discriminate: resolution 0.
func TestBrierScoreResolution_NoDiscrimination(t *testing.T) {
	s := NewBrierScoreResolution()

	yTrue := []float64{1, 0, 1, 0}
	yProba := []float64{0.55, 0.55, 0.55, 0.55}
	got, err := s.Score(yTrue, yProba)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(got) > 1e-9 {
		t.Errorf("got %f, want 0", got)
	}
}

func TestBrierScoreResolution_PerfectDiscrimination(t *testing.T) {
	s := NewBrierScoreResolution()

	yTrue := []float64{0, 0, 1, 1}
	yProba := []float64{0.05, 0.05, 0.95, 0.95}
	got, err := s.Score(yTrue, yProba)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// climo 0.5, uncertainty 0.25. Two occupied bins, each 2 forecasts,
	// rel freq 0 and 1: (2*0.25 + 2*0.25)/4 / 0.25 = 1.
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("got %f, want 1", got)
	}
}

func TestBrierScoreResolution_HandComputed(t *testing.T) {
	s := NewBrierScoreResolution()

	yTrue := []float64{0, 1, 1, 1, 0, 1}
	yProba := []float64{0.15, 0.15, 0.85, 0.85, 0.85, 0.85}
	got, err := s.Score(yTrue, yProba)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// climo 4/6, uncertainty 2/9.
	// Bin [0.1,0.2): 2 forecasts, rel freq 1/2.
	// Bin [0.8,0.9): 4 forecasts, rel freq 3/4.
	climo := 4.0 / 6.0
	unc := climo * (1 - climo)
	want := (2*(0.5-climo)*(0.5-climo) + 4*(0.75-climo)*(0.75-climo)) / 6 / unc
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %f, want %f", got, want)
	}
}

// All outcomes identical leaves zero outcome uncertainty, so resolution
// is defined to be NaN.
func TestBrierScoreResolution_ZeroUncertainty(t *testing.T) {
	s := NewBrierScoreResolution()

	got, err := s.Score([]float64{1, 1, 1}, []float64{0.9, 0.8, 0.7})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("all-ones outcomes: got %f, want NaN", got)
	}
}

func TestBrierScoreResolution_WithinBounds(t *testing.T) {
	s := NewBrierScoreResolution()
	yTrue := []float64{0, 1, 1, 0, 1, 0, 0, 1}
	yProba := []float64{0.3, 0.6, 0.95, 0.05, 0.5, 0.2, 0.7, 0.1}
	got, err := s.Score(yTrue, yProba)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got < 0 || got > 1 {
		t.Errorf("score %f outside [0,1]", got)
	}
}
