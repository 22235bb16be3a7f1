// Package dataset loads forecast verification datasets: ordered
// collections of binary-event probability forecasts paired with the
// outcomes that were eventually observed.
package dataset

import (
	"fmt"

	"veriscore/pkg/score"
)

// Forecast is one probability forecast and what actually happened.
type Forecast struct {
	ID       string  `yaml:"id,omitempty"`
	Proba    float64 `yaml:"proba"`    // forecast probability of the event
	Observed int     `yaml:"observed"` // 1 if the event occurred
}

// Dataset is a named batch of forecasts for one verification run.
type Dataset struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Forecasts   []Forecast `yaml:"forecasts"`
}

// Len returns the number of forecasts.
func (d *Dataset) Len() int { return len(d.Forecasts) }

// Validate rejects probabilities outside [0,1] and outcomes other than
// 0 or 1.
func (d *Dataset) Validate() error {
	if len(d.Forecasts) == 0 {
		return fmt.Errorf("dataset %q has no forecasts", d.Name)
	}
	for i, f := range d.Forecasts {
		if f.Proba < 0 || f.Proba > 1 {
			return fmt.Errorf("dataset %q forecast %d (%s): proba %g outside [0,1]",
				d.Name, i, f.ID, f.Proba)
		}
		if f.Observed != 0 && f.Observed != 1 {
			return fmt.Errorf("dataset %q forecast %d (%s): observed %d is not binary",
				d.Name, i, f.ID, f.Observed)
		}
	}
	return nil
}

// Split converts the dataset into the aligned collections the scorers
// consume. The event is the second class; the first-class probability
// is the complement.
func (d *Dataset) Split() (score.GroundTruthSet, score.PredictionSet) {
	gt := score.GroundTruthSet{Outcomes: make([]int, len(d.Forecasts))}
	preds := score.PredictionSet{Proba: make([][2]float64, len(d.Forecasts))}
	for i, f := range d.Forecasts {
		gt.Outcomes[i] = f.Observed
		preds.Proba[i] = [2]float64{1 - f.Proba, f.Proba}
	}
	return gt, preds
}
