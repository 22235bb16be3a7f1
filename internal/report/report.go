// Package report runs a scorer suite over a dataset and shapes the
// results for terminals, markdown, and JSON consumers.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"veriscore/internal/dataset"
	"veriscore/internal/format"
	"veriscore/internal/logging"
	"veriscore/pkg/score"
)

// Metric is one scored row of a verification report.
type Metric struct {
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	Display       string  `json:"display"`
	LowerIsBetter bool    `json:"lower_is_better"`
	Minimum       float64 `json:"minimum"`
	Maximum       float64 `json:"maximum"`
}

// MarshalJSON emits null for a NaN value, since JSON has no NaN
// literal. The Display field still carries the "NaN" text.
func (m Metric) MarshalJSON() ([]byte, error) {
	type alias Metric
	out := struct {
		Value *float64 `json:"value"`
		alias
	}{alias: alias(m)}
	if !math.IsNaN(m.Value) {
		out.Value = &m.Value
	}
	return json.Marshal(out)
}

// Report is the scored result of one verification run.
type Report struct {
	Dataset   string        `json:"dataset"`
	Instances int           `json:"instances"`
	Metrics   []Metric      `json:"metrics"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Run evaluates every scorer against the dataset, at most parallel at
// a time. Scoring is independent per scorer, so the caller picks the
// parallelism; results keep the scorer order regardless.
func Run(ctx context.Context, ds *dataset.Dataset, scorers []score.Scorer, valid score.ValidIndexes, parallel int) (*Report, error) {
	if parallel < 1 {
		parallel = 1
	}
	gt, preds := ds.Split()
	log := logging.New("report")
	start := time.Now()

	metrics := make([]Metric, len(scorers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, s := range scorers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := s.Evaluate(gt, preds, valid)
			if err != nil {
				return fmt.Errorf("score %s: %w", s.Name(), err)
			}
			min, max := s.Bounds()
			metrics[i] = Metric{
				Name:          s.Name(),
				Value:         v,
				Display:       format.Score(v, s.Precision()),
				LowerIsBetter: s.LowerIsBetter(),
				Minimum:       min,
				Maximum:       max,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	log.Debug("dataset scored", "dataset", ds.Name, "instances", ds.Len(), "scorers", len(scorers), "elapsed", elapsed)
	return &Report{
		Dataset:   ds.Name,
		Instances: ds.Len(),
		Metrics:   metrics,
		Elapsed:   elapsed,
	}, nil
}

// Table renders the report in the given format mode.
func (r *Report) Table(mode format.Mode) string {
	tbl := format.NewTable(mode, 2)
	tbl.Header("score", "value", "better", "bounds")
	for _, m := range r.Metrics {
		tbl.Row(m.Name, m.Display, format.Direction(m.LowerIsBetter), format.Bounds(m.Minimum, m.Maximum))
	}
	return tbl.String()
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
