package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"veriscore/internal/dataset"
	"veriscore/internal/format"
	"veriscore/internal/report"
	"veriscore/pkg/score"
)

var scoreFlags struct {
	dataset   string
	file      string
	bins      []float64
	precision int
	markdown  bool
	jsonOut   bool
	parallel  int
	from      int
	to        int
	indexes   []int
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a forecast dataset with the full verification suite",
	Long: `Score evaluates a dataset with the Brier score, Brier skill score, and
the reliability and resolution decomposition components. Datasets are
embedded demos by name or external YAML files.`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreFlags.dataset, "dataset", "rain-demo", "Embedded dataset name (see 'veriscore datasets')")
	f.StringVar(&scoreFlags.file, "file", "", "External dataset YAML path (overrides --dataset)")
	f.Float64SliceVar(&scoreFlags.bins, "bins", nil, "Bin edges for the binned scorers (default 0.0,0.1,...,1.1)")
	f.IntVar(&scoreFlags.precision, "precision", 0, "Reporting precision in decimal places (0 = scorer default)")
	f.BoolVar(&scoreFlags.markdown, "markdown", false, "Render the report as a Markdown table")
	f.BoolVar(&scoreFlags.jsonOut, "json", false, "Emit the report as JSON")
	f.IntVar(&scoreFlags.parallel, "parallel", 1, "Max concurrent scorers")
	f.IntVar(&scoreFlags.from, "from", -1, "Score only instances from this position (inclusive)")
	f.IntVar(&scoreFlags.to, "to", -1, "Score only instances up to this position (exclusive)")
	f.IntSliceVar(&scoreFlags.indexes, "indexes", nil, "Score only these explicit instance positions")
}

func runScore(cmd *cobra.Command, _ []string) error {
	var (
		ds  *dataset.Dataset
		err error
	)
	if scoreFlags.file != "" {
		ds, err = dataset.LoadFile(scoreFlags.file)
	} else {
		ds, err = dataset.Load(scoreFlags.dataset)
	}
	if err != nil {
		return err
	}

	var opts []score.Option
	if len(scoreFlags.bins) > 0 {
		bins, err := score.NewBins(scoreFlags.bins)
		if err != nil {
			return err
		}
		opts = append(opts, score.WithBins(bins))
	}
	if scoreFlags.precision > 0 {
		opts = append(opts, score.WithPrecision(scoreFlags.precision))
	}

	valid, err := subsetSelection(ds.Len())
	if err != nil {
		return err
	}

	rep, err := report.Run(cmd.Context(), ds, score.Suite(opts...), valid, scoreFlags.parallel)
	if err != nil {
		return err
	}

	switch {
	case scoreFlags.jsonOut:
		data, err := rep.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case scoreFlags.markdown:
		fmt.Fprintln(cmd.OutOrStdout(), rep.Table(format.Markdown))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d forecasts)\n%s\n", rep.Dataset, rep.Instances, rep.Table(format.ASCII))
	}
	return nil
}

// subsetSelection turns the --from/--to/--indexes flags into a
// ValidIndexes. Nil means score everything.
func subsetSelection(n int) (score.ValidIndexes, error) {
	if len(scoreFlags.indexes) > 0 {
		if scoreFlags.from >= 0 || scoreFlags.to >= 0 {
			return nil, fmt.Errorf("--indexes cannot be combined with --from/--to")
		}
		return score.IndexSet(scoreFlags.indexes), nil
	}
	if scoreFlags.from < 0 && scoreFlags.to < 0 {
		return nil, nil
	}
	from := scoreFlags.from
	if from < 0 {
		from = 0
	}
	to := scoreFlags.to
	if to < 0 {
		to = n
	}
	return score.IndexRange{Start: from, End: to}, nil
}
