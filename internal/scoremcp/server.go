// Package scoremcp exposes the verification scorer suite over MCP so
// agent tooling can score forecasts without shelling out to the CLI.
package scoremcp

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"veriscore/internal/dataset"
	"veriscore/internal/format"
	"veriscore/internal/report"
	"veriscore/pkg/score"
)

// Server wraps the MCP SDK server with the scoring tools registered.
type Server struct {
	MCPServer *sdkmcp.Server
	log       *slog.Logger
}

// NewServer creates a veriscore MCP server.
func NewServer(version string) *Server {
	s := &Server{
		MCPServer: sdkmcp.NewServer(
			&sdkmcp.Implementation{Name: "veriscore", Version: version},
			nil,
		),
		log: slog.Default().With("component", "score-mcp"),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_scorers",
		Description: "List the verification scorers with their bounds and optimization direction.",
	}, s.handleListScorers)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "score_series",
		Description: "Score aligned outcome/probability arrays with every verification scorer.",
	}, s.handleScoreSeries)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "score_dataset",
		Description: "Score an embedded or on-disk forecast dataset and return the full report.",
	}, s.handleScoreDataset)
}

type listScorersInput struct{}

type scorerInfo struct {
	Name          string  `json:"name"`
	Precision     int     `json:"precision"`
	LowerIsBetter bool    `json:"lower_is_better"`
	Minimum       float64 `json:"minimum"`
	Maximum       float64 `json:"maximum"`
}

type listScorersOutput struct {
	Scorers []scorerInfo `json:"scorers"`
}

func (s *Server) handleListScorers(_ context.Context, _ *sdkmcp.CallToolRequest, _ listScorersInput) (*sdkmcp.CallToolResult, listScorersOutput, error) {
	var out listScorersOutput
	for _, sc := range score.Suite() {
		min, max := sc.Bounds()
		out.Scorers = append(out.Scorers, scorerInfo{
			Name:          sc.Name(),
			Precision:     sc.Precision(),
			LowerIsBetter: sc.LowerIsBetter(),
			Minimum:       min,
			Maximum:       max,
		})
	}
	return nil, out, nil
}

type scoreSeriesInput struct {
	YTrueProba []float64 `json:"y_true_proba" jsonschema:"observed outcomes, 0 or 1 per instance"`
	YProba     []float64 `json:"y_proba" jsonschema:"forecast probability of the event per instance"`
	Bins       []float64 `json:"bins,omitempty" jsonschema:"optional bin edges for the binned scorers"`
}

// seriesScore carries one score value. Value is null when the score is
// undefined (NaN); Display always holds the formatted text.
type seriesScore struct {
	Name    string   `json:"name"`
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

type scoreSeriesOutput struct {
	Scores []seriesScore `json:"scores"`
}

func (s *Server) handleScoreSeries(_ context.Context, _ *sdkmcp.CallToolRequest, input scoreSeriesInput) (*sdkmcp.CallToolResult, scoreSeriesOutput, error) {
	opts, err := binOptions(input.Bins)
	if err != nil {
		return nil, scoreSeriesOutput{}, err
	}

	var out scoreSeriesOutput
	for _, sc := range score.Suite(opts...) {
		v, err := sc.Score(input.YTrueProba, input.YProba)
		if err != nil {
			return nil, scoreSeriesOutput{}, fmt.Errorf("score_series %s: %w", sc.Name(), err)
		}
		out.Scores = append(out.Scores, newSeriesScore(sc, v))
	}
	s.log.Debug("series scored", "instances", len(input.YProba))
	return nil, out, nil
}

type scoreDatasetInput struct {
	Name     string `json:"name,omitempty" jsonschema:"embedded dataset name (see veriscore datasets)"`
	Path     string `json:"path,omitempty" jsonschema:"path to an external dataset YAML, overrides name"`
	Parallel int    `json:"parallel,omitempty" jsonschema:"max concurrent scorers (default 1)"`
}

type scoreDatasetOutput struct {
	Dataset   string        `json:"dataset"`
	Instances int           `json:"instances"`
	Scores    []seriesScore `json:"scores"`
}

func (s *Server) handleScoreDataset(ctx context.Context, _ *sdkmcp.CallToolRequest, input scoreDatasetInput) (*sdkmcp.CallToolResult, scoreDatasetOutput, error) {
	var (
		ds  *dataset.Dataset
		err error
	)
	switch {
	case input.Path != "":
		ds, err = dataset.LoadFile(input.Path)
	case input.Name != "":
		ds, err = dataset.Load(input.Name)
	default:
		err = fmt.Errorf("score_dataset: name or path is required")
	}
	if err != nil {
		return nil, scoreDatasetOutput{}, err
	}

	rep, err := report.Run(ctx, ds, score.Suite(), nil, input.Parallel)
	if err != nil {
		return nil, scoreDatasetOutput{}, err
	}

	out := scoreDatasetOutput{Dataset: rep.Dataset, Instances: rep.Instances}
	for _, m := range rep.Metrics {
		sc := seriesScore{Name: m.Name, Display: m.Display}
		if !math.IsNaN(m.Value) {
			v := m.Value
			sc.Value = &v
		}
		out.Scores = append(out.Scores, sc)
	}
	s.log.Debug("dataset scored", "dataset", rep.Dataset, "instances", rep.Instances)
	return nil, out, nil
}

func newSeriesScore(sc score.Scorer, v float64) seriesScore {
	out := seriesScore{Name: sc.Name(), Display: format.Score(v, sc.Precision())}
	if !math.IsNaN(v) {
		out.Value = &v
	}
	return out
}

func binOptions(edges []float64) ([]score.Option, error) {
	if len(edges) == 0 {
		return nil, nil
	}
	bins, err := score.NewBins(edges)
	if err != nil {
		return nil, err
	}
	return []score.Option{score.WithBins(bins)}, nil
}
