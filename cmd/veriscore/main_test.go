package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScoreCommand_JSON(t *testing.T) {
	out, err := execute(t, "score", "--dataset", "rain-demo", "--json")
	if err != nil {
		t.Fatalf("score: %v\n%s", err, out)
	}

	var rep struct {
		Dataset   string `json:"dataset"`
		Instances int    `json:"instances"`
		Metrics   []struct {
			Name    string `json:"name"`
			Display string `json:"display"`
		} `json:"metrics"`
	}
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("unmarshal report: %v\n%s", err, out)
	}
	if rep.Dataset != "rain-demo" {
		t.Errorf("dataset: got %q, want rain-demo", rep.Dataset)
	}
	if rep.Instances != 14 {
		t.Errorf("instances: got %d, want 14", rep.Instances)
	}
	if len(rep.Metrics) != 4 {
		t.Fatalf("metrics: got %d, want 4", len(rep.Metrics))
	}
	if rep.Metrics[0].Name != "brier_score" {
		t.Errorf("first metric: got %q, want brier_score", rep.Metrics[0].Name)
	}
}

func TestScoreCommand_BadBins(t *testing.T) {
	out, err := execute(t, "score", "--dataset", "rain-demo", "--bins", "0.0,0.6,0.4")
	if err == nil {
		t.Fatalf("expected error for decreasing bin edges\n%s", out)
	}
	if !strings.Contains(err.Error(), "non-decreasing") {
		t.Errorf("error: got %v, want non-decreasing complaint", err)
	}
}

func TestDatasetsCommand(t *testing.T) {
	out, err := execute(t, "datasets")
	if err != nil {
		t.Fatalf("datasets: %v\n%s", err, out)
	}
	for _, name := range []string{"rain-demo", "overconfident-demo"} {
		if !strings.Contains(out, name) {
			t.Errorf("listing missing %q:\n%s", name, out)
		}
	}
}
