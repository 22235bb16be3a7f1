// Package format renders verification output for terminals and
// markdown reports. Code is for machines, tables are for humans: raw
// values stay in the JSON surfaces, these helpers only shape text.
package format

import (
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// Table is a thin project-owned wrapper over go-pretty: build the rows
// once, render in the Mode chosen at creation.
type Table struct {
	writer table.Writer
	mode   Mode
}

// NewTable returns an empty table rendering in the given Mode. Numeric
// columns listed in numericCols (1-based) are right-aligned.
func NewTable(m Mode, numericCols ...int) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	cfgs := make([]table.ColumnConfig, len(numericCols))
	for i, n := range numericCols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
	}
	w.SetColumnConfigs(cfgs)
	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendRow(row)
}

// String renders the table in the configured Mode.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}

// Score formats a score value at the given precision. NaN renders
// literally so degenerate scores stay visible in reports.
func Score(v float64, precision int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Direction names the optimization direction of a scorer.
func Direction(lowerIsBetter bool) string {
	if lowerIsBetter {
		return "lower"
	}
	return "higher"
}

// Bounds formats a declared [min, max] interval.
func Bounds(min, max float64) string {
	return "[" + strconv.FormatFloat(min, 'g', -1, 64) + ", " +
		strconv.FormatFloat(max, 'g', -1, 64) + "]"
}
