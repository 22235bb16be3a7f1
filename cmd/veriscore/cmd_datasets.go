package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"veriscore/internal/dataset"
	"veriscore/internal/format"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the embedded demo datasets",
	RunE:  runDatasets,
}

func runDatasets(cmd *cobra.Command, _ []string) error {
	tbl := format.NewTable(format.ASCII, 2)
	tbl.Header("name", "forecasts", "description")
	for _, name := range dataset.List() {
		ds, err := dataset.Load(name)
		if err != nil {
			return err
		}
		tbl.Row(ds.Name, ds.Len(), strings.TrimSpace(ds.Description))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
	return nil
}
