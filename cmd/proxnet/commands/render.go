package commands

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/proxnet/cmd/proxnet/internal/config"
	"github.com/katalvlaran/proxnet/table"
)

// render writes t in the requested format.
func render(w io.Writer, t *table.Table, format string, csvOpts ...table.CSVOption) error {
	if format != config.FormatTable {
		return table.WriteCSV(w, t, csvOpts...)
	}

	names := t.Names()
	header := make([]any, len(names))
	for i, n := range names {
		header[i] = n
	}

	rows := make([][]string, t.Rows())
	cols := t.Columns()
	for r := range rows {
		rec := make([]string, len(cols))
		for j, c := range cols {
			rec[j] = c.At(r).String()
		}
		rows[r] = rec
	}

	tw := tablewriter.NewWriter(w)
	tw.Header(header...)
	if err := tw.Bulk(rows); err != nil {
		return err
	}
	return tw.Render()
}
