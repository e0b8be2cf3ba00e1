package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newPreviewCmd() *cobra.Command {
	var (
		rows        int
		raw         bool
		sheets      []string
		maxCols     int
		columns     bool
		describe    bool
		visibleOnly bool
	)

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Print the leading rows of each sheet",
		Long: `preview prints the first rows of every sheet (or the sheets given with
--sheet). By default the first row is used as column labels; --raw keeps it
as data and numbers the columns from 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			opts.Rows = rows
			opts.Header = !raw
			opts.Sheets = sheets
			opts.MaxCols = maxCols
			opts.Describe = describe
			opts.VisibleOnly = visibleOnly

			wb, err := a.open(cmd, args[0], opts)
			if wb == nil {
				return err
			}
			defer wb.Close()

			p := a.printer(cmd)
			p.ShowColumns = columns
			return p.Report(wb.Report(opts))
		},
	}

	flags := cmd.Flags()
	a.addBoundFlags(flags, &rows, &maxCols, "Maximum number of rows per sheet")
	flags.BoolVar(&raw, "raw", false, "Treat the first row as data, not column labels")
	flags.StringSliceVarP(&sheets, "sheet", "s", nil, "Sheet to preview (repeatable; default: all sheets)")
	flags.BoolVar(&columns, "columns", false, "List the column labels after each preview")
	flags.BoolVar(&describe, "describe", false, "Append descriptive statistics of numeric columns")
	flags.BoolVar(&visibleOnly, "visible-only", false, "Skip hidden sheets")
	return cmd
}
