package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newDescribeCmd() *cobra.Command {
	var (
		rows    int
		header  bool
		sheet   string
		maxCols int
	)

	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Print leading rows and descriptive statistics of one sheet",
		Long: `describe prints the first rows of a sheet (the first sheet unless --sheet is
given) followed by count, mean, std, min, quartiles and max of every column
holding numeric values. Statistics cover the whole sheet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			opts.Rows = rows
			opts.Header = header
			opts.MaxCols = maxCols
			opts.Describe = true

			wb, err := a.open(cmd, args[0], opts)
			if wb == nil {
				return err
			}
			defer wb.Close()

			target, err := firstSheet(wb, sheet)
			if err != nil {
				return a.printer(cmd).FileError(err)
			}
			opts.Sheets = []string{target}
			return a.printer(cmd).Report(wb.Report(opts))
		},
	}

	flags := cmd.Flags()
	a.addBoundFlags(flags, &rows, &maxCols, "Maximum number of rows to print")
	flags.BoolVar(&header, "header", false, "Use the first row as column labels")
	flags.StringVarP(&sheet, "sheet", "s", "", "Sheet to describe (default: first sheet)")
	return cmd
}
