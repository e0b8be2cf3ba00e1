package main

import (
	"github.com/huy16/sheetpeek/pkg/sheetpeek/output"
	"github.com/spf13/cobra"
)

func (a *app) newHeadersCmd() *cobra.Command {
	var (
		sheet string
		row   int
	)

	cmd := &cobra.Command{
		Use:   "headers FILE",
		Short: "List the labels of a header row with their column index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.open(cmd, args[0], a.options())
			if wb == nil {
				return err
			}
			defer wb.Close()

			p := a.printer(cmd)
			target, err := firstSheet(wb, sheet)
			if err != nil {
				return p.FileError(err)
			}
			headers, err := wb.Headers(target, row)
			if err != nil {
				return p.SheetError(target, sheetCause(err))
			}
			return p.Headers(output.HeaderList{Sheet: target, Row: row, Headers: headers})
		},
	}

	cmd.Flags().StringVarP(&sheet, "sheet", "s", "", "Sheet to read (default: first sheet)")
	cmd.Flags().IntVarP(&row, "row", "r", 1, "1-based row holding the headers")
	return cmd
}
