package main

import (
	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/spf13/cobra"
)

func (a *app) newSheetsCmd() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "sheets FILE",
		Short: "List the sheet names of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.open(cmd, args[0], a.options())
			if wb == nil {
				return err
			}
			defer wb.Close()

			report := &models.Report{
				BookName:   wb.Name(),
				SheetNames: wb.SheetNames(),
			}
			if details {
				infos, err := wb.Sheets()
				if err != nil {
					return a.printer(cmd).FileError(err)
				}
				report.Sheets = infos
			}
			return a.printer(cmd).Report(report)
		},
	}

	cmd.Flags().BoolVarP(&details, "details", "d", false, "Also show visibility, size and used range of each sheet")
	return cmd
}
