package main

import (
	"errors"

	"github.com/huy16/sheetpeek/pkg/sheetpeek"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/spf13/cobra"
)

func (a *app) newRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range FILE REF",
		Short: "Print the cells of an A1 range such as 'Load Profile'!A189:E245",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.open(cmd, args[0], a.options())
			if wb == nil {
				return err
			}
			defer wb.Close()

			preview, err := wb.Range(args[1])
			if errors.Is(err, sheetpeek.ErrInvalidRange) {
				return err
			}
			if err != nil {
				preview.Error = sheetCause(err).Error()
			}

			return a.printer(cmd).Report(&models.Report{
				BookName:   wb.Name(),
				SheetNames: wb.SheetNames(),
				Previews:   []models.SheetPreview{preview},
			})
		},
	}
	return cmd
}
