package main

import (
	"github.com/huy16/sheetpeek/pkg/sheetpeek"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/output"
	"github.com/spf13/cobra"
)

func (a *app) newFindCmd() *cobra.Command {
	var opts sheetpeek.FindOptions

	cmd := &cobra.Command{
		Use:   "find FILE TERM...",
		Short: "Search every sheet for cells containing the given terms",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.open(cmd, args[0], a.options())
			if wb == nil {
				return err
			}
			defer wb.Close()

			terms := args[1:]
			matches, err := wb.Find(terms, opts)
			return a.printer(cmd).Matches(output.SearchResult{
				Terms:   terms,
				Matches: matches,
				Errors:  errorList(err),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.Sheets, "sheet", "s", nil, "Sheet to search (repeatable; default: all sheets)")
	flags.BoolVar(&opts.FirstOnly, "first", false, "Report only the first hit of each term per sheet")
	flags.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "Match without regard to letter case")
	return cmd
}

// errorList flattens a joined error into its messages.
func errorList(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
