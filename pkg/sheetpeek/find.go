package sheetpeek

import (
	"errors"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/reader"
)

// FindOptions configures a cell search.
type FindOptions struct {
	// Sheets restricts the search. If empty, every sheet is searched.
	Sheets []string
	// FirstOnly keeps only the first hit of each term per sheet.
	FirstOnly bool
	// IgnoreCase compares without regard to letter case.
	IgnoreCase bool
}

// Find searches the rendered text of every cell for each term and returns
// the hits in sheet, row, column order. Sheets that cannot be read are
// skipped and reported through the returned error.
func (w *Workbook) Find(terms []string, opts FindOptions) ([]models.Match, error) {
	sheets := opts.Sheets
	if len(sheets) == 0 {
		sheets = w.SheetNames()
	}

	matches := []models.Match{}
	var errs []error
	for _, sheet := range sheets {
		rows, err := w.readRows(sheet, 0)
		if err != nil {
			errs = append(errs, NewSheetError(sheet, "find", err))
			continue
		}

		found := make(map[string]bool)
		for r, row := range rows {
			for c, v := range row {
				text := v.String()
				if text == "" {
					continue
				}
				for _, term := range terms {
					if term == "" || (opts.FirstOnly && found[term]) {
						continue
					}
					if !containsTerm(text, term, opts.IgnoreCase) {
						continue
					}
					found[term] = true
					matches = append(matches, models.Match{
						Sheet: sheet,
						Term:  term,
						Row:   r + 1,
						Col:   c + 1,
						Cell:  reader.CellName(c+1, r+1),
						Text:  text,
					})
				}
			}
		}
	}
	return matches, errors.Join(errs...)
}

func containsTerm(text, term string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.Contains(strings.ToLower(text), strings.ToLower(term))
	}
	return strings.Contains(text, term)
}
