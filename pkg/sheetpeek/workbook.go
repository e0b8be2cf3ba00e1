package sheetpeek

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/describe"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/reader"
	"github.com/sirupsen/logrus"
)

// Workbook is an opened spreadsheet file.
//
// With EngineStream each bounded read that stops early leaks the goroutine
// feeding that sheet until the process exits, so a long-lived caller should
// open OOXML files with EngineExcelize.
type Workbook struct {
	path string
	name string
	src  reader.Source
}

// Open opens the workbook at path. The backend is chosen from the file
// extension and opts.Engine.
func Open(path string, opts Options) (*Workbook, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	start := time.Now()
	src, err := reader.Open(path, opts.readerOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	logrus.WithFields(logrus.Fields{
		"file":    path,
		"engine":  opts.Engine,
		"elapsed": time.Since(start),
	}).Debug("workbook opened")

	return &Workbook{
		path: path,
		name: filepath.Base(path),
		src:  src,
	}, nil
}

// Name returns the workbook file name without its directory.
func (w *Workbook) Name() string {
	return w.name
}

// SheetNames returns every sheet name in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.src.SheetNames()
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.src.Close()
}

// Visible reports whether sheet is visible. Formats without sheet
// visibility report every sheet as visible.
func (w *Workbook) Visible(sheet string) bool {
	vis, ok := w.src.(reader.VisibilityReporter)
	if !ok {
		return true
	}
	visible, err := vis.SheetVisible(sheet)
	if err != nil {
		return true
	}
	return visible
}

// TargetSheets resolves the sheets a preview covers.
func (w *Workbook) TargetSheets(opts Options) []string {
	if len(opts.Sheets) > 0 {
		return append([]string(nil), opts.Sheets...)
	}
	names := w.SheetNames()
	if !opts.VisibleOnly {
		return names
	}
	visible := make([]string, 0, len(names))
	for _, name := range names {
		if w.Visible(name) {
			visible = append(visible, name)
		}
	}
	return visible
}

// Sheets reads every sheet once and reports its size and used range.
func (w *Workbook) Sheets() ([]models.SheetInfo, error) {
	names := w.SheetNames()
	infos := make([]models.SheetInfo, 0, len(names))
	for _, name := range names {
		rows, err := w.readRows(name, 0)
		if err != nil {
			return nil, NewSheetError(name, "info", err)
		}
		infos = append(infos, models.SheetInfo{
			Name:      name,
			Visible:   w.Visible(name),
			Rows:      len(rows),
			Cols:      reader.Width(rows),
			UsedRange: reader.UsedRange(rows),
		})
	}
	return infos, nil
}

// Preview reads at most opts.RowLimit() rows of sheet. With opts.Header the
// first row becomes the column labels and is not counted.
func (w *Workbook) Preview(sheet string, opts Options) (models.SheetPreview, error) {
	preview := models.SheetPreview{Sheet: sheet}

	limit := opts.RowLimit()
	if opts.Header {
		limit++
	}
	rows, err := w.readRows(sheet, limit)
	if err != nil {
		return preview, NewSheetError(sheet, "preview", err)
	}

	header, data := splitHeader(rows, opts.Header)
	width := tableWidth(header, data, opts.MaxCols)
	preview.Columns = columnLabels(header, width, opts.Header)
	preview.Rows = padRows(data, width)
	preview.Index = sequence(len(preview.Rows))

	if opts.Describe {
		summary, err := w.Describe(sheet, opts)
		if err != nil {
			return preview, err
		}
		preview.Summary = &summary
	}
	return preview, nil
}

// Describe computes descriptive statistics over every row of sheet, using
// the same column labels Preview would produce.
func (w *Workbook) Describe(sheet string, opts Options) (models.Summary, error) {
	rows, err := w.readRows(sheet, 0)
	if err != nil {
		return models.Summary{}, NewSheetError(sheet, "describe", err)
	}
	header, data := splitHeader(rows, opts.Header)
	width := tableWidth(header, data, opts.MaxCols)
	return describe.Summarize(columnLabels(header, width, opts.Header), padRows(data, width)), nil
}

// Range returns the cells inside a sheet-qualified A1 range. Rows past the
// end of the sheet are omitted; the index holds 1-based sheet row numbers.
func (w *Workbook) Range(ref string) (models.SheetPreview, error) {
	r, err := reader.ParseRange(ref)
	if err != nil {
		return models.SheetPreview{}, err
	}
	preview := models.SheetPreview{Sheet: r.Sheet}
	logrus.WithField("range", reader.FormatRange(r)).Debug("reading range")

	rows, err := w.readRows(r.Sheet, r.R2)
	if err != nil {
		return preview, NewSheetError(r.Sheet, "range", err)
	}

	width := r.C2 - r.C1 + 1
	preview.Columns = make([]string, 0, width)
	for c := r.C1; c <= r.C2; c++ {
		preview.Columns = append(preview.Columns, reader.ColumnName(c))
	}
	preview.Rows = []models.Row{}
	preview.Index = []int{}
	for i := r.R1 - 1; i < len(rows); i++ {
		src := rows[i]
		row := make(models.Row, width)
		for c := range row {
			if idx := r.C1 - 1 + c; idx < len(src) {
				row[c] = src[idx]
			}
		}
		preview.Rows = append(preview.Rows, row)
		preview.Index = append(preview.Index, i+1)
	}
	return preview, nil
}

// Headers returns the rendered cells of the 1-based row of sheet, trailing
// empty cells excluded. A row past the end of the sheet yields no headers.
func (w *Workbook) Headers(sheet string, row int) ([]string, error) {
	if row < 1 {
		return nil, fmt.Errorf("header row must be 1 or greater, got %d", row)
	}
	rows, err := w.readRows(sheet, row)
	if err != nil {
		return nil, NewSheetError(sheet, "headers", err)
	}
	if row > len(rows) {
		return []string{}, nil
	}
	return rows[row-1].Strings(), nil
}

func (w *Workbook) readRows(sheet string, limit int) ([]models.Row, error) {
	start := time.Now()
	rows, err := w.src.ReadRows(sheet, limit)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"sheet":   sheet,
		"limit":   limit,
		"rows":    len(rows),
		"elapsed": time.Since(start),
	}).Debug("sheet read")
	return rows, nil
}
