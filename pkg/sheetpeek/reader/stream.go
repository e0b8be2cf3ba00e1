package reader

import (
	"strconv"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
)

// streamSource reads OOXML workbooks row by row with xlsxreader. It never
// holds a whole sheet in memory, but it does not resolve date number formats
// the way excelSource does.
type streamSource struct {
	xl *xlsxreader.XlsxFileCloser
}

func openStream(path string) (Source, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &streamSource{xl: xl}, nil
}

func (s *streamSource) SheetNames() []string {
	return append([]string(nil), s.xl.Sheets...)
}

// ReadRows stops consuming the xlsxreader row channel once the bounded window
// is settled. xlsxreader offers no way to cancel a sheet, so the producer
// goroutine of that sheet stays blocked until the process exits.
func (s *streamSource) ReadRows(sheet string, limit int) ([]models.Row, error) {
	if !hasSheet(s.xl.Sheets, sheet) {
		return nil, sheetNotFound(sheet)
	}

	win := newWindow(limit)
	next := 1
	for r := range s.xl.ReadRows(sheet) {
		if r.Error != nil {
			return nil, r.Error
		}
		// Rows without cells are omitted from the stream.
		for ; next < r.Index; next++ {
			if win.add(models.Row{}) {
				return win.result(), nil
			}
		}
		next = r.Index + 1

		var row models.Row
		for _, cell := range r.Cells {
			col, err := excelize.ColumnNameToNumber(cell.Column)
			if err != nil {
				continue
			}
			for len(row) < col {
				row = append(row, models.Empty())
			}
			row[col-1] = streamValue(cell)
		}
		if win.add(trimRow(row)) {
			return win.result(), nil
		}
	}
	return win.result(), nil
}

func (s *streamSource) Close() error {
	return s.xl.Close()
}

func streamValue(cell xlsxreader.Cell) models.Value {
	if cell.Value == "" {
		return models.Empty()
	}
	switch cell.Type {
	case xlsxreader.TypeNumerical:
		if n, err := strconv.ParseFloat(cell.Value, 64); err == nil {
			return models.Number(n)
		}
	case xlsxreader.TypeBoolean:
		return models.Bool(cell.Value == "1" || strings.EqualFold(cell.Value, "true"))
	case xlsxreader.TypeDateTime:
		if t, ok := parseDate(cell.Value); ok {
			return models.Date(t)
		}
	}
	return models.Text(cell.Value)
}
