package reader

import (
	"strconv"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/xuri/excelize/v2"
)

// excelSource reads OOXML workbooks through excelize.
type excelSource struct {
	f        *excelize.File
	date1904 bool
	// dateStyles caches whether a style ID carries a date number format.
	dateStyles map[int]bool
}

func openExcel(path string) (Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	src := &excelSource{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		src.date1904 = *props.Date1904
	}
	return src, nil
}

func (s *excelSource) SheetNames() []string {
	return s.f.GetSheetList()
}

func (s *excelSource) SheetVisible(sheet string) (bool, error) {
	return s.f.GetSheetVisible(sheet)
}

func (s *excelSource) ReadRows(sheet string, limit int) ([]models.Row, error) {
	if idx, err := s.f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, sheetNotFound(sheet)
	}
	rows, err := s.f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	win := newWindow(limit)
	rowNum := 0
	for rows.Next() {
		rowNum++
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		row := make(models.Row, len(cols))
		for colIdx, raw := range cols {
			row[colIdx] = s.typedValue(sheet, colIdx+1, rowNum, raw)
		}
		if win.add(trimRow(row)) {
			return win.result(), nil
		}
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}
	return win.result(), nil
}

func (s *excelSource) Close() error {
	return s.f.Close()
}

// typedValue converts a raw cell value using the cell type recorded in the sheet.
func (s *excelSource) typedValue(sheet string, col, row int, raw string) models.Value {
	if raw == "" {
		return models.Empty()
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ParseValue(raw)
	}
	typ, err := s.f.GetCellType(sheet, cell)
	if err != nil {
		return ParseValue(raw)
	}

	switch typ {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeDate:
		if t, ok := parseDate(raw); ok {
			return models.Date(t)
		}
		return models.Text(raw)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.Text(raw)
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Text(raw)
	}
	if s.isDateCell(sheet, cell) {
		if t, err := excelize.ExcelDateToTime(n, s.date1904); err == nil {
			return models.Date(t)
		}
	}
	return models.Number(n)
}

// isDateCell reports whether the number format of cell renders a date or time.
func (s *excelSource) isDateCell(sheet, cell string) bool {
	styleID, err := s.f.GetCellStyle(sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := s.dateStyles[styleID]; ok {
		return isDate
	}
	style, err := s.f.GetStyle(styleID)
	isDate := err == nil && style != nil && isDateFormat(style.NumFmt, style.CustomNumFmt)
	s.dateStyles[styleID] = isDate
	return isDate
}

// isDateFormat reports whether a built-in number format ID or a custom
// format code displays a date or time.
func isDateFormat(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode looks for date or time tokens outside quoted literals,
// bracketed sections and escaped characters.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			b.WriteByte(c)
		}
	}
	stripped := strings.ToLower(b.String())
	if stripped == "general" {
		return false
	}
	return strings.ContainsAny(stripped, "ymdhs")
}
