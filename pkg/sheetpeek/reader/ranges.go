package reader

import (
	"fmt"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a sheet-qualified A1 reference such as
// 'Load Profile'!$A$189:$E$245 or Sheet1!B2.
func ParseRange(ref string) (models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx <= 0 {
		return models.CellRange{}, fmt.Errorf("%w: %q must include a sheet name (e.g. Sheet1!A1:D10)", ErrInvalidRange, ref)
	}

	sheet := ref[:idx]
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	// Remove $ signs
	rangeStr := strings.ReplaceAll(ref[idx+1:], "$", "")
	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return models.CellRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	// Normalize order
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}

	return models.CellRange{
		Sheet: sheet,
		R1:    startRow,
		C1:    startCol,
		R2:    endRow,
		C2:    endCol,
	}, nil
}

// FormatRange renders r in A1 notation, quoting the sheet name when it
// contains anything but letters, digits and underscores.
func FormatRange(r models.CellRange) string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	sheet := r.Sheet
	if needsQuoting(sheet) {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	if start == end {
		return sheet + "!" + start
	}
	return sheet + "!" + start + ":" + end
}

func needsQuoting(sheet string) bool {
	for _, r := range sheet {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return true
		}
	}
	return false
}

// ColumnName converts a 1-based column number to its letters.
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Sprintf("C%d", col)
	}
	return name
}

// CellName converts 1-based coordinates to an A1 cell reference.
func CellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row, col)
	}
	return name
}
