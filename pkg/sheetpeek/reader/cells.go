package reader

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
)

// dateLayouts are the layouts tried for ISO 8601 date cells.
var dateLayouts = [...]string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseValue converts a cell string from an untyped source into a Value.
// Integers and decimals become numbers, TRUE/FALSE become booleans,
// the empty string is missing and anything else stays text.
func ParseValue(s string) models.Value {
	if s == "" {
		return models.Empty()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	switch {
	case strings.EqualFold(s, "true"):
		return models.Bool(true)
	case strings.EqualFold(s, "false"):
		return models.Bool(false)
	}
	return models.Text(s)
}

// parseDate parses an ISO 8601 cell value.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// trimTrailingEmpty drops empty rows at the end of a sheet.
func trimTrailingEmpty(rows []models.Row) []models.Row {
	end := len(rows)
	for end > 0 && rows[end-1].IsEmpty() {
		end--
	}
	return rows[:end]
}

// trimRow drops missing values at the end of a row.
func trimRow(row models.Row) models.Row {
	end := len(row)
	for end > 0 && row[end-1].IsEmpty() {
		end--
	}
	return row[:end]
}

// window collects the leading rows of a sheet up to limit. Empty rows at the
// end of a full window are held back: a later non-empty row shows they are
// interior and they stay, the end of the sheet shows they are trailing and
// they are trimmed.
type window struct {
	limit    int
	rows     []models.Row
	interior bool
}

func newWindow(limit int) *window {
	return &window{limit: limit}
}

// add appends row and reports whether the caller can stop reading.
func (w *window) add(row models.Row) bool {
	if w.full() {
		if row.IsEmpty() {
			return false
		}
		w.interior = true
		return true
	}
	w.rows = append(w.rows, row)
	return w.full() && !row.IsEmpty()
}

func (w *window) full() bool {
	return w.limit > 0 && len(w.rows) >= w.limit
}

// result returns the collected rows once reading has stopped.
func (w *window) result() []models.Row {
	if w.interior {
		return w.rows
	}
	return trimTrailingEmpty(w.rows)
}
