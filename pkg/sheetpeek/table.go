package sheetpeek

import (
	"fmt"
	"strconv"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/reader"
)

func splitHeader(rows []models.Row, header bool) (models.Row, []models.Row) {
	if !header || len(rows) == 0 {
		return nil, rows
	}
	return rows[0], rows[1:]
}

// tableWidth is the widest of the header and the data rows, capped by maxCols.
func tableWidth(header models.Row, rows []models.Row, maxCols int) int {
	width := reader.Width(rows)
	if len(header) > width {
		width = len(header)
	}
	if maxCols > 0 && width > maxCols {
		width = maxCols
	}
	return width
}

// columnLabels numbers the columns from 0, or takes them from the header
// row. Blank header cells become "Unnamed: i" and repeated labels get a
// ".n" suffix.
func columnLabels(header models.Row, width int, useHeader bool) []string {
	labels := make([]string, width)
	seen := make(map[string]int)
	for i := range labels {
		if !useHeader {
			labels[i] = strconv.Itoa(i)
			continue
		}
		label := ""
		if i < len(header) {
			label = header[i].String()
		}
		if label == "" {
			label = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[label]; ok {
			seen[label] = n + 1
			label = fmt.Sprintf("%s.%d", label, n+1)
		} else {
			seen[label] = 0
		}
		labels[i] = label
	}
	return labels
}

// padRows copies rows into rows of exactly width values.
func padRows(rows []models.Row, width int) []models.Row {
	out := make([]models.Row, len(rows))
	for i, row := range rows {
		padded := make(models.Row, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
