// Package describe computes descriptive statistics over preview columns.
package describe

import (
	"math"
	"sort"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/montanaflynn/stats"
)

// Summarize computes statistics for every column that holds at least one
// value coercible to a number. Non-numeric cells are treated as missing.
func Summarize(columns []string, rows []models.Row) models.Summary {
	summary := models.Summary{Columns: []models.ColumnSummary{}}
	for colIdx, label := range columns {
		data := Numeric(rows, colIdx)
		if len(data) == 0 {
			continue
		}
		summary.Columns = append(summary.Columns, Column(label, data))
	}
	return summary
}

// Numeric collects the numeric values of one column.
func Numeric(rows []models.Row, colIdx int) []float64 {
	var data []float64
	for _, row := range rows {
		if colIdx >= len(row) {
			continue
		}
		if f, ok := row[colIdx].Float(); ok {
			data = append(data, f)
		}
	}
	return data
}

// Column summarizes a non-empty sample.
func Column(label string, data []float64) models.ColumnSummary {
	mean, _ := stats.Mean(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)

	std := math.NaN()
	if len(data) > 1 {
		std, _ = stats.StandardDeviationSample(data)
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	return models.ColumnSummary{
		Column: label,
		Count:  len(data),
		Mean:   models.Stat(mean),
		Std:    models.Stat(std),
		Min:    models.Stat(min),
		Q25:    models.Stat(Quantile(sorted, 0.25)),
		Q50:    models.Stat(Quantile(sorted, 0.50)),
		Q75:    models.Stat(Quantile(sorted, 0.75)),
		Max:    models.Stat(max),
	}
}

// Quantile returns the q-th quantile (0 <= q <= 1) of sorted data, linearly
// interpolating between the two closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
