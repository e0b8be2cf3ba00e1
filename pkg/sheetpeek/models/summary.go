package models

import (
	"math"
	"strconv"
)

// Stat is a summary statistic. NaN and infinities encode as JSON null.
type Stat float64

// MarshalJSON implements json.Marshaler.
func (s Stat) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	// Column is the column label as shown in the preview.
	Column string `json:"column"`
	// Count is the number of values that coerced to a number.
	Count int `json:"count"`
	// Mean is the arithmetic mean.
	Mean Stat `json:"mean"`
	// Std is the sample standard deviation (NaN below two values).
	Std Stat `json:"std"`
	Min Stat `json:"min"`
	// Q25 is the 25th percentile.
	Q25 Stat `json:"25%"`
	// Q50 is the median.
	Q50 Stat `json:"50%"`
	// Q75 is the 75th percentile.
	Q75 Stat `json:"75%"`
	Max Stat `json:"max"`
}

// Summary is the descriptive statistics table of a sheet.
type Summary struct {
	// Columns lists numeric columns in sheet order.
	Columns []ColumnSummary `json:"columns"`
}
