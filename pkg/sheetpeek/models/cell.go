// Package models defines the data structures produced by a workbook preview.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	// KindEmpty marks a missing cell.
	KindEmpty Kind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindText is a string cell.
	KindText
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a date or date-time cell.
	KindDate
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "empty"
	}
}

// Value is a single cell value read from a sheet.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
	Time time.Time
}

// Empty returns the missing value.
func Empty() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Text returns a string value. An empty string is treated as missing.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Kind: KindText, Str: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Date returns a date value.
func Date(t time.Time) Value { return Value{Kind: KindDate, Time: t} }

// IsEmpty reports whether v is the missing value.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// String renders the value the way it is shown in a preview.
// Missing values render as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDate:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 && v.Time.Nanosecond() == 0 {
			return v.Time.Format("2006-01-02")
		}
		return v.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Float coerces the value to a number. Numbers pass through, text is parsed
// after trimming surrounding space and must be finite; every other kind
// is not numeric.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// MarshalJSON encodes the value as a JSON scalar (null when missing).
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(Stat(v.Num))
	case KindText:
		return json.Marshal(v.Str)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindDate:
		return json.Marshal(v.Time.Format(time.RFC3339))
	default:
		return []byte("null"), nil
	}
}

// Row is an ordered sequence of values, positional to the sheet columns.
type Row []Value

// IsEmpty reports whether every value in the row is missing.
func (r Row) IsEmpty() bool {
	for _, v := range r {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

// Strings returns the rendered value of every cell.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}
