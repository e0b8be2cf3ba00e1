package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"empty", Empty(), ""},
		{"integer", Number(42), "42"},
		{"fraction", Number(0.1), "0.1"},
		{"negative", Number(-1.5), "-1.5"},
		{"large", Number(1e21), "1000000000000000000000"},
		{"text", Text("Load Profile"), "Load Profile"},
		{"bool", Bool(true), "true"},
		{"date", Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), "2024-03-01"},
		{"datetime", Date(time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)), "2024-03-01 07:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestTextEmptyIsMissing(t *testing.T) {
	assert.True(t, Text("").IsEmpty())
	assert.Equal(t, KindEmpty, Text("").Kind)
	assert.False(t, Text(" ").IsEmpty())
}

func TestValueFloat(t *testing.T) {
	tests := []struct {
		name   string
		v      Value
		want   float64
		wantOK bool
	}{
		{"number", Number(2.5), 2.5, true},
		{"numeric text", Text(" 12.5 "), 12.5, true},
		{"exponent text", Text("1e3"), 1000, true},
		{"word", Text("kw"), 0, false},
		{"nan text", Text("NaN"), 0, false},
		{"inf text", Text("Inf"), 0, false},
		{"bool", Bool(true), 0, false},
		{"date", Date(time.Now()), 0, false},
		{"empty", Empty(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Float()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRowHelpers(t *testing.T) {
	assert.True(t, Row{}.IsEmpty())
	assert.True(t, Row{Empty(), Empty()}.IsEmpty())
	assert.False(t, Row{Empty(), Number(0)}.IsEmpty())
	assert.Equal(t, []string{"", "a", "1"}, Row{Empty(), Text("a"), Number(1)}.Strings())
}

func TestRowJSON(t *testing.T) {
	row := Row{
		Empty(),
		Number(1.5),
		Number(math.NaN()),
		Text("a"),
		Bool(false),
		Date(time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)),
	}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `[null,1.5,null,"a",false,"2024-03-01T07:30:00Z"]`, string(data))
}

func TestSummaryJSON(t *testing.T) {
	s := ColumnSummary{Column: "kw", Count: 1, Mean: 2, Std: Stat(math.NaN()), Min: 2, Q25: 2, Q50: 2, Q75: 2, Max: 2}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"column":"kw","count":1,"mean":2,"std":null,"min":2,"25%":2,"50%":2,"75%":2,"max":2}`, string(data))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "empty", KindEmpty.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "date", KindDate.String())
}
