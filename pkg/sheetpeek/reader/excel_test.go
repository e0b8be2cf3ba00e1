package reader

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newWorkbook saves a workbook built by build into a temporary directory.
func newWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f)

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// rawSummaryWorkbook has sheets Raw (header + 11 data rows, 3 columns) and Summary.
func rawSummaryWorkbook(t *testing.T) string {
	return newWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetSheetName("Sheet1", "Raw"))
		_, err := f.NewSheet("Summary")
		require.NoError(t, err)

		require.NoError(t, f.SetSheetRow("Raw", "A1", &[]interface{}{"id", "name", "load"}))
		for i := 2; i <= 12; i++ {
			cell := fmt.Sprintf("A%d", i)
			require.NoError(t, f.SetSheetRow("Raw", cell, &[]interface{}{i - 1, fmt.Sprintf("site-%d", i-1), float64(i) * 1.5}))
		}
		require.NoError(t, f.SetCellValue("Summary", "A1", "total"))
	})
}

func TestExcelSheetNames(t *testing.T) {
	src, err := Open(rawSummaryWorkbook(t), Options{})
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"Raw", "Summary"}, src.SheetNames())
}

func TestExcelReadRowsBound(t *testing.T) {
	src, err := Open(rawSummaryWorkbook(t), Options{})
	require.NoError(t, err)
	defer src.Close()

	tests := []struct {
		limit    int
		expected int
	}{
		{10, 10},
		{12, 12},
		{20, 12},
		{0, 12},
		{1, 1},
	}

	for _, tt := range tests {
		rows, err := src.ReadRows("Raw", tt.limit)
		require.NoError(t, err)
		assert.Len(t, rows, tt.expected, "limit %d", tt.limit)
		for _, row := range rows {
			assert.Len(t, row, 3)
		}
	}
}

func TestExcelReadRowsPositional(t *testing.T) {
	src, err := Open(rawSummaryWorkbook(t), Options{})
	require.NoError(t, err)
	defer src.Close()

	rows, err := src.ReadRows("Raw", 3)
	require.NoError(t, err)

	assert.Equal(t, models.Row{models.Text("id"), models.Text("name"), models.Text("load")}, rows[0])
	assert.Equal(t, models.Row{models.Number(1), models.Text("site-1"), models.Number(3)}, rows[1])
	assert.Equal(t, models.Row{models.Number(2), models.Text("site-2"), models.Number(4.5)}, rows[2])
}

func TestExcelReadRowsKeepsGaps(t *testing.T) {
	path := newWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "B1", "top"))
		require.NoError(t, f.SetCellValue("Sheet1", "A4", "bottom"))
	})
	src, err := Open(path, Options{})
	require.NoError(t, err)
	defer src.Close()

	rows, err := src.ReadRows("Sheet1", 0)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, models.Row{models.Empty(), models.Text("top")}, rows[0])
	assert.True(t, rows[1].IsEmpty())
	assert.True(t, rows[2].IsEmpty())
	assert.Equal(t, models.Row{models.Text("bottom")}, rows[3])
}

// styledBlankWorkbook has data in rows 1-3 and a fill style on A4:B30, so the
// sheet keeps row records for the empty rows below the data.
func styledBlankWorkbook(t *testing.T, extra func(f *excelize.File)) string {
	return newWorkbook(t, func(f *excelize.File) {
		for i := 1; i <= 3; i++ {
			require.NoError(t, f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i), &[]interface{}{i, fmt.Sprintf("v%d", i)}))
		}
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{"FFFF00"}, Pattern: 1},
		})
		require.NoError(t, err)
		require.NoError(t, f.SetCellStyle("Sheet1", "A4", "B30", style))
		if extra != nil {
			extra(f)
		}
	})
}

func TestReadRowsTrimsStyledBlankRows(t *testing.T) {
	path := styledBlankWorkbook(t, nil)

	for _, engine := range []Engine{EngineExcelize, EngineStream} {
		src, err := Open(path, Options{Engine: engine})
		require.NoError(t, err)

		tests := []struct {
			limit    int
			expected int
		}{
			{10, 3},
			{3, 3},
			{2, 2},
			{0, 3},
		}
		for _, tt := range tests {
			rows, err := src.ReadRows("Sheet1", tt.limit)
			require.NoError(t, err)
			assert.Len(t, rows, tt.expected, "%s limit %d", engine, tt.limit)
		}
		require.NoError(t, src.Close())
	}
}

func TestReadRowsKeepsBlankRowsBeforeLaterData(t *testing.T) {
	path := styledBlankWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "A13", "late"))
	})

	for _, engine := range []Engine{EngineExcelize, EngineStream} {
		src, err := Open(path, Options{Engine: engine})
		require.NoError(t, err)

		rows, err := src.ReadRows("Sheet1", 10)
		require.NoError(t, err)
		require.Len(t, rows, 10, engine)
		assert.Equal(t, models.Row{models.Number(3), models.Text("v3")}, rows[2])
		for _, row := range rows[3:] {
			assert.True(t, row.IsEmpty(), engine)
		}

		rows, err = src.ReadRows("Sheet1", 20)
		require.NoError(t, err)
		require.Len(t, rows, 13, engine)
		assert.Equal(t, models.Row{models.Text("late")}, rows[12])
		require.NoError(t, src.Close())
	}
}

func TestExcelCellTypes(t *testing.T) {
	when := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	path := newWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "A1", 100))
		require.NoError(t, f.SetCellValue("Sheet1", "B1", 200.5))
		require.NoError(t, f.SetCellValue("Sheet1", "C1", "Text"))
		require.NoError(t, f.SetCellValue("Sheet1", "D1", true))
		require.NoError(t, f.SetCellValue("Sheet1", "E1", when))
	})
	src, err := Open(path, Options{})
	require.NoError(t, err)
	defer src.Close()

	rows, err := src.ReadRows("Sheet1", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	require.Len(t, row, 5)

	assert.Equal(t, models.Number(100), row[0])
	assert.Equal(t, models.Number(200.5), row[1])
	assert.Equal(t, models.Text("Text"), row[2])
	assert.Equal(t, models.Bool(true), row[3])
	assert.Equal(t, models.KindDate, row[4].Kind)
	assert.True(t, when.Equal(row[4].Time), "got %v", row[4].Time)
}

func TestExcelMissingSheet(t *testing.T) {
	src, err := Open(rawSummaryWorkbook(t), Options{})
	require.NoError(t, err)
	defer src.Close()

	_, err = src.ReadRows("Nope", 5)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestExcelSheetVisible(t *testing.T) {
	path := newWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Hidden")
		require.NoError(t, err)
		require.NoError(t, f.SetSheetVisible("Hidden", false))
	})
	src, err := Open(path, Options{})
	require.NoError(t, err)
	defer src.Close()

	vis, ok := src.(VisibilityReporter)
	require.True(t, ok)

	visible, err := vis.SheetVisible("Sheet1")
	require.NoError(t, err)
	assert.True(t, visible)

	visible, err = vis.SheetVisible("Hidden")
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"dd/mm/yyyy hh:mm", true},
		{"[$-409]h:mm AM/PM", true},
		{"0.00", false},
		{"#,##0", false},
		{`0 "days"`, false},
		{"[Red]0.00", false},
		{"General", false},
		{"@", false},
		{"0.00E+00", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isDateFormatCode(tt.code), "isDateFormatCode(%q)", tt.code)
	}
}

func TestIsDateFormatBuiltin(t *testing.T) {
	assert.True(t, isDateFormat(14, nil))
	assert.True(t, isDateFormat(22, nil))
	assert.False(t, isDateFormat(0, nil))
	assert.False(t, isDateFormat(2, nil))

	custom := "0.0%"
	assert.False(t, isDateFormat(170, &custom))
}

func TestOpenUnsupportedFormat(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "notes.docx"), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineAuto, e)

	e, err = ParseEngine(" Stream ")
	require.NoError(t, err)
	assert.Equal(t, EngineStream, e)

	_, err = ParseEngine("pandas")
	assert.Error(t, err)
}
