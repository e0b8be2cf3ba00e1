package reader

import (
	"testing"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestStreamMatchesExcelize(t *testing.T) {
	path := rawSummaryWorkbook(t)

	stream, err := Open(path, Options{Engine: EngineStream})
	require.NoError(t, err)
	defer stream.Close()
	_, isStream := stream.(*streamSource)
	require.True(t, isStream)

	assert.Equal(t, []string{"Raw", "Summary"}, stream.SheetNames())

	rows, err := stream.ReadRows("Raw", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 12)

	rows, err = stream.ReadRows("Raw", 10)
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, models.Row{models.Number(1), models.Text("site-1"), models.Number(3)}, rows[1])
}

func TestStreamFillsGaps(t *testing.T) {
	path := newWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "A1", "top"))
		require.NoError(t, f.SetCellValue("Sheet1", "C3", 7))
	})
	src, err := Open(path, Options{Engine: EngineStream})
	require.NoError(t, err)
	defer src.Close()

	rows, err := src.ReadRows("Sheet1", 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[1].IsEmpty())
	assert.Equal(t, models.Row{models.Empty(), models.Empty(), models.Number(7)}, rows[2])

	rows, err = src.ReadRows("Sheet1", 2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestStreamMissingSheet(t *testing.T) {
	src, err := Open(rawSummaryWorkbook(t), Options{Engine: EngineStream})
	require.NoError(t, err)
	defer src.Close()

	_, err = src.ReadRows("Nope", 1)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}
