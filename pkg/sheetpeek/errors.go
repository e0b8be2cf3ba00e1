package sheetpeek

import (
	"errors"
	"fmt"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/reader"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates a requested sheet does not exist in the workbook.
var ErrSheetNotFound = reader.ErrSheetNotFound

// ErrUnsupportedFormat indicates the file extension is not a known spreadsheet format.
var ErrUnsupportedFormat = reader.ErrUnsupportedFormat

// ErrInvalidRange indicates a malformed A1 range reference.
var ErrInvalidRange = reader.ErrInvalidRange

// SheetError represents a failure while reading one sheet.
type SheetError struct {
	Sheet string
	Op    string // "preview", "describe", "range", "headers", "find", "info"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s sheet %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, op string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Op:    op,
		Err:   err,
	}
}
