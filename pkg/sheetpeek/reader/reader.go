// Package reader opens spreadsheet files and reads rows from their sheets.
//
// Each file format is served by its own backend behind the Source interface:
// excelize or xlsxreader for OOXML workbooks, extrame/xls for BIFF workbooks
// and encoding/csv for delimited text.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
)

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedFormat indicates the file extension has no backend.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrInvalidRange indicates a malformed A1 range reference.
var ErrInvalidRange = errors.New("invalid range")

// Engine selects the backend for OOXML workbooks.
type Engine string

const (
	// EngineAuto picks the default backend for the extension.
	EngineAuto Engine = "auto"
	// EngineExcelize reads OOXML workbooks with excelize, including cell types and date styles.
	EngineExcelize Engine = "excelize"
	// EngineStream reads OOXML workbooks with the low-memory xlsxreader row stream.
	// xlsxreader cannot cancel a sheet, so every bounded ReadRows that stops
	// before the end of a sheet leaves one goroutine blocked until the process
	// exits. Prefer EngineExcelize in long-running processes.
	EngineStream Engine = "stream"
)

// ParseEngine validates an engine name. The empty string means EngineAuto.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return EngineAuto, nil
	case EngineAuto, EngineExcelize, EngineStream:
		return e, nil
	default:
		return "", fmt.Errorf("unknown engine %q (must be auto, excelize, or stream)", s)
	}
}

// Source reads rows from one opened workbook file.
type Source interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// ReadRows returns up to limit rows from the top of the sheet.
	// A limit <= 0 reads the whole sheet. Rows keep their position:
	// empty rows between data rows are returned as empty Rows, while empty
	// rows after the last data row are dropped even when they carry styles.
	ReadRows(sheet string, limit int) ([]models.Row, error)
	Close() error
}

// VisibilityReporter is implemented by sources that know about hidden sheets.
type VisibilityReporter interface {
	SheetVisible(sheet string) (bool, error)
}

// Options configures how a file is opened.
type Options struct {
	Engine Engine
	// Comma is the CSV field delimiter. Zero picks tab for .tsv and comma otherwise.
	Comma rune
	// Encoding is the text encoding of CSV files and the charset of .xls files.
	Encoding string
}

// Open opens path with the backend matching its extension.
func Open(path string, opts Options) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		if opts.Engine == EngineStream {
			return openStream(path)
		}
		return openExcel(path)
	case ".xls":
		return openXLS(path, opts.Encoding)
	case ".csv", ".tsv", ".txt":
		return openCSV(path, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Width returns the length of the widest row.
func Width(rows []models.Row) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func hasSheet(names []string, sheet string) bool {
	for _, name := range names {
		if name == sheet {
			return true
		}
	}
	return false
}

func sheetNotFound(sheet string) error {
	return fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
}
