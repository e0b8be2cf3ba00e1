// Package sheetpeek opens spreadsheet workbooks and builds bounded row
// previews of their sheets for inspection.
package sheetpeek

import (
	"fmt"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/reader"
)

// DefaultRows is the preview bound used when Options.Rows is not positive.
const DefaultRows = 10

// Engine selects the backend used for OOXML workbooks.
type Engine = reader.Engine

const (
	EngineAuto     = reader.EngineAuto
	EngineExcelize = reader.EngineExcelize
	EngineStream   = reader.EngineStream
)

// ParseEngine parses an engine name. The empty string selects EngineAuto.
func ParseEngine(s string) (Engine, error) {
	return reader.ParseEngine(s)
}

// Options configures a preview.
type Options struct {
	// Rows bounds the number of previewed rows (header excluded).
	Rows int
	// Header treats the first row as column labels instead of data.
	Header bool
	// Sheets restricts the preview to these sheets, in this order.
	// If empty, every sheet is previewed in workbook order.
	Sheets []string
	// MaxCols caps the number of previewed columns. Zero means no cap.
	MaxCols int
	// Describe attaches descriptive statistics computed over the whole sheet.
	Describe bool
	// VisibleOnly skips hidden sheets when Sheets is empty.
	VisibleOnly bool
	// Engine selects the OOXML backend.
	Engine Engine
	// Comma is the CSV delimiter. Zero picks one from the file extension.
	Comma rune
	// Encoding is the CSV text encoding (and .xls charset).
	Encoding string
}

// DefaultOptions returns default preview options.
func DefaultOptions() Options {
	return Options{
		Rows:     DefaultRows,
		Engine:   EngineAuto,
		Encoding: "utf-8",
	}
}

// RowLimit returns the effective preview bound.
func (o Options) RowLimit() int {
	if o.Rows <= 0 {
		return DefaultRows
	}
	return o.Rows
}

// Validate reports option values that cannot be honoured.
func (o Options) Validate() error {
	if o.Rows < 0 {
		return fmt.Errorf("rows must not be negative, got %d", o.Rows)
	}
	if o.MaxCols < 0 {
		return fmt.Errorf("max columns must not be negative, got %d", o.MaxCols)
	}
	if _, err := reader.ParseEngine(string(o.Engine)); err != nil {
		return err
	}
	return nil
}

func (o Options) readerOptions() reader.Options {
	return reader.Options{
		Engine:   o.Engine,
		Comma:    o.Comma,
		Encoding: o.Encoding,
	}
}
