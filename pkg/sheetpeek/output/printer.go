package output

import (
	"fmt"
	"io"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	toon "github.com/mateuszkardas/toon-go"
)

// Printer writes reports to W in the selected format.
type Printer struct {
	W      io.Writer
	Format Format
	// Pretty indents JSON output.
	Pretty bool
	// ShowColumns lists the column labels after each text preview.
	ShowColumns bool
}

// NewPrinter returns a Printer writing format f to w.
func NewPrinter(w io.Writer, f Format) *Printer {
	return &Printer{W: w, Format: f}
}

// HeaderList is the header row of one sheet.
type HeaderList struct {
	Sheet   string   `json:"sheet"`
	Row     int      `json:"row"`
	Headers []string `json:"headers"`
}

// SearchResult is the outcome of a cell search.
type SearchResult struct {
	Terms   []string       `json:"terms"`
	Matches []models.Match `json:"matches"`
	// Errors holds sheets that could not be searched.
	Errors []string `json:"errors,omitempty"`
}

// Report writes a workbook report.
func (p *Printer) Report(r *models.Report) error {
	switch p.Format {
	case FormatJSON:
		return p.writeJSON(r)
	case FormatMarkdown:
		return p.write(reportMarkdown(r))
	case FormatTOON:
		return p.writeTOON(reportPayload(r))
	default:
		return p.write(p.reportText(r))
	}
}

// Headers writes the labels of one header row.
func (p *Printer) Headers(h HeaderList) error {
	switch p.Format {
	case FormatJSON:
		return p.writeJSON(h)
	case FormatMarkdown:
		return p.write(headersMarkdown(h))
	case FormatTOON:
		return p.writeTOON(map[string]interface{}{
			"sheet":   h.Sheet,
			"row":     h.Row,
			"headers": h.Headers,
		})
	default:
		return p.write(headersText(h))
	}
}

// Matches writes search hits.
func (p *Printer) Matches(res SearchResult) error {
	switch p.Format {
	case FormatJSON:
		if res.Matches == nil {
			res.Matches = []models.Match{}
		}
		return p.writeJSON(res)
	case FormatMarkdown:
		return p.write(matchesMarkdown(res))
	case FormatTOON:
		return p.writeTOON(matchesPayload(res))
	default:
		return p.write(matchesText(res))
	}
}

// FileError reports a workbook that could not be opened.
func (p *Printer) FileError(err error) error {
	switch p.Format {
	case FormatJSON:
		return p.writeJSON(map[string]string{"error": err.Error()})
	case FormatTOON:
		return p.writeTOON(map[string]interface{}{"error": err.Error()})
	default:
		return p.write(fmt.Sprintf("Error reading file: %v\n", err))
	}
}

// SheetError reports a sheet that could not be read.
func (p *Printer) SheetError(sheet string, err error) error {
	switch p.Format {
	case FormatJSON:
		return p.writeJSON(map[string]string{"sheet": sheet, "error": err.Error()})
	case FormatTOON:
		return p.writeTOON(map[string]interface{}{"sheet": sheet, "error": err.Error()})
	default:
		return p.write(fmt.Sprintf("Error reading sheet %s: %v\n", sheet, err))
	}
}

func (p *Printer) write(s string) error {
	_, err := io.WriteString(p.W, s)
	return err
}

func (p *Printer) writeJSON(v any) error {
	data, err := ToJSON(v, p.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return p.write(string(data) + "\n")
}

func (p *Printer) writeTOON(payload map[string]interface{}) error {
	s, err := toon.Marshal(payload, nil)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return p.write(s + "\n")
}
