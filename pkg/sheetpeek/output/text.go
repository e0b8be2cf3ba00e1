package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
)

const separator = "--------------------------------------------------"

func (p *Printer) reportText(r *models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", r.BookName)
	fmt.Fprintf(&b, "Sheet names: %s\n", pyList(r.SheetNames))

	if len(r.Sheets) > 0 {
		b.WriteByte('\n')
		_ = sheetsGrid(r.Sheets).write(&b)
	}

	for _, preview := range r.Previews {
		fmt.Fprintf(&b, "\n--- Sheet: %s ---\n", preview.Sheet)
		if preview.Error != "" {
			fmt.Fprintf(&b, "Error reading sheet %s: %s\n", preview.Sheet, preview.Error)
			continue
		}
		if len(preview.Rows) == 0 {
			b.WriteString("Empty sheet\n")
			if p.ShowColumns {
				fmt.Fprintf(&b, "Columns: %s\n", pyList(preview.Columns))
			}
		} else {
			_ = previewGrid(preview).write(&b)
			if p.ShowColumns {
				fmt.Fprintf(&b, "Columns: %s\n", pyList(preview.Columns))
			}
		}
		if preview.Summary != nil {
			b.WriteString("\nSummary statistics:\n")
			if len(preview.Summary.Columns) == 0 {
				b.WriteString("No numeric columns\n")
			} else {
				_ = summaryGrid(*preview.Summary).write(&b)
			}
		}
		b.WriteString(separator + "\n")
	}
	return b.String()
}

func sheetsGrid(infos []models.SheetInfo) grid {
	g := grid{
		columns: []string{"visible", "rows", "cols", "used_range"},
		index:   make([]string, len(infos)),
		cells:   make([][]string, len(infos)),
	}
	for i, info := range infos {
		g.index[i] = info.Name
		usedRange := info.UsedRange
		if usedRange == "" {
			usedRange = "-"
		}
		g.cells[i] = []string{
			strconv.FormatBool(info.Visible),
			strconv.Itoa(info.Rows),
			strconv.Itoa(info.Cols),
			usedRange,
		}
	}
	return g
}

func headersText(h HeaderList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Headers in '%s' (row %d):\n", h.Sheet, h.Row)
	if len(h.Headers) == 0 {
		b.WriteString("  (empty row)\n")
	}
	for i, label := range h.Headers {
		fmt.Fprintf(&b, "  Col %d: %s\n", i, label)
	}
	return b.String()
}

func matchesText(res SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Searching for %s...\n", pyList(res.Terms))
	for _, m := range res.Matches {
		fmt.Fprintf(&b, "FOUND '%s' in Sheet '%s' at %s: %q\n", m.Term, m.Sheet, m.Cell, m.Text)
	}
	for _, msg := range res.Errors {
		fmt.Fprintf(&b, "Error: %s\n", msg)
	}
	if len(res.Matches) == 0 {
		b.WriteString("(No matches found)\n")
	}
	b.WriteString("Search complete.\n")
	return b.String()
}

// pyList renders names the way a Python list of strings prints.
func pyList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = pyQuote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func pyQuote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
