package output

import (
	"fmt"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
)

func reportMarkdown(r *models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdownCell(r.BookName))

	b.WriteString("## Sheets\n\n")
	if len(r.Sheets) > 0 {
		b.WriteString("| Name | Visible | Rows | Columns | Used range |\n")
		b.WriteString("| --- | --- | ---: | ---: | --- |\n")
		for _, s := range r.Sheets {
			fmt.Fprintf(&b, "| %s | %t | %d | %d | %s |\n",
				escapeMarkdownCell(s.Name), s.Visible, s.Rows, s.Cols, escapeMarkdownCell(s.UsedRange))
		}
	} else {
		for _, name := range r.SheetNames {
			fmt.Fprintf(&b, "- %s\n", escapeMarkdownCell(name))
		}
	}

	for _, preview := range r.Previews {
		fmt.Fprintf(&b, "\n## Sheet: %s\n\n", escapeMarkdownCell(preview.Sheet))
		if preview.Error != "" {
			fmt.Fprintf(&b, "_Error reading sheet: %s_\n", escapeMarkdownCell(preview.Error))
			continue
		}
		if len(preview.Rows) == 0 {
			b.WriteString("_Empty sheet._\n")
		} else {
			writeMarkdownGrid(&b, previewGrid(preview))
		}
		if preview.Summary != nil && len(preview.Summary.Columns) > 0 {
			b.WriteString("\n### Summary statistics\n\n")
			writeMarkdownGrid(&b, summaryGrid(*preview.Summary))
		}
	}
	return b.String()
}

func headersMarkdown(h HeaderList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Headers: %s (row %d)\n\n", escapeMarkdownCell(h.Sheet), h.Row)
	b.WriteString("| # | Header |\n")
	b.WriteString("| ---: | --- |\n")
	for i, label := range h.Headers {
		fmt.Fprintf(&b, "| %d | %s |\n", i, escapeMarkdownCell(label))
	}
	return b.String()
}

func matchesMarkdown(res SearchResult) string {
	var b strings.Builder
	b.WriteString("## Matches\n\n")
	if len(res.Matches) == 0 {
		b.WriteString("_No matches found._\n")
	} else {
		b.WriteString("| Term | Sheet | Cell | Text |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, m := range res.Matches {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				escapeMarkdownCell(m.Term), escapeMarkdownCell(m.Sheet), m.Cell, escapeMarkdownCell(m.Text))
		}
	}
	for _, msg := range res.Errors {
		fmt.Fprintf(&b, "\n_Error: %s_\n", escapeMarkdownCell(msg))
	}
	return b.String()
}

// writeMarkdownGrid writes g as a GitHub table. The index column is
// unlabelled and every data column is right aligned.
func writeMarkdownGrid(b *strings.Builder, g grid) {
	b.WriteString("|  |")
	for _, label := range g.columns {
		b.WriteString(" " + escapeMarkdownCell(label) + " |")
	}
	b.WriteString("\n| --- |")
	for range g.columns {
		b.WriteString(" ---: |")
	}
	b.WriteByte('\n')
	for r, row := range g.cells {
		b.WriteString("| " + escapeMarkdownCell(g.index[r]) + " |")
		for _, cell := range row {
			b.WriteString(" " + escapeMarkdownCell(cell) + " |")
		}
		b.WriteByte('\n')
	}
}

func escapeMarkdownCell(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", " ")
	return v
}
