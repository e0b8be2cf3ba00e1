package output

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"golang.org/x/text/width"
)

// missing is printed in place of an empty cell.
const missing = "NaN"

// grid is a labelled table of already rendered cells.
type grid struct {
	columns []string
	index   []string
	cells   [][]string
}

// previewGrid renders the rows of a preview.
func previewGrid(p models.SheetPreview) grid {
	g := grid{
		columns: p.Columns,
		index:   make([]string, len(p.Rows)),
		cells:   make([][]string, len(p.Rows)),
	}
	for i, row := range p.Rows {
		if i < len(p.Index) {
			g.index[i] = strconv.Itoa(p.Index[i])
		} else {
			g.index[i] = strconv.Itoa(i)
		}
		g.cells[i] = make([]string, len(p.Columns))
		for c := range p.Columns {
			if c < len(row) {
				g.cells[i][c] = cellText(row[c])
			} else {
				g.cells[i][c] = missing
			}
		}
	}
	return g
}

// summaryGrid lays a summary out with one column per numeric column and one
// row per statistic.
func summaryGrid(s models.Summary) grid {
	g := grid{
		columns: make([]string, len(s.Columns)),
		index:   []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"},
	}
	g.cells = make([][]string, len(g.index))
	for i := range g.cells {
		g.cells[i] = make([]string, len(s.Columns))
	}
	for c, col := range s.Columns {
		g.columns[c] = col.Column
		stats := []float64{
			float64(col.Count),
			float64(col.Mean),
			float64(col.Std),
			float64(col.Min),
			float64(col.Q25),
			float64(col.Q50),
			float64(col.Q75),
			float64(col.Max),
		}
		for r, v := range stats {
			g.cells[r][c] = statText(v)
		}
	}
	return g
}

func cellText(v models.Value) string {
	if v.IsEmpty() {
		return missing
	}
	s := v.String()
	s = strings.ReplaceAll(s, "\r", `\r`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

func statText(f float64) string {
	if math.IsNaN(f) {
		return missing
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// write prints g with a left aligned index and right aligned cells, columns
// separated by two spaces.
func (g grid) write(w io.Writer) error {
	widths := make([]int, len(g.columns)+1)
	for _, label := range g.index {
		widths[0] = max(widths[0], displayWidth(label))
	}
	for c, label := range g.columns {
		widths[c+1] = displayWidth(label)
	}
	for _, row := range g.cells {
		for c, cell := range row {
			widths[c+1] = max(widths[c+1], displayWidth(cell))
		}
	}

	var b strings.Builder
	writeLine := func(first string, cells []string) {
		line := padRight(first, widths[0])
		for c, cell := range cells {
			line += "  " + padLeft(cell, widths[c+1])
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}

	writeLine("", g.columns)
	for r, row := range g.cells {
		writeLine(g.index[r], row)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// displayWidth is the number of terminal columns s occupies. Wide and
// fullwidth runes take two columns, combining marks none.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
		case isWide(r):
			n += 2
		default:
			n++
		}
	}
	return n
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}

func padLeft(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}

func padRight(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
