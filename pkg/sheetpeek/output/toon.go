package output

import (
	"math"
	"time"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
)

// The TOON encoder works on plain maps and slices, so reports are flattened
// into those before encoding.

func reportPayload(r *models.Report) map[string]interface{} {
	payload := map[string]interface{}{
		"book_name":   r.BookName,
		"sheet_names": r.SheetNames,
	}

	if len(r.Sheets) > 0 {
		sheets := make([]map[string]interface{}, 0, len(r.Sheets))
		for _, s := range r.Sheets {
			sheets = append(sheets, map[string]interface{}{
				"name":       s.Name,
				"visible":    s.Visible,
				"rows":       s.Rows,
				"cols":       s.Cols,
				"used_range": s.UsedRange,
			})
		}
		payload["sheets"] = sheets
	}

	if len(r.Previews) > 0 {
		previews := make([]map[string]interface{}, 0, len(r.Previews))
		for _, p := range r.Previews {
			previews = append(previews, previewPayload(p))
		}
		payload["previews"] = previews
	}
	return payload
}

func previewPayload(p models.SheetPreview) map[string]interface{} {
	out := map[string]interface{}{
		"sheet": p.Sheet,
	}
	if p.Error != "" {
		out["error"] = p.Error
		return out
	}

	rows := make([][]interface{}, 0, len(p.Rows))
	for _, row := range p.Rows {
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = plainValue(v)
		}
		rows = append(rows, values)
	}
	out["columns"] = p.Columns
	out["index"] = p.Index
	out["rows"] = rows

	if p.Summary != nil {
		stats := make([]map[string]interface{}, 0, len(p.Summary.Columns))
		for _, c := range p.Summary.Columns {
			stats = append(stats, map[string]interface{}{
				"column": c.Column,
				"count":  c.Count,
				"mean":   plainStat(c.Mean),
				"std":    plainStat(c.Std),
				"min":    plainStat(c.Min),
				"25%":    plainStat(c.Q25),
				"50%":    plainStat(c.Q50),
				"75%":    plainStat(c.Q75),
				"max":    plainStat(c.Max),
			})
		}
		out["summary"] = stats
	}
	return out
}

func matchesPayload(res SearchResult) map[string]interface{} {
	matches := make([]map[string]interface{}, 0, len(res.Matches))
	for _, m := range res.Matches {
		matches = append(matches, map[string]interface{}{
			"term":  m.Term,
			"sheet": m.Sheet,
			"cell":  m.Cell,
			"row":   m.Row,
			"col":   m.Col,
			"text":  m.Text,
		})
	}
	payload := map[string]interface{}{
		"terms":   res.Terms,
		"matches": matches,
	}
	if len(res.Errors) > 0 {
		payload["errors"] = res.Errors
	}
	return payload
}

func plainValue(v models.Value) interface{} {
	switch v.Kind {
	case models.KindNumber:
		return plainStat(models.Stat(v.Num))
	case models.KindText:
		return v.Str
	case models.KindBool:
		return v.Bool
	case models.KindDate:
		return v.Time.Format(time.RFC3339)
	default:
		return nil
	}
}

func plainStat(s models.Stat) interface{} {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
