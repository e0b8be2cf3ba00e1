package models

// SheetInfo describes one sheet of a workbook.
type SheetInfo struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Visible is false for hidden and very hidden sheets.
	Visible bool `json:"visible"`
	// Rows is the number of rows up to the last non-empty one.
	Rows int `json:"rows"`
	// Cols is the widest row length.
	Cols int `json:"cols"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:D10").
	UsedRange string `json:"used_range,omitempty"`
}

// SheetPreview is a bounded sample of rows read from one sheet.
type SheetPreview struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Columns holds one label per column.
	Columns []string `json:"columns"`
	// Index holds one label per row. Previews count from 0,
	// ranges use the 1-based sheet row number.
	Index []int `json:"index"`
	// Rows are padded to len(Columns).
	Rows []Row `json:"rows"`
	// Summary is set when descriptive statistics were requested.
	Summary *Summary `json:"summary,omitempty"`
	// Error holds the reason the sheet could not be read.
	Error string `json:"error,omitempty"`
}
