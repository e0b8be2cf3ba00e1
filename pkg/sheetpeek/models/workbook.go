package models

// Report is everything printed for one workbook.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists every sheet in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets carries per-sheet details when they were requested.
	Sheets []SheetInfo `json:"sheets,omitempty"`
	// Previews holds one entry per targeted sheet.
	Previews []SheetPreview `json:"previews,omitempty"`
}

// Match is one search hit.
type Match struct {
	Sheet string `json:"sheet"`
	// Term is the search term that matched.
	Term string `json:"term"`
	// Row is the 1-based sheet row.
	Row int `json:"row"`
	// Col is the 1-based sheet column.
	Col int `json:"col"`
	// Cell is the A1 reference of the hit.
	Cell string `json:"cell"`
	Text string `json:"text"`
}
