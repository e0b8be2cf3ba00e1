package reader

import (
	"github.com/extrame/xls"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
)

// xlsSource reads legacy BIFF (.xls) workbooks. Cell values arrive as the
// strings Excel would display and are typed with ParseValue.
//
// xls.Open does not hand back the underlying file, so the handle stays open
// until the process exits and Close has nothing to release.
type xlsSource struct {
	wb    *xls.WorkBook
	names []string
}

func openXLS(path, charset string) (Source, error) {
	if charset == "" {
		charset = "utf-8"
	}
	wb, err := xls.Open(path, charset)
	if err != nil {
		return nil, err
	}
	src := &xlsSource{wb: wb}
	for i := 0; i < wb.NumSheets(); i++ {
		if sheet := wb.GetSheet(i); sheet != nil {
			src.names = append(src.names, sheet.Name)
		}
	}
	return src, nil
}

func (s *xlsSource) SheetNames() []string {
	return append([]string(nil), s.names...)
}

func (s *xlsSource) ReadRows(sheet string, limit int) ([]models.Row, error) {
	ws := s.sheet(sheet)
	if ws == nil {
		return nil, sheetNotFound(sheet)
	}

	win := newWindow(limit)
	for r := 0; r <= int(ws.MaxRow); r++ {
		var row models.Row
		if xr := xlsRow(ws, r); xr != nil {
			for c := 0; c < xr.LastCol(); c++ {
				row = append(row, ParseValue(xr.Col(c)))
			}
		}
		if win.add(trimRow(row)) {
			return win.result(), nil
		}
	}
	return win.result(), nil
}

func (s *xlsSource) Close() error {
	return nil
}

func (s *xlsSource) sheet(name string) *xls.WorkSheet {
	for i := 0; i < s.wb.NumSheets(); i++ {
		if ws := s.wb.GetSheet(i); ws != nil && ws.Name == name {
			return ws
		}
	}
	return nil
}

// xlsRow returns row r of ws, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences the missing row and panics.
func xlsRow(ws *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(r)
}
