package sheetpeek

import (
	"errors"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"github.com/sirupsen/logrus"
)

// Inspect opens the workbook at path, lists its sheets and previews each
// targeted sheet. A sheet that cannot be read keeps its error on the preview
// and does not stop the others; only failing to open the file is returned.
func Inspect(path string, opts Options) (*models.Report, error) {
	wb, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return wb.Report(opts), nil
}

// Report previews every sheet selected by opts.
func (w *Workbook) Report(opts Options) *models.Report {
	report := &models.Report{
		BookName:   w.Name(),
		SheetNames: w.SheetNames(),
	}

	for _, sheet := range w.TargetSheets(opts) {
		preview, err := w.Preview(sheet, opts)
		if err != nil {
			logrus.WithError(err).WithField("sheet", sheet).Debug("sheet preview failed")
			preview.Error = errorCause(err)
		}
		report.Previews = append(report.Previews, preview)
	}

	return report
}

// errorCause drops the SheetError prefix, since the sheet name is printed
// next to the message anyway.
func errorCause(err error) string {
	var se *SheetError
	if errors.As(err, &se) {
		return se.Err.Error()
	}
	return err.Error()
}
