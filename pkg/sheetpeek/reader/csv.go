package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huy16/sheetpeek/pkg/sheetpeek/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// csvSource exposes a delimited text file as a workbook with a single sheet
// named after the file.
type csvSource struct {
	path  string
	name  string
	comma rune
	enc   encoding.Encoding
}

func openCSV(path string, opts Options) (Source, error) {
	// Fail early on unreadable files; rows are read lazily.
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	f.Close()

	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	comma := opts.Comma
	if comma == 0 {
		comma = ','
		if strings.EqualFold(filepath.Ext(path), ".tsv") {
			comma = '\t'
		}
	}
	base := filepath.Base(path)
	return &csvSource{
		path:  path,
		name:  strings.TrimSuffix(base, filepath.Ext(base)),
		comma: comma,
		enc:   enc,
	}, nil
}

// lookupEncoding resolves a WHATWG encoding label such as "utf-8",
// "windows-1258" or "latin1".
func lookupEncoding(label string) (encoding.Encoding, error) {
	if label == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q: %w", label, err)
	}
	return enc, nil
}

func (s *csvSource) SheetNames() []string {
	return []string{s.name}
}

func (s *csvSource) ReadRows(sheet string, limit int) ([]models.Row, error) {
	if sheet != s.name {
		return nil, sheetNotFound(sheet)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// A byte order mark overrides the configured encoding.
	decoded := transform.NewReader(f, unicode.BOMOverride(s.enc.NewDecoder()))
	r := csv.NewReader(decoded)
	r.Comma = s.comma
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	win := newWindow(limit)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(models.Row, len(record))
		for i, field := range record {
			row[i] = csvValue(field)
		}
		if win.add(trimRow(row)) {
			return win.result(), nil
		}
	}
	return win.result(), nil
}

func (s *csvSource) Close() error {
	return nil
}

// csvValue types a field. Surrounding blanks are ignored when the field is a
// number or a boolean; text keeps its whitespace.
func csvValue(field string) models.Value {
	v := ParseValue(strings.TrimSpace(field))
	if v.Kind == models.KindText || (v.IsEmpty() && field != "") {
		return models.Text(field)
	}
	return v
}
