package analysis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// rowSource yields table rows in source order. Next returns io.EOF after the last row.
type rowSource interface {
	Next() ([]string, error)
	Close() error
}

func openSource(path string, opt Options) (rowSource, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		x, err := openXLSX(path, opt.Sheet)
		if err != nil {
			return nil, err
		}
		return x, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim
	return &csvSource{f: f, r: r}, nil
}

type csvSource struct {
	f *os.File
	r *csv.Reader
}

func (s *csvSource) Next() ([]string, error) { return s.r.Read() }

func (s *csvSource) Close() error { return s.f.Close() }

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

type xlsxSource struct {
	f    *excelize.File
	rows *excelize.Rows
}

// openXLSX streams rows from the named sheet, or the first sheet when name is empty.
func openXLSX(path, sheet string) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		available := strings.Join(f.GetSheetList(), ", ")
		_ = f.Close()
		return nil, fmt.Errorf("sheet %q not found (available: %s)", sheet, available)
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return &xlsxSource{f: f, rows: rows}, nil
}

func (s *xlsxSource) Next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns(excelize.Options{RawCellValue: true})
}

func (s *xlsxSource) Close() error {
	return errors.Join(s.rows.Close(), s.f.Close())
}
