package analysis

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultColumn is the column summarized when Options.Column is empty.
const DefaultColumn = "Solution"

// DefaultZeroSubstitute replaces exact zeros so the geometric mean stays defined.
const DefaultZeroSubstitute = 0.1

// Options controls how a series is extracted from a table.
type Options struct {
	// Column to extract. Empty means DefaultColumn.
	Column string
	// Limit keeps only the first Limit valid values; 0 means all.
	Limit int
	// Delimiter for delimited text. If 0, '\t' for .tsv and ',' otherwise.
	Delimiter rune
	// DecimalSeparator for numeric cells; 0 or '.' means '.'.
	DecimalSeparator rune
	// Sheet selects the XLSX worksheet; empty means the first one.
	Sheet string
}

// DefaultOptions returns options that read every valid value of the Solution column.
func DefaultOptions() Options {
	return Options{Column: DefaultColumn}
}

// Series is the ordered sequence of valid values of one column.
type Series struct {
	Name    string
	Column  string
	Rows    int // data rows read
	Missing int // rows dropped because the cell was missing
	Values  []float64
}

// missing markers recognised in addition to the empty cell
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

func isMissing(v string) bool {
	if v == "" {
		return true
	}
	_, ok := missingMarkers[v]
	return ok
}

// LoadSeries parses the whole table at path and returns the valid values of opt.Column
// in source order, truncated to opt.Limit when set.
func LoadSeries(path string, opt Options) (*Series, error) {
	column := opt.Column
	if column == "" {
		column = DefaultColumn
	}
	src, err := openSource(path, opt)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer src.Close()

	header, err := src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &InputError{Path: path, Err: errors.New("no header row")}
		}
		return nil, &InputError{Path: path, Err: fmt.Errorf("read header: %w", err)}
	}
	idx := -1
	names := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		names[i] = strings.TrimSpace(h)
		if idx < 0 && names[i] == column {
			idx = i
		}
	}
	if idx < 0 {
		return nil, &SchemaError{Column: column, Header: names}
	}

	s := &Series{Name: filepath.Base(path), Column: column}
	// Every row is read and validated; the limit only bounds what is kept.
	for {
		rec, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &InputError{Path: path, Err: fmt.Errorf("read row %d: %w", s.Rows+1, err)}
		}
		s.Rows++
		var v string
		if idx < len(rec) {
			v = strings.TrimSpace(rec[idx])
		}
		if isMissing(v) {
			s.Missing++
			continue
		}
		x, err := parseValue(v, opt.DecimalSeparator)
		if err != nil {
			return nil, &InputError{Path: path, Err: fmt.Errorf("row %d: column %q: %w", s.Rows, column, err)}
		}
		if math.IsNaN(x) {
			s.Missing++
			continue
		}
		if opt.Limit <= 0 || len(s.Values) < opt.Limit {
			s.Values = append(s.Values, x)
		}
	}
	return s, nil
}

func parseValue(v string, dec rune) (float64, error) {
	if dec != 0 && dec != '.' {
		v = strings.ReplaceAll(v, string(dec), ".")
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", v)
	}
	return x, nil
}

// ZeroAdjusted returns a copy of the values with every exact zero replaced by sub.
func (s *Series) ZeroAdjusted(sub float64) []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v == 0 {
			v = sub
		}
		out[i] = v
	}
	return out
}
