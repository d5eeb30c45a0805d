package analysis

import (
	"fmt"
	"strings"
)

// InputError indicates the source could not be opened, read, or parsed.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("input %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("input: %v", e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// SchemaError indicates the required column is absent from the header.
type SchemaError struct {
	Column string
	Header []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Header, ", "))
}

// EmptyDataError indicates no valid values remain after filtering and truncation.
type EmptyDataError struct {
	Column string
}

func (e *EmptyDataError) Error() string {
	if e.Column == "" {
		return "no values to summarize"
	}
	return fmt.Sprintf("column %q has no values to summarize", e.Column)
}

// NumericDomainError indicates a value outside the domain of a statistic.
type NumericDomainError struct {
	Statistic string
	Value     float64
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("%s undefined for value %s", e.Statistic, FormatFloat(e.Value))
}
