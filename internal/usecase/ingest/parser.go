// Package ingest turns raw meeting input (CSV text or a filled-in form)
// into canonical meeting records.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row maps header names to the trimmed cell values of one data line.
// Columns missing from a short line are absent from the map.
type Row map[string]string

// Table is a parsed CSV document
type Table struct {
	Headers []string
	Rows    []Row
}

type parseOptions struct {
	quoted bool
}

// ParseOption tunes Parse
type ParseOption func(*parseOptions)

// WithQuotedFields switches from the plain comma split to an RFC 4180
// reader that understands quoted fields and embedded commas.
func WithQuotedFields() ParseOption {
	return func(o *parseOptions) { o.quoted = true }
}

// Parse splits CSV text into a header and data rows. By default lines are
// split on "\n" and cells on ",", with no quote handling. The first line is
// the header; blank lines are skipped.
func Parse(text string, opts ...ParseOption) (*Table, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.quoted {
		return parseQuoted(text)
	}
	return parseSimple(text), nil
}

func parseSimple(text string) *Table {
	lines := strings.Split(text, "\n")
	t := &Table{Headers: trimAll(strings.Split(lines[0], ","))}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.Rows = append(t.Rows, t.row(trimAll(strings.Split(line, ","))))
	}
	return t
}

func parseQuoted(text string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return &Table{Headers: []string{""}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	t := &Table{Headers: trimAll(header)}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		values := trimAll(record)
		if len(values) == 1 && values[0] == "" {
			continue
		}
		t.Rows = append(t.Rows, t.row(values))
	}
	return t, nil
}

// row maps values to headers by position. Extra values are ignored.
func (t *Table) row(values []string) Row {
	row := make(Row, len(t.Headers))
	for i, h := range t.Headers {
		if i >= len(values) {
			break
		}
		row[h] = values[i]
	}
	return row
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
