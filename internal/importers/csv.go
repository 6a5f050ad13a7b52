package importers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// RawRow maps a header column name to the raw value of one data line.
type RawRow map[string]string

// Get returns the trimmed value of column, or "" when the column is absent.
func (r RawRow) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// First returns the first non-empty value among columns.
func (r RawRow) First(columns ...string) string {
	for _, c := range columns {
		if v := r.Get(c); v != "" {
			return v
		}
	}
	return ""
}

// Has reports whether column was part of the header.
func (r RawRow) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// ParseCSV reads comma-separated export data into rows keyed by header name.
//
// Quoted fields may contain commas, doubled quotes and newlines. Rows shorter
// than the header are padded with empty values; all-blank rows are dropped.
// Input with no data lines yields no rows and no error. Only read failures
// are returned as errors.
func ParseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		columns[i] = strings.TrimSpace(h)
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if isParseError(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if isBlankRecord(record) {
			continue
		}
		rows = append(rows, newRawRow(columns, record))
	}

	return rows, nil
}

func newRawRow(columns, record []string) RawRow {
	row := make(RawRow, len(columns))
	for i, name := range columns {
		if _, dup := row[name]; dup {
			continue
		}
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}
	return row
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func isParseError(err error) bool {
	var parseErr *csv.ParseError
	return errors.As(err, &parseErr)
}
