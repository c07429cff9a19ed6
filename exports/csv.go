// Package exports renders audit reports as CSV, PDF and XLSX documents.
package exports

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrEmptyExport is returned when there are no rows to export; callers send
// no file in that case.
var ErrEmptyExport = errors.New("exports: nothing to export")

// Field is one named cell of a Record. Key order is preserved.
type Field struct {
	Key   string
	Value interface{}
}

type Record []Field

func (r Record) get(key string) (interface{}, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// CSV renders records with a header taken from the first record's keys.
// Later records missing a header key get an empty cell; keys not in the
// header are dropped. Every cell is JSON-encoded, so strings are quoted and
// numbers are bare. Rows are joined with "\n".
func CSV(records []Record) ([]byte, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmptyExport
	}

	headers := make([]string, 0, len(records[0]))
	for _, f := range records[0] {
		headers = append(headers, f.Key)
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, rec := range records {
		cells := make([]string, 0, len(headers))
		for _, h := range headers {
			v, ok := rec.get(h)
			if !ok || v == nil {
				v = ""
			}
			cell, err := encodeCell(v)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func encodeCell(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
