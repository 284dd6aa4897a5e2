package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// NamedBuffer pairs an in-memory file with the table name it was produced
// from.
type NamedBuffer struct {
	Name string
	Data []byte
}

// CSV serializes a single item: header row first, then data rows.
func CSV(item Item) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, record := range item.records() {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing %q: %w", item.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing %q: %w", item.Name, err)
	}
	return buf.Bytes(), nil
}

// CSVBuffers serializes each item into its own buffer. CSV has no sheet
// concept, so multiple tables yield multiple files rather than one
// concatenated stream.
func CSVBuffers(items []Item) ([]NamedBuffer, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no tables to export")
	}

	out := make([]NamedBuffer, 0, len(items))
	for _, item := range items {
		data, err := CSV(item)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedBuffer{Name: item.Name, Data: data})
	}
	return out, nil
}
