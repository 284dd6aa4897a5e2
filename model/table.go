package model

import (
	"fmt"
	"strings"
)

// RawTable is the unprocessed grid of cells as reported by an extraction
// engine. Rows may have uneven lengths and cells may be empty.
type RawTable [][]string

// IsEmpty reports whether the raw table contains no non-blank cell at all.
func (rt RawTable) IsEmpty() bool {
	for _, row := range rt {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return false
			}
		}
	}
	return true
}

// Row maps a header name to the cell value for a single record.
type Row map[string]string

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is the canonical unit of extracted tabular data.
type Table struct {
	// ID is unique for the lifetime of the session. It is assigned when the
	// table is registered and never reused, even across extraction runs.
	ID int

	// Page is the 1-indexed page number the table was found on.
	Page int

	// Method names the extraction engine that produced the table.
	Method string

	// OriginalHeaders are the column names captured at extraction time.
	// They are provenance and must never change after registration.
	OriginalHeaders []string

	// Headers are the current column names. Initially equal to
	// OriginalHeaders; edits replace them via the registry's overlay.
	Headers []string

	// Rows holds one record per data row, keyed by current header name.
	// Every row has exactly one value per header.
	Rows []Row
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColCount returns the number of columns.
func (t *Table) ColCount() int { return len(t.Headers) }

// Cell returns the value at the given data row for the given header.
// Missing rows or headers yield the empty string.
func (t *Table) Cell(row int, header string) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][header]
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		ID:              t.ID,
		Page:            t.Page,
		Method:          t.Method,
		OriginalHeaders: append([]string(nil), t.OriginalHeaders...),
		Headers:         append([]string(nil), t.Headers...),
	}
	if t.Rows != nil {
		out.Rows = make([]Row, len(t.Rows))
		for i, row := range t.Rows {
			out.Rows[i] = row.Clone()
		}
	}
	return out
}

// Records flattens the table into header-order string records, header row
// first. This is the shape exporters consume.
func (t *Table) Records() [][]string {
	return toRecords(t.Headers, t.Rows)
}

// MergedTable is the result of merging two or more tables under a canonical
// column mapping. It is derived data: recomputed on demand, never stored in
// the registry.
type MergedTable struct {
	// Columns are the canonical column names in first-seen order.
	Columns []string

	// Rows holds the assembled records, keyed by canonical column name.
	// Source tables contribute rows in selection order, each table's rows in
	// their original order.
	Rows []Row

	// Sources lists the ids of the tables that contributed, in selection
	// order.
	Sources []int
}

// RowCount returns the number of merged rows.
func (m *MergedTable) RowCount() int { return len(m.Rows) }

// Records flattens the merged table into column-order string records,
// header row first.
func (m *MergedTable) Records() [][]string {
	return toRecords(m.Columns, m.Rows)
}

func toRecords(headers []string, rows []Row) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, append([]string(nil), headers...))
	for _, row := range rows {
		rec := make([]string, len(headers))
		for i, h := range headers {
			rec[i] = row[h]
		}
		out = append(out, rec)
	}
	return out
}

// PlaceholderHeader returns the positional name used for unnamed columns.
// Positions are 1-based.
func PlaceholderHeader(pos int) string {
	return fmt.Sprintf("Column %d", pos)
}

// NormalizeHeaders trims header names, substitutes positional placeholders
// for blank names, and suffixes duplicates so that every header is unique.
// The input slice is not modified.
//
// Duplicate names keep their first occurrence untouched; later occurrences
// get "_2", "_3", ... appended, skipping any suffix that would itself
// collide.
func NormalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	seen := make(map[string]bool, len(headers))

	for i, h := range headers {
		name := strings.TrimSpace(h)
		if name == "" {
			name = PlaceholderHeader(i + 1)
		}
		if seen[name] {
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s_%d", name, n)
				if !seen[candidate] {
					name = candidate
					break
				}
			}
		}
		seen[name] = true
		out[i] = name
	}
	return out
}
