package grid

import (
	"strings"

	"github.com/tsawler/tablex/model"
)

// Clean normalizes a raw extracted grid into a canonical table.
//
// When firstRowHeader is true the first row supplies the column names, with
// blank cells replaced by positional placeholders; otherwise every row is
// data and all names are synthesized. Ragged rows are tolerated: short rows
// are padded with empty cells and long rows truncated to the header width.
//
// Clean returns nil when the grid holds nothing worth keeping: zero rows, or
// no surviving data rows without at least one named header to preserve.
// The returned table has no ID, page, or method; the caller assigns those
// when registering it.
func Clean(raw model.RawTable, firstRowHeader bool) *model.Table {
	if len(raw) == 0 {
		return nil
	}

	var headerRow []string
	var data [][]string

	if firstRowHeader {
		headerRow = raw[0]
		data = raw[1:]
	} else {
		data = raw
	}

	// The header row fixes the table width: overflow cells on longer data
	// rows are dropped. Without headers the widest row wins.
	width := len(headerRow)
	if !firstRowHeader {
		for _, row := range data {
			if len(row) > width {
				width = len(row)
			}
		}
	}
	if width == 0 {
		return nil
	}

	// Rectangularize before pruning so column indices line up.
	rect := make([][]string, 0, len(data))
	for _, row := range data {
		r := make([]string, width)
		copy(r, row)
		rect = append(rect, r)
	}

	rect = pruneEmptyRows(rect)

	keep := make([]bool, width)
	if len(rect) == 0 {
		// Header-only table: nothing left to judge columns by, keep them all.
		for i := range keep {
			keep[i] = true
		}
		if !hasNamedHeader(headerRow) {
			return nil
		}
	} else {
		for _, row := range rect {
			for i, cell := range row {
				if strings.TrimSpace(cell) != "" {
					keep[i] = true
				}
			}
		}
	}

	// Placeholder names reflect the column's original position, so pruning a
	// column never renumbers its neighbours.
	var headers []string
	for i := 0; i < width; i++ {
		if !keep[i] {
			continue
		}
		name := ""
		if i < len(headerRow) {
			name = strings.TrimSpace(headerRow[i])
		}
		if name == "" {
			name = model.PlaceholderHeader(i + 1)
		}
		headers = append(headers, name)
	}
	if len(headers) == 0 {
		return nil
	}
	headers = model.NormalizeHeaders(headers)

	rows := make([]model.Row, 0, len(rect))
	for _, row := range rect {
		rec := make(model.Row, len(headers))
		h := 0
		for i := 0; i < width; i++ {
			if !keep[i] {
				continue
			}
			rec[headers[h]] = strings.TrimSpace(row[i])
			h++
		}
		rows = append(rows, rec)
	}

	return &model.Table{
		OriginalHeaders: append([]string(nil), headers...),
		Headers:         headers,
		Rows:            rows,
	}
}

// pruneEmptyRows drops rows whose every cell is blank.
func pruneEmptyRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}

// hasNamedHeader reports whether at least one header cell carries a real
// name rather than blank space.
func hasNamedHeader(headerRow []string) bool {
	for _, cell := range headerRow {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
