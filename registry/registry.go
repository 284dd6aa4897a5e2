// Package registry stores extracted tables for the lifetime of a session.
//
// The registry is append-only: every registered table gets the next integer
// id, and ids are never reused, even after [Registry.Reset] replaces the
// table set for a new extraction run. User corrections live in an edit
// overlay on the side, so a table's extraction provenance (its original
// headers and cell values) is never mutated.
//
// A Registry is not safe for concurrent use. Each user session owns its own
// instance; nothing here is shared across sessions.
package registry

import (
	"fmt"

	"github.com/tsawler/tablex/model"
)

// edit is an overlay entry: replacement headers and rows for one table.
type edit struct {
	headers []string
	rows    []model.Row
}

// Registry is an in-memory collection of extracted tables plus an edit
// overlay keyed by table id.
type Registry struct {
	tables map[int]*model.Table
	order  []int
	edits  map[int]edit
	nextID int
}

// New creates an empty registry. The first registered table gets id 1.
func New() *Registry {
	return &Registry{
		tables: make(map[int]*model.Table),
		edits:  make(map[int]edit),
		nextID: 1,
	}
}

// Register stores a deep copy of the table, assigns it the next id, and
// returns that id. The caller's table is not retained and the stored copy's
// OriginalHeaders are never mutated afterwards.
func (r *Registry) Register(t *model.Table) int {
	id := r.nextID
	r.nextID++

	stored := t.Clone()
	stored.ID = id
	r.tables[id] = stored
	r.order = append(r.order, id)
	return id
}

// Get returns the stored table as extracted, ignoring any edits.
func (r *Registry) Get(id int) (*model.Table, error) {
	t, ok := r.tables[id]
	if !ok {
		return nil, fmt.Errorf("table %d: %w", id, model.ErrUnknownTable)
	}
	return t.Clone(), nil
}

// Effective returns the table with any overlay edit applied. Tables without
// edits come back as stored.
func (r *Registry) Effective(id int) (*model.Table, error) {
	t, ok := r.tables[id]
	if !ok {
		return nil, fmt.Errorf("table %d: %w", id, model.ErrUnknownTable)
	}

	out := t.Clone()
	if e, ok := r.edits[id]; ok {
		out.Headers = append([]string(nil), e.headers...)
		out.Rows = make([]model.Row, len(e.rows))
		for i, row := range e.rows {
			out.Rows[i] = row.Clone()
		}
	}
	return out, nil
}

// ApplyEdit replaces a table's current headers and rows through the overlay.
// The submission is validated first: every row must have exactly one value
// per header. A shape mismatch rejects the whole edit and leaves the prior
// state untouched. Header names are normalized (trimmed, placeholders for
// blanks, duplicates suffixed) before the rows are re-keyed.
func (r *Registry) ApplyEdit(id int, headers []string, rows [][]string) error {
	if _, ok := r.tables[id]; !ok {
		return fmt.Errorf("table %d: %w", id, model.ErrUnknownTable)
	}
	if len(headers) == 0 {
		return fmt.Errorf("table %d: empty header set: %w", id, model.ErrShapeMismatch)
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return fmt.Errorf("table %d row %d: %d values for %d headers: %w",
				id, i, len(row), len(headers), model.ErrShapeMismatch)
		}
	}

	normalized := model.NormalizeHeaders(headers)
	edited := make([]model.Row, len(rows))
	for i, row := range rows {
		rec := make(model.Row, len(normalized))
		for j, h := range normalized {
			rec[h] = row[j]
		}
		edited[i] = rec
	}

	r.edits[id] = edit{headers: normalized, rows: edited}
	return nil
}

// ClearEdit discards the overlay entry for a table, restoring the extracted
// content. Clearing a table without an edit is a no-op.
func (r *Registry) ClearEdit(id int) {
	delete(r.edits, id)
}

// Reset discards all tables and edits but keeps the id counter running, so
// ids from earlier extraction runs are never reassigned.
func (r *Registry) Reset() {
	r.tables = make(map[int]*model.Table)
	r.order = nil
	r.edits = make(map[int]edit)
}

// IDs returns the registered table ids in registration order.
func (r *Registry) IDs() []int {
	return append([]int(nil), r.order...)
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	return len(r.order)
}
