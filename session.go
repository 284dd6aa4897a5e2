package tablex

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tsawler/tablex/engine"
	"github.com/tsawler/tablex/engine/textlayer"
	"github.com/tsawler/tablex/engine/vision"
	"github.com/tsawler/tablex/export"
	"github.com/tsawler/tablex/merge"
	"github.com/tsawler/tablex/model"
	"github.com/tsawler/tablex/registry"
)

// Session holds one user's extraction state: the table registry with its
// edit overlay, the engine chain, and warnings from the last run. Table ids
// are unique for the session's lifetime; a new extraction run replaces the
// tables but never reuses an id.
//
// A Session is not safe for concurrent use. Create one Session per user.
type Session struct {
	id       uuid.UUID
	chain    *engine.Chain
	registry *registry.Registry
	warnings []Warning
}

// SessionOption configures a Session at creation.
type SessionOption func(*Session)

// WithEngines replaces the default engine chain. Engines are consulted in
// the given order for every page.
func WithEngines(engines ...engine.Engine) SessionOption {
	return func(s *Session) {
		s.chain = engine.NewChain(engines...)
	}
}

// New creates a session with a fresh registry and, unless overridden via
// [WithEngines], the default chain: the text-layer engine first, the vision
// engine as fallback for pages without a text layer.
func New(opts ...SessionOption) *Session {
	s := &Session{
		id:       uuid.New(),
		chain:    engine.NewChain(textlayer.New(), vision.New()),
		registry: registry.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// Open starts a fluent extraction from a PDF file on disk.
//
// Example:
//
//	ids, err := session.Open("report.pdf").Pages(1, 2).Run(ctx)
func (s *Session) Open(path string) *Extraction {
	return &Extraction{
		session: s,
		src:     engine.Source{Path: path},
		options: defaultOptions(),
	}
}

// OpenBytes starts a fluent extraction from an in-memory PDF. The name is
// used for messages and derived filenames only.
func (s *Session) OpenBytes(name string, data []byte) *Extraction {
	return &Extraction{
		session: s,
		src:     engine.Source{Path: name, Data: data},
		options: defaultOptions(),
	}
}

// Table returns the table with any user edit applied. The extracted content
// and original headers underneath are untouched by edits.
func (s *Session) Table(id int) (*model.Table, error) {
	return s.registry.Effective(id)
}

// OriginalTable returns the table as extracted, ignoring any edit.
func (s *Session) OriginalTable(id int) (*model.Table, error) {
	return s.registry.Get(id)
}

// TableIDs returns the current tables' ids in extraction order.
func (s *Session) TableIDs() []int {
	return s.registry.IDs()
}

// Edit replaces a table's headers and rows. The whole submission is
// validated before anything is stored: every row must have exactly one
// value per header, otherwise the edit is rejected with
// [model.ErrShapeMismatch] and the table keeps its prior content.
func (s *Session) Edit(id int, headers []string, rows [][]string) error {
	return s.registry.ApplyEdit(id, headers, rows)
}

// ClearEdit reverts a table to its extracted content. Unknown ids report
// [model.ErrUnknownTable]; clearing a table without an edit is a no-op.
func (s *Session) ClearEdit(id int) error {
	if _, err := s.registry.Get(id); err != nil {
		return err
	}
	s.registry.ClearEdit(id)
	return nil
}

// Merge combines the selected tables per the merge configuration. Edits are
// visible to the merge; see [merge.Plan] for the matching and assembly
// rules.
func (s *Session) Merge(cfg merge.Config) (*model.MergedTable, error) {
	return merge.Plan(s.registry, cfg)
}

// ExportExcel serializes the given tables (default: all) into one xlsx
// workbook, one sheet per table.
func (s *Session) ExportExcel(ids ...int) ([]byte, error) {
	items, err := s.exportItems(ids)
	if err != nil {
		return nil, err
	}
	return export.Workbook(items)
}

// ExportCSV serializes the given tables (default: all) into CSV, one buffer
// per table. CSV has no sheet concept, so multi-table exports cannot share
// a file.
func (s *Session) ExportCSV(ids ...int) ([]export.NamedBuffer, error) {
	items, err := s.exportItems(ids)
	if err != nil {
		return nil, err
	}
	return export.CSVBuffers(items)
}

// ExportMergedExcel merges per cfg and serializes the result as a
// single-sheet xlsx workbook.
func (s *Session) ExportMergedExcel(cfg merge.Config) ([]byte, error) {
	m, err := s.Merge(cfg)
	if err != nil {
		return nil, err
	}
	return export.Workbook([]export.Item{export.FromMerged(m)})
}

// ExportMergedCSV merges per cfg and serializes the result as CSV.
func (s *Session) ExportMergedCSV(cfg merge.Config) ([]byte, error) {
	m, err := s.Merge(cfg)
	if err != nil {
		return nil, err
	}
	return export.CSV(export.FromMerged(m))
}

// Warnings returns the warnings accumulated by the most recent extraction
// run.
func (s *Session) Warnings() []Warning {
	return append([]Warning(nil), s.warnings...)
}

func (s *Session) exportItems(ids []int) ([]export.Item, error) {
	if len(ids) == 0 {
		ids = s.registry.IDs()
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("nothing to export: %w", model.ErrNoTablesFound)
	}

	items := make([]export.Item, 0, len(ids))
	for _, id := range ids {
		t, err := s.registry.Effective(id)
		if err != nil {
			return nil, err
		}
		items = append(items, export.FromTable(t))
	}
	return items, nil
}
