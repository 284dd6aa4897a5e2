// Package textlayer extracts tables from the PDF text layer.
//
// The engine reads positioned text fragments via github.com/ledongthuc/pdf
// and reconstructs tabular structure geometrically: fragments are grouped
// into rows by Y position, merged into cells by X proximity, and aligned
// into columns by clustering cell start positions across rows. Pages whose
// text layer is empty (scanned documents) report a miss so the chain can
// fall through to a raster-capable engine.
package textlayer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/tablex/engine"
	"github.com/tsawler/tablex/model"
)

// Config holds the geometric thresholds for table reconstruction.
type Config struct {
	// RowTolerance is the maximum Y distance (points) between fragments
	// considered to be on the same row.
	RowTolerance float64

	// CellGapScale scales a fragment's font size into the maximum X gap
	// bridged when merging adjacent fragments into one cell.
	CellGapScale float64

	// ColumnTolerance is the maximum X distance (points) between cell start
	// positions assigned to the same column.
	ColumnTolerance float64

	// MaxRowGap is the vertical gap (points) that splits one block of rows
	// into separate tables.
	MaxRowGap float64

	// MinRows and MinCols are the minimum dimensions for a block to count
	// as a table.
	MinRows int
	MinCols int
}

// DefaultConfig returns thresholds that work for common report layouts.
func DefaultConfig() Config {
	return Config{
		RowTolerance:    2.0,
		CellGapScale:    0.75,
		ColumnTolerance: 6.0,
		MaxRowGap:       18.0,
		MinRows:         2,
		MinCols:         2,
	}
}

// Engine is the text-layer extraction engine.
type Engine struct {
	cfg Config
}

// New creates a text-layer engine with default thresholds.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a text-layer engine with custom thresholds.
func NewWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "text-layer" }

// PageCount implements engine.PageCounter.
func (e *Engine) PageCount(src engine.Source) (int, error) {
	r, closer, err := open(src)
	if err != nil {
		return 0, err
	}
	defer closer()
	return r.NumPage(), nil
}

// ExtractTables implements engine.Engine.
func (e *Engine) ExtractTables(ctx context.Context, src engine.Source, pageIndex int) (tables []model.RawTable, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The underlying reader panics on some malformed cross-reference
	// tables; turn that into an ordinary error so the chain can fall
	// through.
	defer func() {
		if r := recover(); r != nil {
			tables = nil
			err = fmt.Errorf("reading %s page %d: %v", src.Name(), pageIndex+1, r)
		}
	}()

	r, closer, err := open(src)
	if err != nil {
		return nil, err
	}
	defer closer()

	if pageIndex < 0 || pageIndex >= r.NumPage() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", pageIndex+1, r.NumPage())
	}

	page := r.Page(pageIndex + 1)
	if page.V.IsNull() {
		return nil, engine.ErrNoTables
	}

	frags := toFragments(page.Content().Text)
	if len(frags) == 0 {
		// No text layer on this page; a raster engine may still find
		// something.
		return nil, engine.ErrNoTables
	}

	tables = detectTables(frags, e.cfg)
	if len(tables) == 0 {
		return nil, engine.ErrNoTables
	}
	return tables, nil
}

// open returns a reader over the source plus a cleanup func.
func open(src engine.Source) (*pdf.Reader, func(), error) {
	if len(src.Data) > 0 {
		r, err := pdf.NewReader(bytes.NewReader(src.Data), int64(len(src.Data)))
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", src.Name(), err)
		}
		return r, func() {}, nil
	}
	if src.Path != "" {
		f, r, err := pdf.Open(src.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", src.Path, err)
		}
		return r, func() { f.Close() }, nil
	}
	return nil, nil, fmt.Errorf("source has neither path nor data: %w", engine.ErrUnavailable)
}

// toFragments converts reader text spans into the engine's internal
// fragment form, dropping whitespace-only spans.
func toFragments(texts []pdf.Text) []fragment {
	frags := make([]fragment, 0, len(texts))
	for _, t := range texts {
		if isBlank(t.S) {
			continue
		}
		frags = append(frags, fragment{
			text: t.S,
			x:    t.X,
			y:    t.Y,
			w:    t.W,
			size: t.FontSize,
		})
	}
	return frags
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
