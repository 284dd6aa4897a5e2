package engine

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/tsawler/tablex/model"
)

var (
	// ErrNoTables indicates an engine ran successfully but found no tables
	// on the requested page. The chain treats this as a miss and falls
	// through to the next engine.
	ErrNoTables = errors.New("no tables detected")

	// ErrUnavailable indicates an engine cannot run at all: a missing
	// binary, a source without the input it needs, or support compiled out.
	// The chain skips the engine without recording a warning.
	ErrUnavailable = errors.New("engine unavailable")
)

// Source is the document handed to engines. Either Path or Data must be
// set; engines prefer Data when both are present.
type Source struct {
	// Path is the location of the PDF on disk.
	Path string

	// Data is the PDF file content. Engines that need random access wrap it
	// in a bytes.Reader.
	Data []byte

	// Images holds pre-rendered page rasters keyed by 0-indexed page, for
	// engines that operate on raster input rather than the PDF itself.
	// Rendering pages to images is the caller's concern.
	Images map[int][]byte
}

// Name returns a short display name for the source, for messages.
func (s Source) Name() string {
	if s.Path != "" {
		return filepath.Base(s.Path)
	}
	return "document"
}

// Engine locates tables on a single page of a source document.
//
// pageIndex is 0-indexed at this boundary; user-facing page numbers are
// 1-indexed and converted by the caller. Implementations return ErrNoTables
// when the page holds no recognizable table and ErrUnavailable when they
// cannot operate on the source at all.
type Engine interface {
	// Name returns the engine's stable identifier, used as the Method tag
	// on extracted tables.
	Name() string

	// ExtractTables returns the raw tables found on the given page.
	ExtractTables(ctx context.Context, src Source, pageIndex int) ([]model.RawTable, error)
}

// PageCounter is implemented by engines that can report how many pages a
// source has. The chain uses the first engine that can answer.
type PageCounter interface {
	PageCount(src Source) (int, error)
}
