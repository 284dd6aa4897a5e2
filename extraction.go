package tablex

import (
	"context"
	"errors"
	"fmt"

	"github.com/tsawler/tablex/engine"
	"github.com/tsawler/tablex/grid"
	"github.com/tsawler/tablex/model"
)

// Extraction is a fluent builder for one extraction run. Configuration
// methods return a new Extraction, so a partially configured value can be
// reused:
//
//	base := session.Open("report.pdf").FirstRowHeader(true)
//	ids, err := base.Pages(1, 2).Run(ctx)
type Extraction struct {
	session *Session
	src     engine.Source
	options ExtractOptions
	err     error
}

// clone creates a copy with deep-copied options.
func (e *Extraction) clone() *Extraction {
	return &Extraction{
		session: e.session,
		src:     e.src,
		options: e.options.clone(),
		err:     e.err,
	}
}

// Pages restricts the run to the given 1-indexed pages. Without a page
// selection every page of the document is processed.
func (e *Extraction) Pages(pages ...int) *Extraction {
	newE := e.clone()
	newE.options.pages = append([]int(nil), pages...)
	return newE
}

// PageSpec restricts the run to pages given as a spec like "1,3,5-7". A
// malformed spec surfaces as an error from [Extraction.Run].
func (e *Extraction) PageSpec(spec string) *Extraction {
	newE := e.clone()
	pages, err := ParsePageSpec(spec)
	if err != nil {
		newE.err = err
		return newE
	}
	newE.options.pages = pages
	return newE
}

// FirstRowHeader controls whether each grid's first row is treated as its
// header row (the default) or synthetic "Column N" headers are generated.
func (e *Extraction) FirstRowHeader(on bool) *Extraction {
	newE := e.clone()
	newE.options.firstRowHeader = on
	return newE
}

// WithImages supplies pre-rendered page rasters, keyed by 0-indexed page,
// for engines that consume images rather than the PDF itself. Rendering is
// the caller's concern.
func (e *Extraction) WithImages(images map[int][]byte) *Extraction {
	newE := e.clone()
	newE.options.images = make(map[int][]byte, len(images))
	for k, v := range images {
		newE.options.images[k] = v
	}
	return newE
}

// Run executes the extraction and returns the ids of the registered tables
// in page order. The session's previous tables are discarded first; ids
// keep counting from earlier runs and are never reused.
//
// Each page goes through the session's engine chain: the first engine that
// finds at least one non-empty grid supplies that page's tables, and every
// grid is normalized before registration. Engine failures the chain
// recovered from are available via [Session.Warnings]. A run that finds no
// tables anywhere returns [model.ErrNoTablesFound] and leaves the session
// with no tables.
//
// Results are committed only once every requested page has been walked: a
// run that fails partway (context cancellation) leaves the session's
// previous tables and warnings untouched.
func (e *Extraction) Run(ctx context.Context) ([]int, error) {
	if e.err != nil {
		return nil, e.err
	}

	src := e.src
	src.Images = e.options.images

	pages := e.options.pages
	if len(pages) == 0 {
		n, err := e.session.chain.PageCount(src)
		if err != nil {
			return nil, fmt.Errorf("determining page count for %s: %w", src.Name(), err)
		}
		pages = make([]int, n)
		for i := range pages {
			pages[i] = i + 1
		}
	}

	var staged []*model.Table
	var warnings []Warning
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := e.session.chain.ExtractPage(ctx, src, page-1)
		for _, sk := range res.Skipped {
			warnings = append(warnings, Warning{
				Page:    page,
				Engine:  sk.Engine,
				Message: sk.Err.Error(),
			})
		}
		if err != nil {
			if errors.Is(err, engine.ErrNoTables) {
				continue
			}
			return nil, err
		}

		for _, raw := range res.Tables {
			t := grid.Clean(raw, e.options.firstRowHeader)
			if t == nil {
				continue
			}
			t.Page = page
			t.Method = res.Method
			staged = append(staged, t)
		}
	}

	// The walk completed; replace the previous run's state wholesale.
	e.session.registry.Reset()
	e.session.warnings = warnings

	if len(staged) == 0 {
		return nil, fmt.Errorf("%s: %w", src.Name(), model.ErrNoTablesFound)
	}

	ids := make([]int, 0, len(staged))
	for _, t := range staged {
		ids = append(ids, e.session.registry.Register(t))
	}
	return ids, nil
}
