package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/tsawler/tablex/model"
)

// EngineError records an engine failure that caused the chain to fall
// through to the next engine.
type EngineError struct {
	Engine string
	Err    error
}

func (e EngineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Engine, e.Err)
}

func (e EngineError) Unwrap() error { return e.Err }

// PageResult is the outcome of running the chain on one page.
type PageResult struct {
	// Tables are the non-empty raw tables from the winning engine.
	Tables []model.RawTable

	// Method is the name of the engine that produced Tables.
	Method string

	// Skipped lists engines that failed with a real error (not a miss)
	// before the winning engine, for surfacing as warnings.
	Skipped []EngineError
}

// Chain tries engines in preference order.
type Chain struct {
	engines []Engine
}

// NewChain builds a chain over the given engines. Order is preference
// order.
func NewChain(engines ...Engine) *Chain {
	return &Chain{engines: engines}
}

// Engines returns the chain's engines in order.
func (c *Chain) Engines() []Engine {
	return append([]Engine(nil), c.engines...)
}

// ExtractPage runs the page through the chain. The first engine returning
// at least one non-empty table wins; the rest are never consulted for this
// page. A total miss returns ErrNoTables along with any skipped-engine
// failures collected on the way.
func (c *Chain) ExtractPage(ctx context.Context, src Source, pageIndex int) (PageResult, error) {
	result := PageResult{}

	for _, eng := range c.engines {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		raw, err := eng.ExtractTables(ctx, src, pageIndex)
		switch {
		case err == nil:
		case isMiss(err):
			continue
		default:
			result.Skipped = append(result.Skipped, EngineError{Engine: eng.Name(), Err: err})
			continue
		}

		tables := dropEmpty(raw)
		if len(tables) == 0 {
			continue
		}

		result.Tables = tables
		result.Method = eng.Name()
		return result, nil
	}

	return result, fmt.Errorf("page %d: %w", pageIndex+1, ErrNoTables)
}

// PageCount asks the first capable engine for the source's page count.
func (c *Chain) PageCount(src Source) (int, error) {
	for _, eng := range c.engines {
		counter, ok := eng.(PageCounter)
		if !ok {
			continue
		}
		n, err := counter.PageCount(src)
		if err != nil {
			continue
		}
		return n, nil
	}
	return 0, fmt.Errorf("page count for %s: %w", src.Name(), ErrUnavailable)
}

func isMiss(err error) bool {
	return errors.Is(err, ErrNoTables) || errors.Is(err, ErrUnavailable)
}

func dropEmpty(raw []model.RawTable) []model.RawTable {
	out := raw[:0]
	for _, rt := range raw {
		if len(rt) > 0 && !rt.IsEmpty() {
			out = append(out, rt)
		}
	}
	return out
}
