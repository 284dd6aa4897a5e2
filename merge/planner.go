package merge

import (
	"fmt"

	"github.com/tsawler/tablex/model"
	"github.com/tsawler/tablex/registry"
)

// Config describes one merge request.
type Config struct {
	// SelectedIDs are the ids of the tables to merge, in the order their
	// rows should appear. At least two are required.
	SelectedIDs []int

	// Mapping maps table id -> current header name -> canonical merged
	// column name. Entries here override auto-matched columns for the same
	// table and header. Columns absent from both the mapping and the
	// auto-match are dropped.
	Mapping map[int]map[string]string
}

// Plan assembles the merged table for the given config.
//
// Validation happens before any assembly: a selection of fewer than two
// tables fails with [model.ErrInsufficientSelection], and a selected id not
// present in the registry fails with [model.ErrUnknownTable]. Tables are
// resolved through the registry's edit overlay, so merges always see the
// user's corrections.
func Plan(reg *registry.Registry, cfg Config) (*model.MergedTable, error) {
	if len(cfg.SelectedIDs) < 2 {
		return nil, fmt.Errorf("%d selected: %w", len(cfg.SelectedIDs), model.ErrInsufficientSelection)
	}

	tables := make([]*model.Table, 0, len(cfg.SelectedIDs))
	for _, id := range cfg.SelectedIDs {
		t, err := reg.Effective(id)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	// Effective mapping per table: auto-match first, manual entries win.
	matched := autoMatch(tables)
	mapping := make(map[int]map[string]string, len(tables))
	for _, t := range tables {
		m := make(map[string]string)
		for h, canon := range matched[t.ID] {
			m[h] = canon
		}
		for h, canon := range cfg.Mapping[t.ID] {
			if canon != "" {
				m[h] = canon
			}
		}
		mapping[t.ID] = m
	}

	// Canonical column order: selection order, then each table's own header
	// order, first sighting wins.
	var columns []string
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, h := range t.Headers {
			canon, ok := mapping[t.ID][h]
			if !ok || seen[canon] {
				continue
			}
			seen[canon] = true
			columns = append(columns, canon)
		}
	}

	merged := &model.MergedTable{
		Columns: columns,
		Sources: append([]int(nil), cfg.SelectedIDs...),
	}

	for _, t := range tables {
		for _, row := range t.Rows {
			rec := make(model.Row, len(columns))
			for _, canon := range columns {
				rec[canon] = ""
			}
			for _, h := range t.Headers {
				if canon, ok := mapping[t.ID][h]; ok {
					rec[canon] = row[h]
				}
			}
			merged.Rows = append(merged.Rows, rec)
		}
	}

	return merged, nil
}
