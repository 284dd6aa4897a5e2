package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/tablex/model"
)

// Item is one exportable table: a display name plus the header-and-rows
// content to serialize.
type Item struct {
	Name    string
	Headers []string
	Rows    []model.Row
}

// records flattens the item into header-order string records, header row
// first.
func (it Item) records() [][]string {
	out := make([][]string, 0, len(it.Rows)+1)
	out = append(out, append([]string(nil), it.Headers...))
	for _, row := range it.Rows {
		rec := make([]string, len(it.Headers))
		for i, h := range it.Headers {
			rec[i] = row[h]
		}
		out = append(out, rec)
	}
	return out
}

// FromTable builds an Item from a table, named after its source page and id.
func FromTable(t *model.Table) Item {
	return Item{
		Name:    TableName(t),
		Headers: t.Headers,
		Rows:    t.Rows,
	}
}

// FromMerged builds an Item from a merged table.
func FromMerged(m *model.MergedTable) Item {
	return Item{
		Name:    "Merged",
		Headers: m.Columns,
		Rows:    m.Rows,
	}
}

// TableName derives the display name used for sheets and buffers, e.g.
// "Page 2 Table 5".
func TableName(t *model.Table) string {
	return fmt.Sprintf("Page %d Table %d", t.Page, t.ID)
}

// OutputFilename derives a download filename from the source document name,
// e.g. ("reports/invoice.pdf", "xlsx") -> "invoice_tables.xlsx".
func OutputFilename(src, ext string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "tables"
	}
	return fmt.Sprintf("%s_tables.%s", base, strings.TrimPrefix(ext, "."))
}
