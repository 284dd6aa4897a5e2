package textlayer

import (
	"reflect"
	"testing"
)

// word places a word-level fragment; width approximates rendered length.
func word(text string, x, y float64) fragment {
	return fragment{text: text, x: x, y: y, w: float64(len(text)) * 6, size: 10}
}

func TestGroupRowsByYTolerance(t *testing.T) {
	frags := []fragment{
		word("b", 100, 700.5),
		word("a", 10, 700),
		word("c", 10, 680),
	}

	rows := groupRows(frags, DefaultConfig())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Top row (higher Y) first.
	if rows[0].cells[0].text != "a" {
		t.Errorf("top row starts with %q, want a", rows[0].cells[0].text)
	}
	if rows[1].cells[0].text != "c" {
		t.Errorf("bottom row starts with %q, want c", rows[1].cells[0].text)
	}
}

func TestMergeCellsJoinsCloseFragments(t *testing.T) {
	cfg := DefaultConfig()
	frags := []fragment{
		word("Alice", 10, 700),
		// 4pt gap: same cell, separated by a space.
		{text: "Smith", x: 44, y: 700, w: 30, size: 10},
		// Wide gap: a new cell.
		word("30", 200, 700),
	}

	cells := mergeCells(frags, cfg)
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2: %+v", len(cells), cells)
	}
	if cells[0].text != "Alice Smith" {
		t.Errorf("cell 0 = %q, want %q", cells[0].text, "Alice Smith")
	}
	if cells[1].text != "30" {
		t.Errorf("cell 1 = %q", cells[1].text)
	}
}

func TestMergeCellsCharacterLevel(t *testing.T) {
	// Character-level PDFs emit one fragment per glyph with no gaps; they
	// must join without inserted spaces.
	frags := []fragment{
		{text: "A", x: 10, y: 700, w: 6, size: 10},
		{text: "g", x: 16, y: 700, w: 6, size: 10},
		{text: "e", x: 22, y: 700, w: 6, size: 10},
	}

	cells := mergeCells(frags, DefaultConfig())
	if len(cells) != 1 || cells[0].text != "Age" {
		t.Errorf("cells = %+v, want single cell \"Age\"", cells)
	}
}

func TestDetectTablesSimpleGrid(t *testing.T) {
	frags := []fragment{
		word("Name", 10, 700), word("Age", 200, 700),
		word("Alice", 10, 688), word("30", 200, 688),
		word("Bob", 10, 676), word("25", 200, 676),
	}

	tables := detectTables(frags, DefaultConfig())
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}

	want := [][]string{
		{"Name", "Age"},
		{"Alice", "30"},
		{"Bob", "25"},
	}
	if !reflect.DeepEqual([][]string(tables[0]), want) {
		t.Errorf("table = %v, want %v", tables[0], want)
	}
}

func TestDetectTablesSplitsOnVerticalGap(t *testing.T) {
	frags := []fragment{
		// First table.
		word("A", 10, 700), word("B", 200, 700),
		word("1", 10, 688), word("2", 200, 688),
		// 60pt below: a separate table.
		word("C", 10, 628), word("D", 200, 628),
		word("3", 10, 616), word("4", 200, 616),
	}

	tables := detectTables(frags, DefaultConfig())
	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(tables))
	}
	if tables[0][0][0] != "A" || tables[1][0][0] != "C" {
		t.Errorf("tables out of order: %v", tables)
	}
}

func TestDetectTablesRejectsProse(t *testing.T) {
	// A single column of text is a paragraph, not a table.
	frags := []fragment{
		word("This", 10, 700),
		word("is", 10, 688),
		word("prose", 10, 676),
	}

	if tables := detectTables(frags, DefaultConfig()); tables != nil {
		t.Errorf("expected no tables for single-column text, got %v", tables)
	}
}

func TestDetectTablesMissingCellLeftEmpty(t *testing.T) {
	frags := []fragment{
		word("Name", 10, 700), word("Age", 200, 700),
		word("Alice", 10, 688), // Age cell absent on this row
		word("Bob", 10, 676), word("25", 200, 676),
	}

	tables := detectTables(frags, DefaultConfig())
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if tables[0][1][1] != "" {
		t.Errorf("missing cell = %q, want empty", tables[0][1][1])
	}
}

func TestColumnCenters(t *testing.T) {
	block := []row{
		{cells: []cell{{x0: 10}, {x0: 200}}},
		{cells: []cell{{x0: 11}, {x0: 201}}},
	}

	centers := columnCenters(block, 6.0)
	if len(centers) != 2 {
		t.Fatalf("got %d centers, want 2: %v", len(centers), centers)
	}
	if centers[0] < 10 || centers[0] > 11 || centers[1] < 200 || centers[1] > 201 {
		t.Errorf("centers = %v", centers)
	}
}
