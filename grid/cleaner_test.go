package grid

import (
	"reflect"
	"testing"

	"github.com/tsawler/tablex/model"
)

func TestCleanZeroRows(t *testing.T) {
	if got := Clean(model.RawTable{}, true); got != nil {
		t.Errorf("expected nil for zero-row input, got %+v", got)
	}
	if got := Clean(nil, false); got != nil {
		t.Errorf("expected nil for nil input, got %+v", got)
	}
}

func TestCleanFirstRowHeader(t *testing.T) {
	raw := model.RawTable{
		{"Name", "Age"},
		{"Alice", "30"},
		{"", ""},
	}

	tbl := Clean(raw, true)
	if tbl == nil {
		t.Fatal("expected a table")
	}

	wantHeaders := []string{"Name", "Age"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}
	if !reflect.DeepEqual(tbl.OriginalHeaders, wantHeaders) {
		t.Errorf("OriginalHeaders = %v, want %v", tbl.OriginalHeaders, wantHeaders)
	}

	wantRows := []model.Row{{"Name": "Alice", "Age": "30"}}
	if !reflect.DeepEqual(tbl.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", tbl.Rows, wantRows)
	}
}

func TestCleanSynthesizedHeaders(t *testing.T) {
	raw := model.RawTable{
		{"a", "b"},
		{"c", "d"},
	}

	tbl := Clean(raw, false)
	if tbl == nil {
		t.Fatal("expected a table")
	}

	wantHeaders := []string{"Column 1", "Column 2"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("RowCount = %d, want 2", len(tbl.Rows))
	}
	if tbl.Rows[0]["Column 1"] != "a" || tbl.Rows[1]["Column 2"] != "d" {
		t.Errorf("unexpected row values: %v", tbl.Rows)
	}
}

func TestCleanBlankHeaderCellGetsPlaceholder(t *testing.T) {
	raw := model.RawTable{
		{"Name", ""},
		{"Alice", "30"},
	}

	tbl := Clean(raw, true)
	if tbl == nil {
		t.Fatal("expected a table")
	}

	wantHeaders := []string{"Name", "Column 2"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}
	if tbl.Rows[0]["Column 2"] != "30" {
		t.Errorf("placeholder column lost its value: %v", tbl.Rows[0])
	}
}

func TestCleanDropsEmptyColumns(t *testing.T) {
	raw := model.RawTable{
		{"Name", "Unused", "Age"},
		{"Alice", "", "30"},
		{"Bob", " ", "25"},
	}

	tbl := Clean(raw, true)
	if tbl == nil {
		t.Fatal("expected a table")
	}

	wantHeaders := []string{"Name", "Age"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}
	for _, row := range tbl.Rows {
		if _, ok := row["Unused"]; ok {
			t.Errorf("pruned column still present in row %v", row)
		}
	}
}

func TestCleanPlaceholderKeepsOriginalPosition(t *testing.T) {
	// Column 2 is empty everywhere and gets pruned; column 3's synthesized
	// name must not shift down to "Column 2".
	raw := model.RawTable{
		{"a", "", "c"},
		{"d", "", "f"},
	}

	tbl := Clean(raw, false)
	if tbl == nil {
		t.Fatal("expected a table")
	}

	wantHeaders := []string{"Column 1", "Column 3"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}
}

func TestCleanHeaderOnlyPreserved(t *testing.T) {
	raw := model.RawTable{
		{"Name", "Age"},
	}

	tbl := Clean(raw, true)
	if tbl == nil {
		t.Fatal("header-only table must be preserved, got nil")
	}
	if len(tbl.Rows) != 0 {
		t.Errorf("RowCount = %d, want 0", len(tbl.Rows))
	}
	wantHeaders := []string{"Name", "Age"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}
}

func TestCleanHeaderOnlyWithBlankHeaderDropped(t *testing.T) {
	raw := model.RawTable{
		{"", " "},
		{"", ""},
	}

	if tbl := Clean(raw, true); tbl != nil {
		t.Errorf("expected nil for fully blank grid, got %+v", tbl)
	}
}

func TestCleanRaggedRows(t *testing.T) {
	// Second row is short and gets padded; third is long and gets truncated.
	raw := model.RawTable{
		{"A", "B", "C"},
		{"1", "2"},
		{"4", "5", "6", "extra"},
	}

	tbl := Clean(raw, true)
	if tbl == nil {
		t.Fatal("expected a table")
	}

	// The header row fixes the width: no placeholder column may appear for
	// the overflow cell.
	if !reflect.DeepEqual(tbl.Headers, []string{"A", "B", "C"}) {
		t.Fatalf("Headers = %v, want [A B C]", tbl.Headers)
	}
	for i, row := range tbl.Rows {
		if len(row) != len(tbl.Headers) {
			t.Errorf("row %d has %d values, want %d", i, len(row), len(tbl.Headers))
		}
	}
	if tbl.Rows[0]["C"] != "" {
		t.Errorf("padded cell = %q, want empty", tbl.Rows[0]["C"])
	}
	if _, ok := tbl.Rows[1]["extra"]; ok {
		t.Error("truncated cell leaked into row")
	}
}

func TestCleanOverflowCellDropped(t *testing.T) {
	raw := model.RawTable{
		{"A", "B"},
		{"1", "2", "overflow"},
	}

	tbl := Clean(raw, true)
	if tbl == nil {
		t.Fatal("expected a table")
	}
	if !reflect.DeepEqual(tbl.Headers, []string{"A", "B"}) {
		t.Fatalf("Headers = %v, want [A B]", tbl.Headers)
	}
	if len(tbl.Rows) != 1 || len(tbl.Rows[0]) != 2 {
		t.Fatalf("Rows = %v, want one two-value row", tbl.Rows)
	}
	for h, v := range tbl.Rows[0] {
		if v == "overflow" {
			t.Errorf("overflow cell survived under header %q", h)
		}
	}
}

func TestCleanDuplicateHeadersSuffixed(t *testing.T) {
	raw := model.RawTable{
		{"Total", "Total"},
		{"1", "2"},
	}

	tbl := Clean(raw, true)
	if tbl == nil {
		t.Fatal("expected a table")
	}

	wantHeaders := []string{"Total", "Total_2"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", tbl.Headers, wantHeaders)
	}
	if tbl.Rows[0]["Total"] != "1" || tbl.Rows[0]["Total_2"] != "2" {
		t.Errorf("values landed under the wrong header: %v", tbl.Rows[0])
	}
}

func TestCleanIdempotent(t *testing.T) {
	raw := model.RawTable{
		{"Name", "Age"},
		{"Alice", "30"},
		{"Bob", "25"},
	}

	first := Clean(raw, true)
	if first == nil {
		t.Fatal("expected a table")
	}

	// Re-clean the already-clean content.
	again := Clean(append(model.RawTable{first.Headers}, first.Records()[1:]...), true)
	if again == nil {
		t.Fatal("expected a table on second clean")
	}
	if !reflect.DeepEqual(first.Headers, again.Headers) {
		t.Errorf("headers changed on re-clean: %v vs %v", first.Headers, again.Headers)
	}
	if !reflect.DeepEqual(first.Rows, again.Rows) {
		t.Errorf("rows changed on re-clean: %v vs %v", first.Rows, again.Rows)
	}
}
