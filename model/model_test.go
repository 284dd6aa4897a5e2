package model

import (
	"reflect"
	"testing"
)

func TestRawTableIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  RawTable
		want bool
	}{
		{"nil", nil, true},
		{"blank cells", RawTable{{"", "  "}, {"\t", ""}}, true},
		{"one value", RawTable{{"", ""}, {"", "x"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "already unique",
			headers: []string{"Name", "Age"},
			want:    []string{"Name", "Age"},
		},
		{
			name:    "trims whitespace",
			headers: []string{" Name ", "Age\t"},
			want:    []string{"Name", "Age"},
		},
		{
			name:    "blank gets placeholder",
			headers: []string{"Name", "", "  "},
			want:    []string{"Name", "Column 2", "Column 3"},
		},
		{
			name:    "duplicates suffixed",
			headers: []string{"Total", "Total", "Total"},
			want:    []string{"Total", "Total_2", "Total_3"},
		},
		{
			name:    "suffix collision skipped",
			headers: []string{"X", "X_2", "X"},
			want:    []string{"X", "X_2", "X_3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHeaders(tt.headers)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeHeaders(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestTableClone(t *testing.T) {
	orig := &Table{
		ID:              3,
		Page:            2,
		Method:          "text-layer",
		OriginalHeaders: []string{"A", "B"},
		Headers:         []string{"A", "B"},
		Rows:            []Row{{"A": "1", "B": "2"}},
	}

	cl := orig.Clone()
	cl.Headers[0] = "Z"
	cl.Rows[0]["A"] = "changed"

	if orig.Headers[0] != "A" {
		t.Error("clone shares Headers with original")
	}
	if orig.Rows[0]["A"] != "1" {
		t.Error("clone shares Rows with original")
	}
}

func TestRecords(t *testing.T) {
	tbl := &Table{
		Headers: []string{"Name", "Age"},
		Rows: []Row{
			{"Name": "Alice", "Age": "30"},
			{"Name": "Bob", "Age": "25"},
		},
	}

	got := tbl.Records()
	want := [][]string{
		{"Name", "Age"},
		{"Alice", "30"},
		{"Bob", "25"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records() = %v, want %v", got, want)
	}
}

func TestMergedTableRecords(t *testing.T) {
	m := &MergedTable{
		Columns: []string{"Foo", "Bar"},
		Rows: []Row{
			{"Foo": "1"}, // Bar unmapped for this source
		},
	}

	got := m.Records()
	want := [][]string{
		{"Foo", "Bar"},
		{"1", ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records() = %v, want %v", got, want)
	}
}
