package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tsawler/tablex/model"
)

func sampleTable() *model.Table {
	return &model.Table{
		Page:            1,
		Method:          "text-layer",
		OriginalHeaders: []string{"Name", "Age"},
		Headers:         []string{"Name", "Age"},
		Rows: []model.Row{
			{"Name": "Alice", "Age": "30"},
			{"Name": "Bob", "Age": "25"},
		},
	}
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	r := New()

	id1 := r.Register(sampleTable())
	id2 := r.Register(sampleTable())

	if id1 != 1 || id2 != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", id1, id2)
	}
	if !reflect.DeepEqual(r.IDs(), []int{1, 2}) {
		t.Errorf("IDs() = %v, want [1 2]", r.IDs())
	}
}

func TestRegisterCopiesInput(t *testing.T) {
	r := New()
	src := sampleTable()
	id := r.Register(src)

	// Mutating the caller's table must not reach the stored copy.
	src.Headers[0] = "Mutated"
	src.Rows[0]["Name"] = "Mutated"

	got, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Headers[0] != "Name" || got.Rows[0]["Name"] != "Alice" {
		t.Errorf("stored table shares memory with caller: %+v", got)
	}
}

func TestGetUnknownTable(t *testing.T) {
	r := New()
	_, err := r.Get(42)
	if !errors.Is(err, model.ErrUnknownTable) {
		t.Errorf("err = %v, want ErrUnknownTable", err)
	}
	_, err = r.Effective(42)
	if !errors.Is(err, model.ErrUnknownTable) {
		t.Errorf("Effective err = %v, want ErrUnknownTable", err)
	}
}

func TestApplyEditOverlays(t *testing.T) {
	r := New()
	id := r.Register(sampleTable())

	err := r.ApplyEdit(id, []string{"Full Name", "Years"}, [][]string{
		{"Alice A.", "31"},
	})
	if err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	eff, err := r.Effective(id)
	if err != nil {
		t.Fatalf("Effective: %v", err)
	}
	if !reflect.DeepEqual(eff.Headers, []string{"Full Name", "Years"}) {
		t.Errorf("Headers = %v", eff.Headers)
	}
	if len(eff.Rows) != 1 || eff.Rows[0]["Full Name"] != "Alice A." {
		t.Errorf("Rows = %v", eff.Rows)
	}

	// Provenance survives the edit.
	if !reflect.DeepEqual(eff.OriginalHeaders, []string{"Name", "Age"}) {
		t.Errorf("OriginalHeaders = %v, want extraction-time names", eff.OriginalHeaders)
	}

	stored, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Rows[0]["Name"] != "Alice" {
		t.Errorf("edit leaked into stored table: %v", stored.Rows)
	}
}

func TestApplyEditShapeMismatchIsAtomic(t *testing.T) {
	r := New()
	id := r.Register(sampleTable())

	err := r.ApplyEdit(id, []string{"A", "B", "C"}, [][]string{
		{"1", "2", "3"},
		{"4", "5"},
	})
	if !errors.Is(err, model.ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}

	eff, err := r.Effective(id)
	if err != nil {
		t.Fatalf("Effective: %v", err)
	}
	if !reflect.DeepEqual(eff.Headers, []string{"Name", "Age"}) {
		t.Errorf("rejected edit changed headers: %v", eff.Headers)
	}
	if eff.Rows[0]["Name"] != "Alice" {
		t.Errorf("rejected edit changed rows: %v", eff.Rows)
	}
}

func TestApplyEditUnknownTable(t *testing.T) {
	r := New()
	err := r.ApplyEdit(9, []string{"A"}, nil)
	if !errors.Is(err, model.ErrUnknownTable) {
		t.Errorf("err = %v, want ErrUnknownTable", err)
	}
}

func TestApplyEditNormalizesHeaders(t *testing.T) {
	r := New()
	id := r.Register(sampleTable())

	if err := r.ApplyEdit(id, []string{"Total", "Total"}, [][]string{{"1", "2"}}); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	eff, _ := r.Effective(id)
	if !reflect.DeepEqual(eff.Headers, []string{"Total", "Total_2"}) {
		t.Errorf("Headers = %v, want duplicate suffixed", eff.Headers)
	}
	if eff.Rows[0]["Total"] != "1" || eff.Rows[0]["Total_2"] != "2" {
		t.Errorf("Rows = %v", eff.Rows)
	}
}

func TestClearEdit(t *testing.T) {
	r := New()
	id := r.Register(sampleTable())

	if err := r.ApplyEdit(id, []string{"X", "Y"}, [][]string{{"a", "b"}}); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}
	r.ClearEdit(id)

	eff, _ := r.Effective(id)
	if !reflect.DeepEqual(eff.Headers, []string{"Name", "Age"}) {
		t.Errorf("Headers = %v, want extraction-time headers", eff.Headers)
	}
}

func TestResetKeepsIDCounter(t *testing.T) {
	r := New()
	r.Register(sampleTable())
	r.Register(sampleTable())

	r.Reset()

	if r.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", r.Len())
	}
	if id := r.Register(sampleTable()); id != 3 {
		t.Errorf("id after Reset = %d, want 3 (ids are never reused)", id)
	}
}
