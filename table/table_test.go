package table

import "testing"

func testTable(t *testing.T) *Table {
	t.Helper()
	tab, err := New(
		NewStringColumn("job", []string{"admin.", "services", "technician"}),
		NewFloatColumn("age", []float64{33, 47, 29}),
		NewIntColumn("y", []int{1, 0, 0}),
	)
	if err != nil {
		t.Fatalf("building table: %v", err)
	}
	return tab
}

func TestNewErrors(t *testing.T) {
	_, err := New(
		NewStringColumn("job", []string{"admin."}),
		NewFloatColumn("age", []float64{33, 47}),
	)
	if err == nil {
		t.Errorf("expected an error building a table with ragged columns")
	}
	_, err = New(
		NewStringColumn("job", []string{"admin."}),
		NewFloatColumn("job", []float64{33}),
	)
	if err == nil {
		t.Errorf("expected an error building a table with duplicate column names")
	}
}

func TestRowsAndColumns(t *testing.T) {
	tab := testTable(t)
	if tab.Rows() != 3 {
		t.Errorf("rows: got %d, want 3", tab.Rows())
	}
	names := tab.ColumnNames()
	want := []string{"job", "age", "y"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("column names: got %v, want %v", names, want)
			break
		}
	}
	c, ok := tab.Column("age")
	if !ok {
		t.Fatalf("column age not found")
	}
	if c.(*FloatColumn).Value(1) != 47 {
		t.Errorf("age row 1: got %v, want 47", c.(*FloatColumn).Value(1))
	}
	if _, ok = tab.Column("missing"); ok {
		t.Errorf("found a column that does not exist")
	}
}

func TestReplace(t *testing.T) {
	tab := testTable(t)
	err := tab.Replace(NewIntColumn("job", []int{0, 1, 2}))
	if err != nil {
		t.Fatalf("replacing job column: %v", err)
	}
	names := tab.ColumnNames()
	if names[0] != "job" {
		t.Errorf("replaced column moved: got order %v", names)
	}
	c, _ := tab.Column("job")
	if _, ok := c.(*IntColumn); !ok {
		t.Errorf("job column holds %T after replacement, want *IntColumn", c)
	}
	if err = tab.Replace(NewIntColumn("job", []int{0})); err == nil {
		t.Errorf("expected an error replacing a column with a different row count")
	}
	if err = tab.Replace(NewIntColumn("missing", []int{0, 1, 2})); err == nil {
		t.Errorf("expected an error replacing a column that does not exist")
	}
}

func TestReorder(t *testing.T) {
	tab := testTable(t)
	reordered, err := tab.Reorder([]string{"age", "job", "y"})
	if err != nil {
		t.Fatalf("reordering table: %v", err)
	}
	names := reordered.ColumnNames()
	want := []string{"age", "job", "y"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("reordered column names: got %v, want %v", names, want)
			break
		}
	}
	if _, err = tab.Reorder([]string{"age", "job"}); err == nil {
		t.Errorf("expected an error reordering with missing names")
	}
	if _, err = tab.Reorder([]string{"age", "job", "missing"}); err == nil {
		t.Errorf("expected an error reordering with an unknown name")
	}
}

func TestPermute(t *testing.T) {
	tab := testTable(t)
	permuted, err := tab.Permute([]int{2, 0, 1})
	if err != nil {
		t.Fatalf("permuting table: %v", err)
	}
	c, _ := permuted.Column("job")
	want := []string{"technician", "admin.", "services"}
	for i, w := range want {
		if c.(*StringColumn).Value(i) != w {
			t.Errorf("permuted job row %d: got %s, want %s", i, c.(*StringColumn).Value(i), w)
		}
	}
	c, _ = tab.Column("job")
	if c.(*StringColumn).Value(0) != "admin." {
		t.Errorf("permuting mutated the source table")
	}
	if _, err = tab.Permute([]int{0, 1}); err == nil {
		t.Errorf("expected an error permuting with a short permutation")
	}
}

func TestSlice(t *testing.T) {
	tab := testTable(t)
	sliced, err := tab.Slice(1, 3)
	if err != nil {
		t.Fatalf("slicing table: %v", err)
	}
	if sliced.Rows() != 2 {
		t.Errorf("sliced rows: got %d, want 2", sliced.Rows())
	}
	c, _ := sliced.Column("age")
	if c.(*FloatColumn).Value(0) != 47 {
		t.Errorf("sliced age row 0: got %v, want 47", c.(*FloatColumn).Value(0))
	}
	empty, err := tab.Slice(3, 3)
	if err != nil {
		t.Fatalf("slicing empty range: %v", err)
	}
	if empty.Rows() != 0 {
		t.Errorf("empty slice rows: got %d, want 0", empty.Rows())
	}
	if _, err = tab.Slice(2, 4); err == nil {
		t.Errorf("expected an error slicing out of bounds")
	}
	if _, err = tab.Slice(-1, 2); err == nil {
		t.Errorf("expected an error slicing from a negative row")
	}
}
