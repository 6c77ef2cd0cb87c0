package dataset

import (
	"errors"
	"testing"

	"github.com/youyoungjang/tab-transformer/table"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	partition, err := table.New(
		table.NewIntColumn("job", []int{1, 0, 2}),
		table.NewIntColumn("month", []int{0, 2, 2}),
		table.NewFloatColumn("age", []float64{0, 0.5, 1}),
		table.NewIntColumn("y", []int{1, 0, 0}),
	)
	if err != nil {
		t.Fatalf("building partition: %v", err)
	}
	ds, err := New(partition, []string{"job", "month"}, []string{"age"}, "y")
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}
	return ds
}

func TestLenAndGet(t *testing.T) {
	ds := testDataset(t)
	if ds.Len() != 3 {
		t.Errorf("length: got %d, want 3", ds.Len())
	}
	for i := 0; i < ds.Len(); i++ {
		row, err := ds.Get(i)
		if err != nil {
			t.Fatalf("getting row %d: %v", i, err)
		}
		if len(row.Categorical) != 2 {
			t.Errorf("row %d categorical values: got %d, want 2", i, len(row.Categorical))
		}
		if len(row.Continuous) != 1 {
			t.Errorf("row %d continuous values: got %d, want 1", i, len(row.Continuous))
		}
	}
	row, err := ds.Get(1)
	if err != nil {
		t.Fatalf("getting row 1: %v", err)
	}
	if row.Categorical["job"] != 0 || row.Categorical["month"] != 2 {
		t.Errorf("row 1 categorical values: got %v", row.Categorical)
	}
	if row.Continuous["age"] != 0.5 {
		t.Errorf("row 1 age: got %v, want 0.5", row.Continuous["age"])
	}
	if row.Label != 0 {
		t.Errorf("row 1 label: got %d, want 0", row.Label)
	}
}

func TestGetOutOfRange(t *testing.T) {
	ds := testDataset(t)
	for _, i := range []int{ds.Len(), -1, 100} {
		_, err := ds.Get(i)
		var outOfRange *IndexOutOfRangeError
		if !errors.As(err, &outOfRange) {
			t.Errorf("getting row %d: got %v, want *IndexOutOfRangeError", i, err)
		}
	}
}

func TestAt(t *testing.T) {
	ds := testDataset(t)
	for _, index := range []interface{}{2, int8(2), int64(2), uint(2), uint8(2), uint64(2)} {
		row, err := ds.At(index)
		if err != nil {
			t.Fatalf("getting row at %T index: %v", index, err)
		}
		if row.Categorical["job"] != 2 {
			t.Errorf("row at %T index: got job code %d, want 2", index, row.Categorical["job"])
		}
	}
	if _, err := ds.At("2"); err == nil {
		t.Errorf("expected an error getting a row at a string index")
	}
	if _, err := ds.At(uint64(1 << 63)); err == nil {
		t.Errorf("expected an error getting a row at an overflowing index")
	}
}

func TestNewErrors(t *testing.T) {
	partition, err := table.New(
		table.NewStringColumn("job", []string{"admin."}),
		table.NewFloatColumn("age", []float64{0.5}),
		table.NewIntColumn("y", []int{1}),
	)
	if err != nil {
		t.Fatalf("building partition: %v", err)
	}
	testCases := []struct {
		name        string
		categorical []string
		continuous  []string
		label       string
	}{
		{"raw categorical column", []string{"job"}, []string{"age"}, "y"},
		{"missing categorical column", []string{"missing"}, []string{"age"}, "y"},
		{"continuous column of wrong type", nil, []string{"y"}, "y"},
		{"missing label", nil, []string{"age"}, "missing"},
		{"label of wrong type", nil, nil, "age"},
	}
	for _, tc := range testCases {
		if _, err := New(partition, tc.categorical, tc.continuous, tc.label); err == nil {
			t.Errorf("%s: expected an error building dataset", tc.name)
		}
	}
}
