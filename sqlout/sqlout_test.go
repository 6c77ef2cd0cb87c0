package sqlout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/youyoungjang/tab-transformer/table"
)

type fakeAdapter struct {
	createdName  string
	intColumns   []string
	floatColumns []string
	columns      []string
	rows         [][]interface{}
	closed       bool
}

func (a *fakeAdapter) ColumnName(featureName string) (string, error) {
	if strings.ContainsAny(featureName, `"`) {
		return "", fmt.Errorf("invalid feature name %s", featureName)
	}
	return featureName, nil
}

func (a *fakeAdapter) CreatePartitionTable(ctx context.Context, name string, intColumns, floatColumns []string) error {
	a.createdName = name
	a.intColumns = intColumns
	a.floatColumns = floatColumns
	return nil
}

func (a *fakeAdapter) AddRows(ctx context.Context, name string, columns []string, rows [][]interface{}) (int, error) {
	a.columns = columns
	a.rows = append(a.rows, rows...)
	return len(rows), nil
}

func (a *fakeAdapter) Close() error {
	a.closed = true
	return nil
}

func TestWritePartition(t *testing.T) {
	tab, err := table.New(
		table.NewIntColumn("job", []int{1, 0}),
		table.NewFloatColumn("age", []float64{0.25, 1}),
		table.NewIntColumn("y", []int{1, 0}),
	)
	if err != nil {
		t.Fatalf("building table: %v", err)
	}
	adapter := &fakeAdapter{}
	w := New(adapter)
	err = w.WritePartition(context.Background(), "train", tab)
	if err != nil {
		t.Fatalf("dumping partition: %v", err)
	}
	if adapter.createdName != "train" {
		t.Errorf("created table: got %s, want train", adapter.createdName)
	}
	if len(adapter.intColumns) != 2 || adapter.intColumns[0] != "job" || adapter.intColumns[1] != "y" {
		t.Errorf("integer columns: got %v, want [job y]", adapter.intColumns)
	}
	if len(adapter.floatColumns) != 1 || adapter.floatColumns[0] != "age" {
		t.Errorf("float columns: got %v, want [age]", adapter.floatColumns)
	}
	if len(adapter.rows) != 2 {
		t.Fatalf("inserted rows: got %d, want 2", len(adapter.rows))
	}
	if adapter.rows[0][0] != 1 || adapter.rows[0][1] != 0.25 || adapter.rows[0][2] != 1 {
		t.Errorf("inserted row 0: got %v, want [1 0.25 1]", adapter.rows[0])
	}
	err = w.Close()
	if err != nil || !adapter.closed {
		t.Errorf("closing writer: err=%v closed=%v", err, adapter.closed)
	}
}

func TestWritePartitionRejectsRawColumns(t *testing.T) {
	tab, err := table.New(table.NewStringColumn("job", []string{"admin."}))
	if err != nil {
		t.Fatalf("building table: %v", err)
	}
	w := New(&fakeAdapter{})
	if err = w.WritePartition(context.Background(), "train", tab); err == nil {
		t.Errorf("expected an error dumping a partition with a raw string column")
	}
}
