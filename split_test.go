package tabtransformer

import (
	"errors"
	"testing"

	"github.com/youyoungjang/tab-transformer/table"
)

func rowIDTable(t *testing.T, n int) *table.Table {
	t.Helper()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	tab, err := table.New(table.NewIntColumn("row", ids))
	if err != nil {
		t.Fatalf("building table: %v", err)
	}
	return tab
}

func TestSplitSizes(t *testing.T) {
	testCases := []struct {
		n          int
		trainRatio float64
		valRatio   float64
		sizes      [3]int
	}{
		{10, 0.7, 0.2, [3]int{7, 2, 1}},
		{10, 1, 0, [3]int{10, 0, 0}},
		{10, 0, 0, [3]int{0, 0, 10}},
		{7, 0.7, 0.2, [3]int{4, 2, 1}},
		{1, 0.7, 0.2, [3]int{0, 0, 1}},
		{0, 0.7, 0.2, [3]int{0, 0, 0}},
	}
	for _, tc := range testCases {
		sp := &SplitPlanner{TrainRatio: tc.trainRatio, ValRatio: tc.valRatio}
		train, val, test, err := sp.Split(rowIDTable(t, tc.n))
		if err != nil {
			t.Fatalf("splitting %d rows with ratios %v/%v: %v", tc.n, tc.trainRatio, tc.valRatio, err)
		}
		sizes := [3]int{train.Rows(), val.Rows(), test.Rows()}
		if sizes != tc.sizes {
			t.Errorf("partition sizes for %d rows with ratios %v/%v: got %v, want %v", tc.n, tc.trainRatio, tc.valRatio, sizes, tc.sizes)
		}
		if train.Rows()+val.Rows()+test.Rows() != tc.n {
			t.Errorf("partition sizes for %d rows do not sum to the row count", tc.n)
		}
	}
}

func TestSplitCoversRowsExactlyOnce(t *testing.T) {
	sp := NewSplitPlanner()
	train, val, test, err := sp.Split(rowIDTable(t, 25))
	if err != nil {
		t.Fatalf("splitting: %v", err)
	}
	seen := make(map[int]int)
	for _, partition := range []*table.Table{train, val, test} {
		c, ok := partition.Column("row")
		if !ok {
			t.Fatalf("partition lost its row column")
		}
		for _, id := range c.(*table.IntColumn).Values() {
			seen[id]++
		}
	}
	for id := 0; id < 25; id++ {
		if seen[id] != 1 {
			t.Errorf("row %d appears %d times across partitions, want 1", id, seen[id])
		}
	}
}

func TestSplitSeededIsReproducible(t *testing.T) {
	seed := int64(42)
	sp := &SplitPlanner{TrainRatio: 0.7, ValRatio: 0.2, Seed: &seed}
	var first [][]int
	for run := 0; run < 2; run++ {
		train, val, test, err := sp.Split(rowIDTable(t, 20))
		if err != nil {
			t.Fatalf("splitting run %d: %v", run, err)
		}
		var ids [][]int
		for _, partition := range []*table.Table{train, val, test} {
			c, _ := partition.Column("row")
			ids = append(ids, c.(*table.IntColumn).Values())
		}
		if run == 0 {
			first = ids
			continue
		}
		for p := range ids {
			for i := range ids[p] {
				if ids[p][i] != first[p][i] {
					t.Fatalf("seeded split differs between runs: partition %d row %d got %d, want %d", p, i, ids[p][i], first[p][i])
				}
			}
		}
	}
}

func TestSplitInvalidRatios(t *testing.T) {
	testCases := []struct {
		trainRatio float64
		valRatio   float64
	}{
		{0.8, 0.3},
		{-0.1, 0.2},
		{0.7, -0.2},
		{1.1, 0},
		{0, 1.1},
	}
	for _, tc := range testCases {
		sp := &SplitPlanner{TrainRatio: tc.trainRatio, ValRatio: tc.valRatio}
		_, _, _, err := sp.Split(rowIDTable(t, 10))
		var invalid *InvalidRatioError
		if !errors.As(err, &invalid) {
			t.Errorf("splitting with ratios %v/%v: got %v, want *InvalidRatioError", tc.trainRatio, tc.valRatio, err)
		}
	}
}
