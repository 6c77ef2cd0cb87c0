package tabtransformer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/youyoungjang/tab-transformer/table"
)

const (
	// DefaultTrainRatio is the fraction of rows assigned to the train
	// partition when none is given.
	DefaultTrainRatio = 0.7
	// DefaultValRatio is the fraction of rows assigned to the val
	// partition when none is given.
	DefaultValRatio = 0.2
)

/*
InvalidRatioError is the error returned when a pair of split ratios falls
outside its domain: each ratio must be in [0, 1] and their sum must not
exceed 1, so that the implicit test ratio is non-negative.
*/
type InvalidRatioError struct {
	Train float64
	Val   float64
}

func (e *InvalidRatioError) Error() string {
	return fmt.Sprintf("invalid split ratios train=%v val=%v: each must be in [0, 1] and their sum must not exceed 1", e.Train, e.Val)
}

/*
SplitPlanner partitions a processed table into train, val and test
partitions: it shuffles the rows uniformly at random and slices the
shuffled table at floor(N*TrainRatio) and floor(N*(TrainRatio+ValRatio)).
The three partitions are contiguous in shuffled order, disjoint, cover
every row exactly once and are each re-indexed from 0.

Seed, when non-nil, fixes the shuffle for reproducible splits. By default
every run draws a fresh permutation.
*/
type SplitPlanner struct {
	TrainRatio float64
	ValRatio   float64
	Seed       *int64
}

/*
NewSplitPlanner returns a SplitPlanner with the default unseeded 0.7/0.2
ratios.
*/
func NewSplitPlanner() *SplitPlanner {
	return &SplitPlanner{TrainRatio: DefaultTrainRatio, ValRatio: DefaultValRatio}
}

/*
Split takes a table and returns its train, val and test partitions, or an
InvalidRatioError when the planner's ratios are out of domain. Boundary
truncation means the val and test sizes are not exactly proportional for
small tables; the sizes always sum to the table's row count.
*/
func (sp *SplitPlanner) Split(t *table.Table) (train, val, test *table.Table, err error) {
	if sp.TrainRatio < 0 || sp.TrainRatio > 1 || sp.ValRatio < 0 || sp.ValRatio > 1 || sp.TrainRatio+sp.ValRatio > 1 {
		return nil, nil, nil, &InvalidRatioError{Train: sp.TrainRatio, Val: sp.ValRatio}
	}
	seed := time.Now().UnixNano()
	if sp.Seed != nil {
		seed = *sp.Seed
	}
	n := t.Rows()
	shuffled, err := t.Permute(rand.New(rand.NewSource(seed)).Perm(n))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("shuffling rows: %v", err)
	}
	b1 := int(float64(n) * sp.TrainRatio)
	b2 := int(float64(n) * (sp.TrainRatio + sp.ValRatio))
	train, err = shuffled.Slice(0, b1)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("slicing train partition: %v", err)
	}
	val, err = shuffled.Slice(b1, b2)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("slicing val partition: %v", err)
	}
	test, err = shuffled.Slice(b2, n)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("slicing test partition: %v", err)
	}
	return train, val, test, nil
}
