/*
Package dataset implements the model-ready view over one partition of a
processed table: random access to a single row's categorical codes,
scaled continuous values and binary label, by position.
*/
package dataset

import (
	"fmt"

	"github.com/youyoungjang/tab-transformer/table"
)

/*
IndexOutOfRangeError is the error returned when a dataset is accessed
beyond its partition's bounds.
*/
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("dataset index %d outside range [0, %d)", e.Index, e.Len)
}

/*
Row is the fixed-shape record returned for one row of a dataset: the
categorical codes and continuous values keyed by feature name, and the
binary label.
*/
type Row struct {
	Categorical map[string]int
	Continuous  map[string]float64
	Label       int
}

/*
Dataset is a read-only, randomly-accessible view over one partition of a
processed table together with the categorical and continuous feature name
lists of the run that produced it. It owns no data beyond a reference to
its partition table and never mutates it.
*/
type Dataset struct {
	partition   *table.Table
	categorical []string
	continuous  []string
	label       string
}

/*
New takes a partition table, the categorical and continuous feature name
lists and the label column name and returns a Dataset over the partition.
It returns an error if a named column is missing from the partition or is
not of its processed type: integer codes for categorical columns and the
label, floats for continuous columns.
*/
func New(partition *table.Table, categorical, continuous []string, label string) (*Dataset, error) {
	for _, name := range categorical {
		c, ok := partition.Column(name)
		if !ok {
			return nil, fmt.Errorf("building dataset: no categorical column %s", name)
		}
		if _, ok = c.(*table.IntColumn); !ok {
			return nil, fmt.Errorf("building dataset: categorical column %s holds %T, expected integer codes", name, c)
		}
	}
	for _, name := range continuous {
		c, ok := partition.Column(name)
		if !ok {
			return nil, fmt.Errorf("building dataset: no continuous column %s", name)
		}
		if _, ok = c.(*table.FloatColumn); !ok {
			return nil, fmt.Errorf("building dataset: continuous column %s holds %T, expected floats", name, c)
		}
	}
	c, ok := partition.Column(label)
	if !ok {
		return nil, fmt.Errorf("building dataset: no label column %s", label)
	}
	if _, ok = c.(*table.IntColumn); !ok {
		return nil, fmt.Errorf("building dataset: label column %s holds %T, expected binary codes", label, c)
	}
	return &Dataset{partition, categorical, continuous, label}, nil
}

/*
Len returns the number of rows in the dataset's partition.
*/
func (ds *Dataset) Len() int {
	return ds.partition.Rows()
}

/*
Get takes a row position i with 0 <= i < Len() and returns the Row at
that position, or an IndexOutOfRangeError when i is outside the
partition's bounds.
*/
func (ds *Dataset) Get(i int) (Row, error) {
	if i < 0 || i >= ds.Len() {
		return Row{}, &IndexOutOfRangeError{Index: i, Len: ds.Len()}
	}
	row := Row{
		Categorical: make(map[string]int, len(ds.categorical)),
		Continuous:  make(map[string]float64, len(ds.continuous)),
	}
	for _, name := range ds.categorical {
		c, _ := ds.partition.Column(name)
		row.Categorical[name] = c.(*table.IntColumn).Value(i)
	}
	for _, name := range ds.continuous {
		c, _ := ds.partition.Column(name)
		row.Continuous[name] = c.(*table.FloatColumn).Value(i)
	}
	c, _ := ds.partition.Column(ds.label)
	row.Label = c.(*table.IntColumn).Value(i)
	return row, nil
}

/*
At takes an index of any integer kind, normalizes it to a plain int and
returns the Row at that position using Get. It returns an error when the
index is not of an integer kind or does not fit in an int.
*/
func (ds *Dataset) At(index interface{}) (Row, error) {
	i, err := NormalizeIndex(index)
	if err != nil {
		return Row{}, err
	}
	return ds.Get(i)
}

/*
CategoricalNames returns the categorical feature name list of the run
that produced the dataset.
*/
func (ds *Dataset) CategoricalNames() []string {
	return ds.categorical
}

/*
ContinuousNames returns the continuous feature name list of the run that
produced the dataset.
*/
func (ds *Dataset) ContinuousNames() []string {
	return ds.continuous
}

/*
NormalizeIndex takes a scalar of any integer kind and returns it as a
plain int, or an error when the value is of another kind or overflows an
int.
*/
func NormalizeIndex(index interface{}) (int, error) {
	switch i := index.(type) {
	case int:
		return i, nil
	case int8:
		return int(i), nil
	case int16:
		return int(i), nil
	case int32:
		return int(i), nil
	case int64:
		if int64(int(i)) != i {
			return 0, fmt.Errorf("dataset index %d overflows int", i)
		}
		return int(i), nil
	case uint:
		if uint64(i) > uint64(maxInt) {
			return 0, fmt.Errorf("dataset index %d overflows int", i)
		}
		return int(i), nil
	case uint8:
		return int(i), nil
	case uint16:
		return int(i), nil
	case uint32:
		return int(i), nil
	case uint64:
		if i > uint64(maxInt) {
			return 0, fmt.Errorf("dataset index %d overflows int", i)
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("dataset index must be an integer, got %T", index)
	}
}

const maxInt = int(^uint(0) >> 1)
