/*
Package scale implements the two-stage rescaling of continuous columns:
a robust stage that centers each column on its median and divides by its
interquartile range, followed by a min-max stage that maps the result
into [0, 1]. Both stages are fitted on the full column and applied to it
in the same pass.
*/
package scale

import (
	"fmt"
	"math"
	"sort"

	"github.com/youyoungjang/tab-transformer/feature"
	"github.com/youyoungjang/tab-transformer/table"
)

/*
DegenerateColumnError is the error returned when a continuous column has
a zero interquartile range, which leaves the robust stage undefined.
*/
type DegenerateColumnError struct {
	Column string
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("continuous column %s has zero interquartile range", e.Column)
}

/*
Apply takes a table and a slice of continuous features and replaces each
feature's column in place with its doubly-scaled values: first the robust
stage, then the min-max stage, each fitted on the column as a whole. All
output values lie in [0, 1]. It returns an error if a column is missing
or not a float column, and a DegenerateColumnError if a column's
interquartile range is zero.
*/
func Apply(t *table.Table, continuous []*feature.ContinuousFeature) error {
	for _, f := range continuous {
		c, ok := t.Column(f.Name())
		if !ok {
			return fmt.Errorf("scaling continuous feature %s: no such column", f.Name())
		}
		fc, ok := c.(*table.FloatColumn)
		if !ok {
			return fmt.Errorf("scaling continuous feature %s: expected float column, got %T", f.Name(), c)
		}
		if fc.Len() == 0 {
			continue
		}
		scaled, err := robust(f.Name(), fc.Values())
		if err != nil {
			return err
		}
		minMax(scaled)
		err = t.Replace(table.NewFloatColumn(f.Name(), scaled))
		if err != nil {
			return err
		}
	}
	return nil
}

/*
robust returns a new slice with the column's values centered on the
median and divided by the interquartile range.
*/
func robust(column string, values []float64) ([]float64, error) {
	median := Percentile(values, 0.5)
	iqr := Percentile(values, 0.75) - Percentile(values, 0.25)
	if iqr == 0 {
		return nil, &DegenerateColumnError{Column: column}
	}
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = (v - median) / iqr
	}
	return scaled, nil
}

/*
minMax rescales the values in place to [0, 1] using their own observed
minimum and maximum. A nonzero interquartile range in the previous stage
guarantees the range here is nonzero too.
*/
func minMax(values []float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	for i, v := range values {
		values[i] = (v - min) / (max - min)
	}
}

/*
Percentile takes a slice of values and a quantile q in [0, 1] and returns
the q-th percentile of the values, interpolating linearly between the two
nearest ranks. The input slice is not modified.
*/
func Percentile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	if lo == len(sorted)-1 {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
