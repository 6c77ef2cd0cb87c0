package encode

import (
	"fmt"

	"github.com/youyoungjang/tab-transformer/feature"
	"github.com/youyoungjang/tab-transformer/table"
)

/*
UnrecognizedLabelError is the error returned when a label value falls
outside the label feature's fixed two-value domain.
*/
type UnrecognizedLabelError struct {
	Feature string
	Value   string
}

func (e *UnrecognizedLabelError) Error() string {
	return fmt.Sprintf("label feature %s got unrecognized value %q", e.Feature, e.Value)
}

/*
MapLabel takes a table and a label feature and replaces the label column
in place with binary codes: the feature's positive value maps to 1 and
its negative value to 0. It returns an error if the column is missing or
is not a string column, and an UnrecognizedLabelError if any value is
outside the two-value domain.
*/
func MapLabel(t *table.Table, label *feature.LabelFeature) error {
	c, ok := t.Column(label.Name())
	if !ok {
		return fmt.Errorf("mapping label %s: no such column", label.Name())
	}
	sc, ok := c.(*table.StringColumn)
	if !ok {
		return fmt.Errorf("mapping label %s: expected raw string column, got %T", label.Name(), c)
	}
	codes := make([]int, sc.Len())
	for i, v := range sc.Values() {
		switch v {
		case label.Positive():
			codes[i] = 1
		case label.Negative():
			codes[i] = 0
		default:
			return &UnrecognizedLabelError{Feature: label.Name(), Value: v}
		}
	}
	return t.Replace(table.NewIntColumn(label.Name(), codes))
}
