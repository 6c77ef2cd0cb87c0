/*
Package encode implements the reversible integer encodings of the
preprocessing pipeline: the mapping of categorical columns to dense
integer codes and the binarization of the label column.
*/
package encode

import (
	"fmt"
	"sort"

	"github.com/youyoungjang/tab-transformer/feature"
	"github.com/youyoungjang/tab-transformer/table"
)

/*
UnmappedValueError is the error returned when a categorical raw value
falls outside a fitted CategoryMap's domain.
*/
type UnmappedValueError struct {
	Feature string
	Value   string
}

func (e *UnmappedValueError) Error() string {
	return fmt.Sprintf("categorical feature %s got unmapped value %q", e.Feature, e.Value)
}

/*
CategoryMap is an injective mapping from a categorical feature's raw
values to dense integer codes 0..k-1. It is built once when a column is
encoded and is immutable afterwards: it is the artifact callers keep to
reproduce the encoding on new data.
*/
type CategoryMap struct {
	feature string
	codes   map[string]int
	values  []string
}

/*
FitCategoryMap takes a categorical feature and the raw values of its
column and returns the CategoryMap for the feature.

For a feature with a canonical value order the codes follow that order,
independent of the given values, and any value outside the order makes
the fit fail with an UnmappedValueError. For any other feature the
distinct raw values are sorted and assigned consecutive codes 0..k-1 in
sorted order.
*/
func FitCategoryMap(f *feature.CategoricalFeature, raw []string) (*CategoryMap, error) {
	m := &CategoryMap{feature: f.Name(), codes: make(map[string]int)}
	if order := f.CanonicalOrder(); order != nil {
		for i, v := range order {
			m.codes[v] = i
			m.values = append(m.values, v)
		}
		for _, v := range raw {
			if _, ok := m.codes[v]; !ok {
				return nil, &UnmappedValueError{Feature: f.Name(), Value: v}
			}
		}
		return m, nil
	}
	distinct := make(map[string]bool)
	for _, v := range raw {
		if !distinct[v] {
			distinct[v] = true
			m.values = append(m.values, v)
		}
	}
	sort.Strings(m.values)
	for i, v := range m.values {
		m.codes[v] = i
	}
	return m, nil
}

/*
Feature returns the name of the feature the map encodes.
*/
func (m *CategoryMap) Feature() string {
	return m.feature
}

/*
Len returns the number of values in the map's domain.
*/
func (m *CategoryMap) Len() int {
	return len(m.values)
}

/*
Code takes a raw value and returns its integer code, or an
UnmappedValueError when the value is outside the fitted domain. Callers
applying the map to unseen data get the membership check they need here.
*/
func (m *CategoryMap) Code(raw string) (int, error) {
	code, ok := m.codes[raw]
	if !ok {
		return 0, &UnmappedValueError{Feature: m.feature, Value: raw}
	}
	return code, nil
}

/*
Value takes an integer code and returns the raw value it decodes to, or
an error when the code is outside the dense range 0..Len()-1.
*/
func (m *CategoryMap) Value(code int) (string, error) {
	if code < 0 || code >= len(m.values) {
		return "", fmt.Errorf("decoding feature %s: code %d outside range [0, %d)", m.feature, code, len(m.values))
	}
	return m.values[code], nil
}

/*
Values returns a copy of the map's domain in code order: the i-th value
decodes from code i.
*/
func (m *CategoryMap) Values() []string {
	values := make([]string, len(m.values))
	copy(values, m.values)
	return values
}

/*
MapCategorical takes a table and a slice of categorical features, fits a
CategoryMap for each feature on its column and replaces each column in
place with the integer codes. It returns the CategoryMaps by feature name
or an error if a column is missing, is not a string column, or a value
falls outside a canonical order.
*/
func MapCategorical(t *table.Table, categorical []*feature.CategoricalFeature) (map[string]*CategoryMap, error) {
	maps := make(map[string]*CategoryMap)
	for _, f := range categorical {
		c, ok := t.Column(f.Name())
		if !ok {
			return nil, fmt.Errorf("mapping categorical feature %s: no such column", f.Name())
		}
		sc, ok := c.(*table.StringColumn)
		if !ok {
			return nil, fmt.Errorf("mapping categorical feature %s: expected raw string column, got %T", f.Name(), c)
		}
		m, err := FitCategoryMap(f, sc.Values())
		if err != nil {
			return nil, err
		}
		codes := make([]int, sc.Len())
		for i, v := range sc.Values() {
			codes[i], err = m.Code(v)
			if err != nil {
				return nil, err
			}
		}
		err = t.Replace(table.NewIntColumn(f.Name(), codes))
		if err != nil {
			return nil, err
		}
		maps[f.Name()] = m
	}
	return maps, nil
}
