/*
Package table implements the in-memory columnar table the preprocessing
pipeline operates on: an ordered list of typed columns that all share the
same row count.
*/
package table

import "fmt"

/*
Column is a named, typed column of a table.
*/
type Column interface {
	Name() string
	Len() int
}

/*
StringColumn is a column of raw string values, as loaded for categorical
and label features before encoding.
*/
type StringColumn struct {
	name   string
	values []string
}

/*
FloatColumn is a column of float64 values, as loaded for continuous
features.
*/
type FloatColumn struct {
	name   string
	values []float64
}

/*
IntColumn is a column of integer values, as produced by categorical and
label encoding.
*/
type IntColumn struct {
	name   string
	values []int
}

/*
Table is an ordered collection of named columns sharing a row count.
*/
type Table struct {
	columns []Column
}

/*
NewStringColumn takes a name and a slice of string values and returns a
StringColumn with them. The slice is not copied.
*/
func NewStringColumn(name string, values []string) *StringColumn {
	return &StringColumn{name, values}
}

/*
NewFloatColumn takes a name and a slice of float64 values and returns a
FloatColumn with them. The slice is not copied.
*/
func NewFloatColumn(name string, values []float64) *FloatColumn {
	return &FloatColumn{name, values}
}

/*
NewIntColumn takes a name and a slice of int values and returns an
IntColumn with them. The slice is not copied.
*/
func NewIntColumn(name string, values []int) *IntColumn {
	return &IntColumn{name, values}
}

/*
Name returns the name of the column
*/
func (c *StringColumn) Name() string { return c.name }

/*
Len returns the number of values in the column
*/
func (c *StringColumn) Len() int { return len(c.values) }

/*
Values returns the backing slice of the column's values
*/
func (c *StringColumn) Values() []string { return c.values }

/*
Value returns the value of the column at row i
*/
func (c *StringColumn) Value(i int) string { return c.values[i] }

/*
Name returns the name of the column
*/
func (c *FloatColumn) Name() string { return c.name }

/*
Len returns the number of values in the column
*/
func (c *FloatColumn) Len() int { return len(c.values) }

/*
Values returns the backing slice of the column's values
*/
func (c *FloatColumn) Values() []float64 { return c.values }

/*
Value returns the value of the column at row i
*/
func (c *FloatColumn) Value(i int) float64 { return c.values[i] }

/*
Name returns the name of the column
*/
func (c *IntColumn) Name() string { return c.name }

/*
Len returns the number of values in the column
*/
func (c *IntColumn) Len() int { return len(c.values) }

/*
Values returns the backing slice of the column's values
*/
func (c *IntColumn) Values() []int { return c.values }

/*
Value returns the value of the column at row i
*/
func (c *IntColumn) Value(i int) int { return c.values[i] }

/*
New takes a slice of columns and returns a Table with them or an error if
two columns share a name or have different lengths.
*/
func New(columns ...Column) (*Table, error) {
	names := make(map[string]bool)
	for _, c := range columns {
		if names[c.Name()] {
			return nil, fmt.Errorf("building table: duplicate column %s", c.Name())
		}
		names[c.Name()] = true
		if c.Len() != columns[0].Len() {
			return nil, fmt.Errorf("building table: column %s has %d rows, %s has %d", c.Name(), c.Len(), columns[0].Name(), columns[0].Len())
		}
	}
	return &Table{columns}, nil
}

/*
Rows returns the number of rows shared by all the table's columns.
*/
func (t *Table) Rows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

/*
ColumnNames returns the names of the table's columns in table order.
*/
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name()
	}
	return names
}

/*
Column takes a column name and returns the column with that name and true,
or nil and false when the table has no such column.
*/
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

/*
Replace takes a column and swaps it in for the table's column with the
same name, keeping the column position. It returns an error if the table
has no column with that name or the row counts differ.
*/
func (t *Table) Replace(column Column) error {
	for i, c := range t.columns {
		if c.Name() != column.Name() {
			continue
		}
		if column.Len() != c.Len() {
			return fmt.Errorf("replacing column %s: %d rows given, table has %d", column.Name(), column.Len(), c.Len())
		}
		t.columns[i] = column
		return nil
	}
	return fmt.Errorf("replacing column %s: no such column", column.Name())
}

/*
Reorder takes a slice of column names and returns a new Table with the
same columns arranged in that order, or an error if the names are not a
permutation of the table's column names.
*/
func (t *Table) Reorder(names []string) (*Table, error) {
	if len(names) != len(t.columns) {
		return nil, fmt.Errorf("reordering table: %d names given for %d columns", len(names), len(t.columns))
	}
	columns := make([]Column, 0, len(names))
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("reordering table: no column %s", name)
		}
		columns = append(columns, c)
	}
	return New(columns...)
}

/*
Permute takes a full row permutation, given as a slice in which the i-th
element is the source row for destination row i, and returns a new Table
with every column's values rearranged accordingly. It returns an error if
the permutation's length differs from the table's row count.
*/
func (t *Table) Permute(perm []int) (*Table, error) {
	if len(perm) != t.Rows() {
		return nil, fmt.Errorf("permuting table: permutation of %d rows given for %d rows", len(perm), t.Rows())
	}
	columns := make([]Column, len(t.columns))
	for i, c := range t.columns {
		switch c := c.(type) {
		case *StringColumn:
			values := make([]string, len(perm))
			for j, p := range perm {
				values[j] = c.values[p]
			}
			columns[i] = NewStringColumn(c.name, values)
		case *FloatColumn:
			values := make([]float64, len(perm))
			for j, p := range perm {
				values[j] = c.values[p]
			}
			columns[i] = NewFloatColumn(c.name, values)
		case *IntColumn:
			values := make([]int, len(perm))
			for j, p := range perm {
				values[j] = c.values[p]
			}
			columns[i] = NewIntColumn(c.name, values)
		default:
			return nil, fmt.Errorf("permuting table: unknown column type %T for column %s", c, c.Name())
		}
	}
	return New(columns...)
}

/*
Slice takes a row range [from, to) and returns a new Table whose columns
hold copies of that range, re-indexed from 0. It returns an error if the
range is out of the table's bounds.
*/
func (t *Table) Slice(from, to int) (*Table, error) {
	if from < 0 || to < from || to > t.Rows() {
		return nil, fmt.Errorf("slicing table: invalid range [%d, %d) for %d rows", from, to, t.Rows())
	}
	columns := make([]Column, len(t.columns))
	for i, c := range t.columns {
		switch c := c.(type) {
		case *StringColumn:
			values := make([]string, to-from)
			copy(values, c.values[from:to])
			columns[i] = NewStringColumn(c.name, values)
		case *FloatColumn:
			values := make([]float64, to-from)
			copy(values, c.values[from:to])
			columns[i] = NewFloatColumn(c.name, values)
		case *IntColumn:
			values := make([]int, to-from)
			copy(values, c.values[from:to])
			columns[i] = NewIntColumn(c.name, values)
		default:
			return nil, fmt.Errorf("slicing table: unknown column type %T for column %s", c, c.Name())
		}
	}
	return New(columns...)
}
