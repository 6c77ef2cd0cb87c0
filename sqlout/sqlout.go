/*
Package sqlout provides a writer that dumps the processed partitions of a
pipeline run to a SQL database through an Adapter interface, so the same
writer works over different database engines.
*/
package sqlout

import (
	"context"
	"fmt"

	"github.com/youyoungjang/tab-transformer/table"
)

/*
Adapter is an interface providing the engine-specific methods needed to
dump processed partitions to a database: identifier validation, partition
table creation and batched row insertion.
*/
type Adapter interface {
	ColumnName(string) (string, error)
	CreatePartitionTable(ctx context.Context, name string, intColumns, floatColumns []string) error
	AddRows(ctx context.Context, name string, columns []string, rows [][]interface{}) (int, error)
	Close() error
}

/*
Writer dumps processed partition tables to a SQL database through an
Adapter.
*/
type Writer struct {
	adapter Adapter
}

/*
New takes an Adapter and returns a Writer that dumps partitions through
it.
*/
func New(adapter Adapter) *Writer {
	return &Writer{adapter}
}

/*
WritePartition takes a context, a partition name and a processed table,
creates a database table with the partition's name and inserts every row
into it. Only processed tables are accepted: integer-code and float
columns. It returns an error if a column has another type, if a column
name is not a valid identifier for the adapter's engine, or if a database
operation fails.
*/
func (w *Writer) WritePartition(ctx context.Context, name string, t *table.Table) error {
	var intColumns, floatColumns []string
	for _, cn := range t.ColumnNames() {
		column, err := w.adapter.ColumnName(cn)
		if err != nil {
			return fmt.Errorf("dumping partition %s: %v", name, err)
		}
		c, _ := t.Column(cn)
		switch c.(type) {
		case *table.IntColumn:
			intColumns = append(intColumns, column)
		case *table.FloatColumn:
			floatColumns = append(floatColumns, column)
		default:
			return fmt.Errorf("dumping partition %s: column %s holds %T, expected processed values", name, cn, c)
		}
	}
	err := w.adapter.CreatePartitionTable(ctx, name, intColumns, floatColumns)
	if err != nil {
		return fmt.Errorf("creating table for partition %s: %v", name, err)
	}
	columns := t.ColumnNames()
	rows := make([][]interface{}, t.Rows())
	for i := range rows {
		row := make([]interface{}, len(columns))
		for j, cn := range columns {
			c, _ := t.Column(cn)
			switch c := c.(type) {
			case *table.IntColumn:
				row[j] = c.Value(i)
			case *table.FloatColumn:
				row[j] = c.Value(i)
			}
		}
		rows[i] = row
	}
	n, err := w.adapter.AddRows(ctx, name, columns, rows)
	if err != nil {
		return fmt.Errorf("inserting rows for partition %s: %v", name, err)
	}
	if n != len(rows) {
		return fmt.Errorf("inserting rows for partition %s: %d of %d rows inserted", name, n, len(rows))
	}
	return nil
}

/*
Close closes the writer's adapter and the database connection behind it.
*/
func (w *Writer) Close() error {
	return w.adapter.Close()
}
