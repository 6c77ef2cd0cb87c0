/*
Package csv provides methods to load a delimiter-separated file with a
header row into a table.Table and to dump a table back out in the same
format.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/youyoungjang/tab-transformer/feature"
	"github.com/youyoungjang/tab-transformer/table"
)

/*
Read takes an io.Reader for a delimiter-separated stream, the field
delimiter, the names of the continuous columns, the label feature and a
map from column names to canonical value orders. It parses the stream
into a table.Table and derives the feature partition from the header:
every header column that is neither continuous nor the label becomes a
categorical feature. It returns the table and the partition, or an error.

The header or first row of the stream is expected to name every column.
Continuous columns are parsed as float64 values; every other column is
kept as raw strings for later encoding.
*/
func Read(reader io.Reader, sep rune, continuous []string, label *feature.LabelFeature, canonical map[string][]string) (*table.Table, *feature.Partition, error) {
	r := csv.NewReader(reader)
	r.Comma = sep
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %v", err)
	}
	partition, err := feature.DerivePartition(header, continuous, label, canonical)
	if err != nil {
		return nil, nil, err
	}
	isContinuous := make(map[string]bool)
	for _, c := range continuous {
		isContinuous[c] = true
	}
	stringValues := make([][]string, len(header))
	floatValues := make([][]float64, len(header))
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading body: %v", err)
		}
		for i, v := range row {
			if !isContinuous[header[i]] {
				stringValues[i] = append(stringValues[i], v)
				continue
			}
			fv, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing line %d: converting %s to float64: %v", l, v, err)
			}
			floatValues[i] = append(floatValues[i], fv)
		}
	}
	columns := make([]table.Column, len(header))
	for i, name := range header {
		if isContinuous[name] {
			columns[i] = table.NewFloatColumn(name, floatValues[i])
		} else {
			columns[i] = table.NewStringColumn(name, stringValues[i])
		}
	}
	t, err := table.New(columns...)
	if err != nil {
		return nil, nil, err
	}
	return t, partition, nil
}

/*
ReadFromFilePath takes a filepath string and the same arguments as Read,
opens the file the filepath points to and uses Read to return a table and
a feature partition read from it. If the filepath is the empty string,
os.Stdin is read instead. It will return an error if the given filepath
cannot be opened for reading.
*/
func ReadFromFilePath(filepath string, sep rune, continuous []string, label *feature.LabelFeature, canonical map[string][]string) (*table.Table, *feature.Partition, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading record set: %v", err)
		}
	}
	defer f.Close()
	t, partition, err := Read(f, sep, continuous, label, canonical)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return t, partition, err
}

/*
WriteTable takes an io.Writer, a field delimiter and a table and dumps the
table to the writer with a header row naming the columns in table order.
It returns an error if something goes wrong writing to the writer or if
the table holds a column of an unknown type.
*/
func WriteTable(writer io.Writer, sep rune, t *table.Table) error {
	w := csv.NewWriter(writer)
	w.Comma = sep
	err := w.Write(t.ColumnNames())
	if err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	record := make([]string, len(t.ColumnNames()))
	for i := 0; i < t.Rows(); i++ {
		for j, name := range t.ColumnNames() {
			c, _ := t.Column(name)
			switch c := c.(type) {
			case *table.StringColumn:
				record[j] = c.Value(i)
			case *table.IntColumn:
				record[j] = strconv.Itoa(c.Value(i))
			case *table.FloatColumn:
				record[j] = strconv.FormatFloat(c.Value(i), 'g', -1, 64)
			default:
				return fmt.Errorf("writing CSV row %d: unknown column type %T for column %s", i, c, name)
			}
		}
		err = w.Write(record)
		if err != nil {
			return fmt.Errorf("writing CSV row %d: %v", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

/*
WriteTableToFilePath takes a filepath string, a field delimiter and a
table, creates the file the filepath points to and uses WriteTable to
dump the table to it. It will return an error if the given filepath
cannot be created or written.
*/
func WriteTableToFilePath(filepath string, sep rune, t *table.Table) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("creating CSV file %s: %v", filepath, err)
	}
	defer f.Close()
	err = WriteTable(f, sep, t)
	if err != nil {
		return fmt.Errorf("dumping table to CSV file %s: %v", filepath, err)
	}
	return nil
}
