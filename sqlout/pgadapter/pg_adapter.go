/*
Package pgadapter provides an implementation of the Adapter interface in
the sqlout package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	"github.com/youyoungjang/tab-transformer/sqlout"
)

/*
MaxRowInsertionsPerStatement is the maximum number of rows that are
added with a single insert command by the AddRows method of the adapter.
Adding more rows will result in making more insertion commands.
*/
const MaxRowInsertionsPerStatement = 100

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter
that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlout.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(featureName string) (string, error) {
	if featureName == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, featureName)
	}
	if strings.ContainsAny(featureName, `"`) {
		return "", fmt.Errorf(`feature name '%s' contains invalid character '"'`, featureName)
	}
	return featureName, nil
}

func (a *adapter) CreatePartitionTable(ctx context.Context, name string, intColumns, floatColumns []string) error {
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s"(`, name))
	createStmtBuf.WriteString("id SERIAL PRIMARY KEY")
	for _, c := range intColumns {
		createStmtBuf.WriteString(fmt.Sprintf(`, "%s" INTEGER NOT NULL`, c))
	}
	for _, c := range floatColumns {
		createStmtBuf.WriteString(fmt.Sprintf(`, "%s" DOUBLE PRECISION NOT NULL`, c))
	}
	createStmtBuf.WriteString(")")
	_, err := a.db.ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("running %s table creation statement: %v", name, err)
	}
	return nil
}

func (a *adapter) AddRows(ctx context.Context, name string, columns []string, rows [][]interface{}) (int, error) {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = fmt.Sprintf(`"%s"`, c)
	}
	added := 0
	for len(rows) > 0 {
		batch := rows
		if len(batch) > MaxRowInsertionsPerStatement {
			batch = rows[:MaxRowInsertionsPerStatement]
		}
		rows = rows[len(batch):]
		var insertStmtBuf bytes.Buffer
		insertStmtBuf.WriteString(fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES `, name, strings.Join(quoted, ", ")))
		args := make([]interface{}, 0, len(batch)*len(columns))
		for i, row := range batch {
			if i > 0 {
				insertStmtBuf.WriteString(", ")
			}
			insertStmtBuf.WriteString("(")
			for j := range row {
				if j > 0 {
					insertStmtBuf.WriteString(", ")
				}
				insertStmtBuf.WriteString(fmt.Sprintf("$%d", len(args)+j+1))
			}
			insertStmtBuf.WriteString(")")
			args = append(args, row...)
		}
		_, err := a.db.ExecContext(ctx, insertStmtBuf.String(), args...)
		if err != nil {
			return added, fmt.Errorf("running %s row insertion statement: %v", name, err)
		}
		added += len(batch)
	}
	return added, nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}
