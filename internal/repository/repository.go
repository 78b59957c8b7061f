package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// placeholders returns n Oracle positional bind variables starting at :start.
func placeholders(start, n int) string {
	vars := make([]string, n)
	for i := range vars {
		vars[i] = fmt.Sprintf(":%d", start+i)
	}
	return strings.Join(vars, ", ")
}

// buildInsertAll renders one multi-row INSERT ALL statement. Each row must
// have len(columns) values.
func buildInsertAll(table string, columns []string, rows [][]any) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(rows)*len(columns))
	cols := strings.Join(columns, ", ")

	b.WriteString("INSERT ALL")
	for _, row := range rows {
		fmt.Fprintf(&b, "\n\tINTO %s (%s) VALUES (%s)", table, cols, placeholders(len(args)+1, len(columns)))
		args = append(args, row...)
	}
	b.WriteString("\nSELECT 1 FROM DUAL")
	return b.String(), args
}

// execBatch runs rows as a single statement and returns the confirmed row count.
func execBatch(ctx context.Context, db DBTX, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	query, args := buildInsertAll(table, columns, rows)
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected for %s: %w", table, err)
	}
	return n, nil
}

func boolToNumber(b bool) int {
	if b {
		return 1
	}
	return 0
}
