package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Exec renders a statement and executes it.
func Exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build sql: %w", err)
	}
	return q.Exec(ctx, sql, args...)
}

// Query renders a statement and runs it.
func Query(ctx context.Context, q Querier, b squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}
	return q.Query(ctx, sql, args...)
}

// QueryRow renders a statement and runs it, expecting at most one row.
// A build error is reported by Scan.
func QueryRow(ctx context.Context, q Querier, b squirrel.Sqlizer) pgx.Row {
	sql, args, err := b.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build sql: %w", err)}
	}
	return q.QueryRow(ctx, sql, args...)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error { return r.err }

// JoinColumns renders a column list for RETURNING clauses.
func JoinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
