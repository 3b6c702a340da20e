// Package pgxdb adapts pgx connections to fetchback.Conn.
package pgxdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fetchback/fetchback"
)

// DB is the subset of pgx used here. *pgx.Conn, pgx.Tx and *pgxpool.Pool
// all satisfy it.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Wrap adapts db to fetchback.Conn.
func Wrap(db DB) fetchback.Conn {
	return conn{db: db}
}

type conn struct {
	db DB
}

var _ fetchback.Conn = conn{}

func (c conn) Exec(ctx context.Context, query string) error {
	_, err := c.db.Exec(ctx, query)
	return err
}

func (c conn) Query(ctx context.Context, query string) (fetchback.Rows, error) {
	pgxRows, err := c.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return rows{rows: pgxRows}, nil
}

type rows struct {
	rows pgx.Rows
}

func (r rows) Next() bool {
	return r.rows.Next()
}

func (r rows) Scan(dest ...interface{}) error {
	return r.rows.Scan(dest...)
}

func (r rows) Err() error {
	return r.rows.Err()
}

func (r rows) Close() error {
	r.rows.Close()
	return nil
}
