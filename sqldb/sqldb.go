// Package sqldb adapts database/sql handles to fetchback.Conn.
package sqldb

import (
	"context"
	"database/sql"

	"github.com/fetchback/fetchback"
)

// DB is the subset of database/sql used here. *sql.DB, *sql.Tx and
// *sql.Conn all satisfy it.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
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
	_, err := c.db.ExecContext(ctx, query)
	return err
}

func (c conn) Query(ctx context.Context, query string) (fetchback.Rows, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
