package fetchback

import "context"

// Conn is the connection contract consumed by this library. It is expected
// to be satisfied by whatever transactional session abstraction the caller
// already holds; the sqldb and pgxdb subpackages adapt the usual suspects.
// Statements are executed strictly sequentially, one decision and one
// statement (or statement pair) per column-write event.
type Conn interface {
	Exec(ctx context.Context, query string) error
	Query(ctx context.Context, query string) (Rows, error)
}

// Rows is a minimal cursor over a query result.
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
	Close() error
}
