package pgxdb_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/fetchback/fetchback/pgxdb"
)

type fakeDB struct {
	execs   []string
	queries []string
}

func (db *fakeDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	db.execs = append(db.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.queries = append(db.queries, sql)
	return &fakeRows{values: []any{int64(7)}}, nil
}

type fakeRows struct {
	values []any
	done   bool
}

func (r *fakeRows) Next() bool {
	if r.done {
		return false
	}
	r.done = true
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.values[0].(int64)
	return nil
}

func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) Close()                                       {}
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.values, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func TestWrap(t *testing.T) {
	db := &fakeDB{}
	conn := pgxdb.Wrap(db)
	ctx := context.Background()

	require.NoError(t, conn.Exec(ctx, "INSERT INTO t (n) VALUES (1)"))
	require.Equal(t, []string{"INSERT INTO t (n) VALUES (1)"}, db.execs)

	rows, err := conn.Query(ctx, "SELECT n FROM t")
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var n int64
	require.NoError(t, rows.Scan(&n))
	require.Equal(t, int64(7), n)
	require.False(t, rows.Next())
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())
}
