package orm

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fetchback/fetchback"
)

func modelType(model interface{}) reflect.Type {
	return reflect.TypeOf(model)
}

func modelValue(model interface{}) reflect.Value {
	return reflect.ValueOf(model).Elem()
}

type Book struct {
	ID       int64
	Title    string
	Revision int64 `fetch:"revision,serverdefault,eager"`
	Note     *string
}

func mustPlan(t *testing.T, backend *fetchback.Backend, model interface{}) *writeOp {
	t.Helper()
	op, err := newWriteOp(backend, model)
	require.NoError(t, err)
	require.NoError(t, op.decide())
	return op
}

func TestInsertQueryReturning(t *testing.T) {
	book := Book{Title: "The Go Programming Language"}
	op := mustPlan(t, fetchback.PostgreSQL, &book)

	b, err := (&insertQuery{op: op}).AppendQuery(nil)
	require.NoError(t, err)
	require.Equal(t,
		`INSERT INTO "books" ("id", "title", "revision", "note") `+
			`VALUES (DEFAULT, 'The Go Programming Language', DEFAULT, NULL) `+
			`RETURNING "id", "revision"`,
		string(b))
}

func TestInsertQueryMultiRow(t *testing.T) {
	books := []Book{{Title: "first"}, {Title: "second"}}
	op := mustPlan(t, fetchback.PostgreSQL, &books)

	b, err := (&insertQuery{op: op}).AppendQuery(nil)
	require.NoError(t, err)
	require.Equal(t,
		`INSERT INTO "books" ("id", "title", "revision", "note") `+
			`VALUES (DEFAULT, 'first', DEFAULT, NULL), (DEFAULT, 'second', DEFAULT, NULL) `+
			`RETURNING "id", "revision"`,
		string(b))
}

func TestInsertQueryOmitsDefaultColumns(t *testing.T) {
	// SQLite has RETURNING but no DEFAULT keyword, so default-bearing unset
	// columns drop out of the column list.
	book := Book{Title: "x"}
	op := mustPlan(t, fetchback.SQLite, &book)

	b, err := (&insertQuery{op: op}).AppendQuery(nil)
	require.NoError(t, err)
	require.Equal(t,
		`INSERT INTO "books" ("title", "note") VALUES ('x', NULL) RETURNING "id", "revision"`,
		string(b))
}

func TestInsertQueryMixedDefaultWithoutKeyword(t *testing.T) {
	books := []Book{{Title: "a", Revision: 3}, {Title: "b"}}
	op := mustPlan(t, fetchback.SQLite, &books)

	_, err := (&insertQuery{op: op}).AppendQuery(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "can't mix DEFAULT and explicit values")
}

func TestUpdateQuery(t *testing.T) {
	note := "second edition"
	book := Book{ID: 7, Title: "updated", Note: &note}
	op := mustPlan(t, fetchback.PostgreSQL, &book)

	b, err := (&updateQuery{op: op}).AppendQuery(nil)
	require.NoError(t, err)
	require.Equal(t,
		`UPDATE "books" SET "title" = 'updated', "note" = 'second edition' `+
			`WHERE "id" = 7 RETURNING "revision"`,
		string(b))
}

func TestUpdateQueryExplicitNull(t *testing.T) {
	book := Book{ID: 7, Title: "t", Note: nil}
	op := mustPlan(t, fetchback.PostgreSQL, &book)

	b, err := (&updateQuery{op: op}).AppendQuery(nil)
	require.NoError(t, err)
	require.Equal(t,
		`UPDATE "books" SET "title" = 't', "note" = NULL `+
			`WHERE "id" = 7 RETURNING "revision"`,
		string(b))
}

func TestSelectQuery(t *testing.T) {
	book := Book{ID: 42}
	table := GetTable(indirectType(modelType(&book)))

	revision, err := table.GetField("revision")
	require.NoError(t, err)

	b, err := appendSelect(fetchback.PostgreSQL, nil, table, []*Field{revision}, modelValue(&book))
	require.NoError(t, err)
	require.Equal(t, `SELECT "revision" FROM "books" WHERE "id" = 42`, string(b))
}

func TestSelectQueryUnsetPK(t *testing.T) {
	book := Book{}
	table := GetTable(indirectType(modelType(&book)))

	revision, err := table.GetField("revision")
	require.NoError(t, err)

	_, err = appendSelect(fetchback.PostgreSQL, nil, table, []*Field{revision}, modelValue(&book))
	require.Error(t, err)
	require.Contains(t, err.Error(), "primary key id is not set")
}

func TestPreExecQuery(t *testing.T) {
	type Session struct {
		Token string `fetch:"token,pk,default:gen_random_uuid()"`
	}
	table := GetTable(indirectType(modelType(&Session{})))

	token, err := table.GetField("token")
	require.NoError(t, err)
	require.Equal(t, "SELECT gen_random_uuid()", string(appendPreExec(nil, token)))
}
