package orm

import (
	"context"
	"reflect"

	"github.com/fetchback/fetchback"
	"github.com/fetchback/fetchback/internal"
)

var errModelNil = internal.Errorf("fetchback: model is a nil pointer")

// writeOp is the per-flush plan: one fetch decision per column per row,
// grouped by the statement it produces.
type writeOp struct {
	backend *fetchback.Backend
	table   *Table
	rows    []reflect.Value

	preExec    [][]*Field // before the write, per row
	returning  []*Field   // within the write, union over rows
	postSelect [][]*Field // after the write, per row
	deferred   [][]*Field // on next access, per row
}

func newWriteOp(backend *fetchback.Backend, model interface{}) (*writeOp, error) {
	v := reflect.ValueOf(model)
	if v.Kind() != reflect.Ptr {
		return nil, internal.Errorf("fetchback: expected a pointer to a struct or slice, got %T", model)
	}
	if v.IsNil() {
		return nil, errModelNil
	}
	v = v.Elem()

	var rows []reflect.Value
	switch v.Kind() {
	case reflect.Struct:
		rows = []reflect.Value{v}
	case reflect.Slice:
		if v.Len() == 0 {
			return nil, internal.Errorf("fetchback: can't flush empty slice %s", v.Type())
		}
		rows = make([]reflect.Value, v.Len())
		for i := 0; i < v.Len(); i++ {
			el := v.Index(i)
			if el.Kind() == reflect.Ptr {
				if el.IsNil() {
					return nil, errModelNil
				}
				el = el.Elem()
			}
			rows[i] = el
		}
	default:
		return nil, internal.Errorf("fetchback: expected a struct or slice, got %s", v.Kind())
	}

	return &writeOp{
		backend: backend,
		table:   GetTable(rows[0].Type()),
		rows:    rows,

		preExec:    make([][]*Field, len(rows)),
		postSelect: make([][]*Field, len(rows)),
		deferred:   make([][]*Field, len(rows)),
	}, nil
}

// decide runs the fetch decision for every column of every row. A failed
// decision fails the whole flush before anything is executed.
func (op *writeOp) decide() error {
	for ri, strct := range op.rows {
		for _, f := range op.table.Fields {
			d, err := fetchback.Decide(f.Column(op.table.Name, strct), op.backend)
			if err != nil {
				return err
			}

			switch d {
			case fetchback.PreExecute:
				op.preExec[ri] = append(op.preExec[ri], f)
			case fetchback.Returning:
				op.addReturning(f)
			case fetchback.PostSelect:
				op.postSelect[ri] = append(op.postSelect[ri], f)
			case fetchback.PostSelectDeferred:
				op.deferred[ri] = append(op.deferred[ri], f)
			}
		}
	}
	return nil
}

func (op *writeOp) addReturning(field *Field) {
	for _, f := range op.returning {
		if f == field {
			return
		}
	}
	op.returning = append(op.returning, field)
}

// runPreExec computes expression defaults with separate SELECTs. Fetched
// values land in the model, so the write renders them as ordinary literals.
func (op *writeOp) runPreExec(ctx context.Context, conn fetchback.Conn) error {
	for ri, fields := range op.preExec {
		for _, f := range fields {
			query := string(appendPreExec(nil, f))
			if err := queryOne(ctx, conn, query, f.ScanDest(op.rows[ri])); err != nil {
				return err
			}
		}
	}
	return nil
}

func (op *writeOp) scanReturning(rows fetchback.Rows) error {
	defer rows.Close()

	for _, strct := range op.rows {
		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return fetchback.ErrNoRows
		}

		dest := make([]interface{}, len(op.returning))
		for i, f := range op.returning {
			dest[i] = f.ScanDest(strct)
		}
		if err := rows.Scan(dest...); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (op *writeOp) runPostSelect(ctx context.Context, conn fetchback.Conn) error {
	for ri, fields := range op.postSelect {
		if len(fields) == 0 {
			continue
		}

		strct := op.rows[ri]
		b, err := appendSelect(op.backend, nil, op.table, fields, strct)
		if err != nil {
			return err
		}

		dest := make([]interface{}, len(fields))
		for i, f := range fields {
			dest[i] = f.ScanDest(strct)
		}
		if err := queryOne(ctx, conn, string(b), dest...); err != nil {
			return err
		}
	}
	return nil
}

func (op *writeOp) markDeferred() {
	for ri, fields := range op.deferred {
		if len(fields) == 0 {
			continue
		}

		strct := op.rows[ri]
		if !strct.CanAddr() {
			internal.Logf(
				"fetchback: can't mark deferred columns on %s: model is not addressable",
				op.table.ModelName)
			continue
		}
		exp, ok := strct.Addr().Interface().(expirer)
		if !ok {
			internal.Logf(
				"fetchback: can't mark deferred columns on %s: embed orm.Expirable to track them",
				op.table.ModelName)
			continue
		}
		for _, f := range fields {
			exp.Expire(f.SQLName)
		}
	}
}

func (op *writeOp) run(ctx context.Context, conn fetchback.Conn, query string) error {
	internal.LogQuery(query)

	if len(op.returning) > 0 {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		if err := op.scanReturning(rows); err != nil {
			return err
		}
	} else if err := conn.Exec(ctx, query); err != nil {
		return err
	}

	if err := op.runPostSelect(ctx, conn); err != nil {
		return err
	}
	op.markDeferred()
	return nil
}

// Insert writes a struct or a slice of structs and fetches server-generated
// values per the decision rules. Any failure in the chosen fetch path is
// surfaced as the write failure.
func Insert(ctx context.Context, conn fetchback.Conn, backend *fetchback.Backend, model interface{}) error {
	op, err := newWriteOp(backend, model)
	if err != nil {
		return err
	}
	if err := op.decide(); err != nil {
		return err
	}
	if err := op.runPreExec(ctx, conn); err != nil {
		return err
	}

	b, err := (&insertQuery{op: op}).AppendQuery(nil)
	if err != nil {
		return err
	}
	return op.run(ctx, conn, string(b))
}

// Update writes the supplied columns of a single struct by primary key and
// fetches server-generated values per the decision rules.
func Update(ctx context.Context, conn fetchback.Conn, backend *fetchback.Backend, model interface{}) error {
	if v := reflect.ValueOf(model); v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return internal.Errorf("fetchback: Update expects a pointer to a single struct")
	}
	op, err := newWriteOp(backend, model)
	if err != nil {
		return err
	}
	for _, pk := range op.table.PKs {
		if pk.Status(op.rows[0]) != fetchback.StatusSet {
			return internal.Errorf(
				"fetchback: can't update %s: primary key %s is not set",
				op.table.Name, pk.SQLName,
			)
		}
	}
	if err := op.decide(); err != nil {
		return err
	}

	b, err := (&updateQuery{op: op}).AppendQuery(nil)
	if err != nil {
		return err
	}
	return op.run(ctx, conn, string(b))
}

// Load fetches columns of a single struct by primary key and clears their
// expired marks. Without explicit columns it fetches everything currently
// expired; with none expired it is a no-op.
func Load(ctx context.Context, conn fetchback.Conn, backend *fetchback.Backend, model interface{}, columns ...string) error {
	v := reflect.ValueOf(model)
	if v.Kind() != reflect.Ptr {
		return internal.Errorf("fetchback: expected a pointer to a struct, got %T", model)
	}
	if v.IsNil() {
		return errModelNil
	}
	strct := v.Elem()
	if strct.Kind() != reflect.Struct {
		return internal.Errorf("fetchback: expected a struct, got %s", strct.Kind())
	}

	table := GetTable(strct.Type())

	if len(columns) == 0 {
		e, ok := model.(interface{ Expired() []string })
		if !ok {
			return nil
		}
		columns = e.Expired()
		if len(columns) == 0 {
			return nil
		}
	}

	fields := make([]*Field, len(columns))
	for i, column := range columns {
		f, err := table.GetField(column)
		if err != nil {
			return err
		}
		fields[i] = f
	}

	b, err := appendSelect(backend, nil, table, fields, strct)
	if err != nil {
		return err
	}

	dest := make([]interface{}, len(fields))
	for i, f := range fields {
		dest[i] = f.ScanDest(strct)
	}
	if err := queryOne(ctx, conn, string(b), dest...); err != nil {
		return err
	}

	if exp, ok := model.(expirer); ok {
		for _, column := range columns {
			exp.unexpire(column)
		}
	}
	return nil
}

func queryOne(ctx context.Context, conn fetchback.Conn, query string, dest ...interface{}) error {
	internal.LogQuery(query)

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return fetchback.ErrNoRows
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	if rows.Next() {
		return fetchback.ErrMultiRows
	}
	return rows.Err()
}
