package orm

import (
	"reflect"

	"github.com/fetchback/fetchback"
	"github.com/fetchback/fetchback/internal"
)

type insertQuery struct {
	op *writeOp

	omit map[*Field]bool
}

func (q *insertQuery) AppendQuery(b []byte) ([]byte, error) {
	op := q.op

	if err := q.planOmitted(); err != nil {
		return nil, err
	}

	fields := q.insertFields()

	b = append(b, "INSERT INTO "...)
	b = op.backend.QuoteIdent(b, op.table.Name)

	if len(fields) == 0 {
		if len(op.rows) > 1 {
			return nil, internal.Errorf("fetchback: model %s has no columns to bulk-insert", op.table.ModelName)
		}
		b = append(b, " DEFAULT VALUES"...)
		if len(op.returning) > 0 {
			b = appendReturning(op.backend, b, op.returning)
		}
		return b, nil
	}

	b = append(b, " ("...)
	for i, f := range fields {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = op.backend.QuoteIdent(b, f.SQLName)
	}
	b = append(b, ") VALUES ("...)
	for i, strct := range op.rows {
		if i > 0 {
			b = append(b, "), ("...)
		}
		b = q.appendValues(b, fields, strct)
	}
	b = append(b, ')')

	if len(op.returning) > 0 {
		b = appendReturning(op.backend, b, op.returning)
	}

	return b, nil
}

// planOmitted handles backends without the DEFAULT keyword: a column that
// needs its default in some row is dropped from the column list, which only
// works when no other row supplies a value for it.
func (q *insertQuery) planOmitted() error {
	op := q.op
	if op.backend.Has(fetchback.FeatureDefaultKeyword) {
		return nil
	}

	for _, f := range op.table.Fields {
		var needsDefault, supplied bool
		for _, strct := range op.rows {
			if useDefault(f, strct) {
				needsDefault = true
			} else {
				supplied = true
			}
		}
		if !needsDefault {
			continue
		}
		if supplied {
			return internal.Errorf(
				"fetchback: %s can't mix DEFAULT and explicit values for column %s",
				op.backend.Name(), f.SQLName,
			)
		}
		if q.omit == nil {
			q.omit = make(map[*Field]bool)
		}
		q.omit[f] = true
	}
	return nil
}

func (q *insertQuery) insertFields() []*Field {
	if q.omit == nil {
		return q.op.table.Fields
	}
	fields := make([]*Field, 0, len(q.op.table.Fields))
	for _, f := range q.op.table.Fields {
		if !q.omit[f] {
			fields = append(fields, f)
		}
	}
	return fields
}

func (q *insertQuery) appendValues(b []byte, fields []*Field, strct reflect.Value) []byte {
	for i, f := range fields {
		if i > 0 {
			b = append(b, ", "...)
		}

		switch {
		case f.Status(strct) == fetchback.StatusNull:
			b = append(b, "NULL"...)
		case useDefault(f, strct):
			b = append(b, "DEFAULT"...)
		default:
			b = f.AppendValue(q.op.backend, b, strct)
		}
	}
	return b
}

// useDefault reports whether the column should be left to the server for
// this row. An unset primary key always is, even without an explicit tag.
func useDefault(f *Field, strct reflect.Value) bool {
	if f.Status(strct) != fetchback.StatusUnset {
		return false
	}
	return f.HasDefault() || f.IsPK()
}

func appendReturning(backend *fetchback.Backend, b []byte, fields []*Field) []byte {
	b = append(b, " RETURNING "...)
	for i, f := range fields {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = backend.QuoteIdent(b, f.SQLName)
	}
	return b
}
