package orm

import (
	"reflect"

	"github.com/fetchback/fetchback"
	"github.com/fetchback/fetchback/internal"
)

// appendPreExec shapes the SELECT that computes an expression default
// before the write.
func appendPreExec(b []byte, f *Field) []byte {
	b = append(b, "SELECT "...)
	return append(b, f.Default...)
}

// appendSelect shapes the SELECT that fetches column values by primary key
// after the write.
func appendSelect(backend *fetchback.Backend, b []byte, table *Table, fields []*Field, strct reflect.Value) ([]byte, error) {
	if len(table.PKs) == 0 {
		return nil, internal.Errorf("fetchback: model %s does not have primary keys", table.ModelName)
	}

	b = append(b, "SELECT "...)
	for i, f := range fields {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = backend.QuoteIdent(b, f.SQLName)
	}
	b = append(b, " FROM "...)
	b = backend.QuoteIdent(b, table.Name)

	return appendWherePK(backend, b, table, strct)
}

func appendWherePK(backend *fetchback.Backend, b []byte, table *Table, strct reflect.Value) ([]byte, error) {
	b = append(b, " WHERE "...)
	for i, pk := range table.PKs {
		if pk.Status(strct) != fetchback.StatusSet {
			return nil, internal.Errorf(
				"fetchback: can't reference row in %s: primary key %s is not set",
				table.Name, pk.SQLName,
			)
		}
		if i > 0 {
			b = append(b, " AND "...)
		}
		b = backend.QuoteIdent(b, pk.SQLName)
		b = append(b, " = "...)
		b = pk.AppendValue(backend, b, strct)
	}
	return b, nil
}
