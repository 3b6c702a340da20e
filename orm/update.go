package orm

import (
	"github.com/fetchback/fetchback"
	"github.com/fetchback/fetchback/internal"
)

type updateQuery struct {
	op *writeOp
}

func (q *updateQuery) AppendQuery(b []byte) ([]byte, error) {
	op := q.op
	strct := op.rows[0]

	b = append(b, "UPDATE "...)
	b = op.backend.QuoteIdent(b, op.table.Name)
	b = append(b, " SET "...)

	// Only supplied columns move; unset default-bearing columns are left to
	// the server and fetched back per their decision.
	var n int
	for _, f := range op.table.DataFields {
		status := f.Status(strct)
		if status == fetchback.StatusUnset {
			continue
		}

		if n > 0 {
			b = append(b, ", "...)
		}
		n++

		b = op.backend.QuoteIdent(b, f.SQLName)
		b = append(b, " = "...)
		if status == fetchback.StatusNull {
			b = append(b, "NULL"...)
		} else {
			b = f.AppendValue(op.backend, b, strct)
		}
	}
	if n == 0 {
		return nil, internal.Errorf("fetchback: model %s has no columns to update", op.table.ModelName)
	}

	b, err := appendWherePK(op.backend, b, op.table, strct)
	if err != nil {
		return nil, err
	}

	if len(op.returning) > 0 {
		b = appendReturning(op.backend, b, op.returning)
	}

	return b, nil
}
