package orm

import (
	"reflect"

	"github.com/go-pg/zerochecker"

	"github.com/fetchback/fetchback"
	"github.com/fetchback/fetchback/types"
)

const (
	primaryKeyFlag = uint8(1) << iota
	serverDefaultFlag
	eagerFlag
	msgpackFlag
)

// Field describes a single mapped column of a model struct.
type Field struct {
	Type reflect.Type

	GoName  string // struct field name, e.g. CreatedAt
	SQLName string // column name, e.g. created_at
	Index   []int

	// Default is a pre-executable SQL expression default, e.g. "now()".
	Default string

	flags uint8

	append types.AppenderFunc
	isZero zerochecker.Func
}

func (f *Field) Copy() *Field {
	cp := *f
	cp.Index = cp.Index[:len(f.Index):len(f.Index)]
	return &cp
}

func (f *Field) has(flag uint8) bool {
	return f.flags&flag != 0
}

func (f *Field) IsPK() bool {
	return f.has(primaryKeyFlag)
}

// HasDefault reports whether the column carries any server-generated value.
func (f *Field) HasDefault() bool {
	return f.has(serverDefaultFlag) || f.Default != ""
}

func (f *Field) Value(strct reflect.Value) reflect.Value {
	return strct.FieldByIndex(f.Index)
}

// Status derives the tri-state supplied status from the Go value. A nil
// pointer is an explicit null; a zero non-pointer value is unset; anything
// else was supplied by the caller.
func (f *Field) Status(strct reflect.Value) fetchback.Status {
	fv := f.Value(strct)
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return fetchback.StatusNull
		}
		return fetchback.StatusSet
	}
	if f.isZero(fv) {
		return fetchback.StatusUnset
	}
	return fetchback.StatusSet
}

// Column builds the decision-time descriptor for one row. An unset primary
// key is assumed to be generated server-side.
func (f *Field) Column(tableName string, strct reflect.Value) fetchback.Column {
	col := fetchback.Column{
		Table: tableName,
		Name:  f.SQLName,

		PrimaryKey:    f.has(primaryKeyFlag),
		ServerDefault: f.has(serverDefaultFlag),
		Expression:    f.Default,
		Eager:         f.has(eagerFlag),

		Supplied: f.Status(strct),
	}
	if col.PrimaryKey && col.Supplied == fetchback.StatusUnset {
		col.ServerDefault = true
	}
	return col
}

func (f *Field) AppendValue(fmter types.Formatter, b []byte, strct reflect.Value) []byte {
	fv := f.Value(strct)
	if fv.Kind() == reflect.Ptr && fv.IsNil() {
		return types.AppendNull(b)
	}
	return f.append(fmter, b, fv)
}

// ScanDest returns the destination Rows.Scan writes the fetched value into.
func (f *Field) ScanDest(strct reflect.Value) interface{} {
	fv := strct.FieldByIndex(f.Index)
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return fv.Interface()
	}
	return fv.Addr().Interface()
}
