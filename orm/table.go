package orm

import (
	"reflect"

	"github.com/go-pg/zerochecker"
	"github.com/jinzhu/inflection"
	"github.com/vmihailenco/tagparser/v2"

	"github.com/fetchback/fetchback/internal"
	"github.com/fetchback/fetchback/types"
)

// Table holds the column descriptors of a model struct. Struct fields are
// mapped with the `fetch` tag:
//
//	type User struct {
//		tableName struct{} `fetch:"user_accounts"`
//
//		ID        int64     `fetch:"id,pk"`
//		Name      string
//		Token     string    `fetch:"token,default:gen_random_uuid()"`
//		CreatedAt time.Time `fetch:"created_at,serverdefault,eager"`
//	}
type Table struct {
	Type reflect.Type

	Name      string
	ModelName string

	PKs        []*Field
	Fields     []*Field
	DataFields []*Field
	FieldsMap  map[string]*Field
}

func (t *Table) GetField(name string) (*Field, error) {
	field, ok := t.FieldsMap[name]
	if !ok {
		return nil, internal.Errorf("fetchback: can't find column %s in table %s", name, t.Name)
	}
	return field, nil
}

func (t *Table) addField(field *Field) {
	t.Fields = append(t.Fields, field)
	if field.has(primaryKeyFlag) {
		t.PKs = append(t.PKs, field)
	} else {
		t.DataFields = append(t.DataFields, field)
	}
	t.FieldsMap[field.SQLName] = field
}

func newTable(typ reflect.Type) *Table {
	modelName := Underscore(typ.Name())
	return &Table{
		Type:      typ,
		Name:      inflection.Plural(modelName),
		ModelName: modelName,
		Fields:    make([]*Field, 0, typ.NumField()),
		FieldsMap: make(map[string]*Field, typ.NumField()),
	}
}

func (t *Table) init() {
	typ := t.Type

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)

		if f.Name == "tableName" {
			tag := tagparser.Parse(f.Tag.Get("fetch"))
			if tag.Name != "" {
				t.Name = tag.Name
			}
			continue
		}

		if f.Anonymous {
			embedded := newTable(indirectType(f.Type))
			embedded.init()
			for _, field := range embedded.Fields {
				field = field.Copy()
				field.Index = append(f.Index, field.Index...)
				t.addField(field)
			}
			continue
		}

		if f.PkgPath != "" {
			continue
		}

		if field := t.newField(f); field != nil {
			t.addField(field)
		}
	}
}

func (t *Table) newField(f reflect.StructField) *Field {
	tag := tagparser.Parse(f.Tag.Get("fetch"))

	if tag.Name == "-" {
		return nil
	}

	sqlName := tag.Name
	if sqlName == "" {
		sqlName = Underscore(f.Name)
	}

	field := Field{
		Type: f.Type,

		GoName:  f.Name,
		SQLName: sqlName,
		Index:   f.Index,

		isZero: zerochecker.Checker(f.Type),
	}

	if expr, ok := tag.Options["default"]; ok {
		field.Default = tagUnquote(expr)
	}
	if tag.HasOption("serverdefault") {
		field.flags |= serverDefaultFlag
	}
	if tag.HasOption("eager") {
		field.flags |= eagerFlag
	}

	if tag.HasOption("pk") {
		field.flags |= primaryKeyFlag
	} else if len(t.PKs) == 0 && (sqlName == "id" || sqlName == "uuid") {
		field.flags |= primaryKeyFlag
	}

	if tag.HasOption("msgpack") {
		field.flags |= msgpackFlag
		field.append = msgpackAppender(f.Type)
	} else {
		field.append = types.Appender(f.Type)
	}
	if field.append == nil {
		field.append = func(_ types.Formatter, b []byte, v reflect.Value) []byte {
			return types.AppendError(b, internal.Errorf("fetchback: %s has no literal form", v.Type()))
		}
	}

	return &field
}

// Tag option values containing commas are single-quoted,
// e.g. `fetch:"expires_at,default:'now() + interval ”1 day”'"`.
func tagUnquote(s string) string {
	const quote = '\''

	if len(s) >= 2 && s[0] == quote && s[len(s)-1] == quote {
		return s[1 : len(s)-1]
	}
	return s
}
