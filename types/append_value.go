package types

import (
	"database/sql/driver"
	"reflect"
	"strconv"
	"time"
)

var (
	timeType          = reflect.TypeOf((*time.Time)(nil)).Elem()
	driverValuerType  = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
	valueAppenderType = reflect.TypeOf((*ValueAppender)(nil)).Elem()
)

var valueAppenders = []AppenderFunc{
	reflect.Bool:    appendBoolValue,
	reflect.Int:     appendIntValue,
	reflect.Int8:    appendIntValue,
	reflect.Int16:   appendIntValue,
	reflect.Int32:   appendIntValue,
	reflect.Int64:   appendIntValue,
	reflect.Uint:    appendUintValue,
	reflect.Uint8:   appendUintValue,
	reflect.Uint16:  appendUintValue,
	reflect.Uint32:  appendUintValue,
	reflect.Uint64:  appendUintValue,
	reflect.Float32: appendFloat32Value,
	reflect.Float64: appendFloat64Value,
	reflect.String:  appendStringValue,
}

// Appender returns an AppenderFunc for the type, or nil when the type has no
// literal form.
func Appender(typ reflect.Type) AppenderFunc {
	if typ.Implements(valueAppenderType) {
		return appendAppenderValue
	}
	if typ.Implements(driverValuerType) {
		return appendDriverValuerValue
	}

	switch typ {
	case timeType:
		return appendTimeValue
	}

	kind := typ.Kind()
	switch kind {
	case reflect.Ptr:
		return ptrAppender(typ)
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return appendBytesValue
		}
	}

	if int(kind) < len(valueAppenders) {
		return valueAppenders[kind]
	}
	return nil
}

func ptrAppender(typ reflect.Type) AppenderFunc {
	appender := Appender(typ.Elem())
	if appender == nil {
		return nil
	}
	return func(fmter Formatter, b []byte, v reflect.Value) []byte {
		if v.IsNil() {
			return AppendNull(b)
		}
		return appender(fmter, b, v.Elem())
	}
}

func appendBoolValue(_ Formatter, b []byte, v reflect.Value) []byte {
	return appendBool(b, v.Bool())
}

func appendIntValue(_ Formatter, b []byte, v reflect.Value) []byte {
	return strconv.AppendInt(b, v.Int(), 10)
}

func appendUintValue(_ Formatter, b []byte, v reflect.Value) []byte {
	return strconv.AppendUint(b, v.Uint(), 10)
}

func appendFloat32Value(_ Formatter, b []byte, v reflect.Value) []byte {
	return appendFloat(b, v.Float(), 32)
}

func appendFloat64Value(_ Formatter, b []byte, v reflect.Value) []byte {
	return appendFloat(b, v.Float(), 64)
}

func appendStringValue(_ Formatter, b []byte, v reflect.Value) []byte {
	return AppendString(b, v.String())
}

func appendBytesValue(fmter Formatter, b []byte, v reflect.Value) []byte {
	return fmter.QuoteBytes(b, v.Bytes())
}

func appendTimeValue(_ Formatter, b []byte, v reflect.Value) []byte {
	return AppendTime(b, v.Interface().(time.Time))
}

func appendAppenderValue(fmter Formatter, b []byte, v reflect.Value) []byte {
	return v.Interface().(ValueAppender).AppendValue(fmter, b)
}

func appendDriverValuerValue(fmter Formatter, b []byte, v reflect.Value) []byte {
	value, err := v.Interface().(driver.Valuer).Value()
	if err != nil {
		return AppendError(b, err)
	}
	if value == nil {
		return AppendNull(b)
	}
	return Append(fmter, b, value)
}
