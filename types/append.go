package types

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Append appends the SQL literal form of v.
func Append(fmter Formatter, b []byte, vi interface{}) []byte {
	switch v := vi.(type) {
	case nil:
		return AppendNull(b)
	case bool:
		return appendBool(b, v)
	case int8:
		return strconv.AppendInt(b, int64(v), 10)
	case int16:
		return strconv.AppendInt(b, int64(v), 10)
	case int32:
		return strconv.AppendInt(b, int64(v), 10)
	case int64:
		return strconv.AppendInt(b, v, 10)
	case int:
		return strconv.AppendInt(b, int64(v), 10)
	case uint8:
		return strconv.AppendUint(b, uint64(v), 10)
	case uint16:
		return strconv.AppendUint(b, uint64(v), 10)
	case uint32:
		return strconv.AppendUint(b, uint64(v), 10)
	case uint64:
		return strconv.AppendUint(b, v, 10)
	case uint:
		return strconv.AppendUint(b, uint64(v), 10)
	case float32:
		return appendFloat(b, float64(v), 32)
	case float64:
		return appendFloat(b, v, 64)
	case string:
		return AppendString(b, v)
	case time.Time:
		return AppendTime(b, v)
	case []byte:
		return fmter.QuoteBytes(b, v)
	case ValueAppender:
		return v.AppendValue(fmter, b)
	case driver.Valuer:
		return appendDriverValuer(fmter, b, v)
	default:
		return appendValue(fmter, b, reflect.ValueOf(vi))
	}
}

func AppendNull(b []byte) []byte {
	return append(b, "NULL"...)
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, "TRUE"...)
	}
	return append(b, "FALSE"...)
}

func appendFloat(b []byte, v float64, bitSize int) []byte {
	switch {
	case math.IsNaN(v):
		return append(b, "'NaN'"...)
	case math.IsInf(v, 1):
		return append(b, "'Infinity'"...)
	case math.IsInf(v, -1):
		return append(b, "'-Infinity'"...)
	default:
		return strconv.AppendFloat(b, v, 'f', -1, bitSize)
	}
}

// AppendString appends a single-quoted string, doubling embedded quotes.
func AppendString(b []byte, s string) []byte {
	b = append(b, '\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' {
			b = append(b, '\'', '\'')
		} else {
			b = append(b, c)
		}
	}
	return append(b, '\'')
}

func AppendTime(b []byte, tm time.Time) []byte {
	b = append(b, '\'')
	b = tm.UTC().AppendFormat(b, "2006-01-02 15:04:05.999999-07:00")
	return append(b, '\'')
}

// AppendError appends err as an invalid literal so that the resulting query
// fails loudly instead of silently writing a wrong value.
func AppendError(b []byte, err error) []byte {
	b = append(b, "?!("...)
	b = append(b, err.Error()...)
	return append(b, ')')
}

func appendDriverValuer(fmter Formatter, b []byte, v driver.Valuer) []byte {
	value, err := v.Value()
	if err != nil {
		return AppendError(b, err)
	}
	return Append(fmter, b, value)
}

func appendValue(fmter Formatter, b []byte, v reflect.Value) []byte {
	if appender := Appender(v.Type()); appender != nil {
		return appender(fmter, b, v)
	}
	return AppendError(b, fmt.Errorf("types: unsupported %s", v.Type()))
}
