package orm

import (
	"reflect"

	"github.com/vmihailenco/bufpool"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/fetchback/fetchback/types"
)

var msgpackPool bufpool.Pool

// msgpackAppender encodes the field value with msgpack and writes it as a
// binary literal. Used for fields tagged `fetch:",msgpack"`.
func msgpackAppender(_ reflect.Type) types.AppenderFunc {
	return func(fmter types.Formatter, b []byte, v reflect.Value) []byte {
		buf := msgpackPool.Get()
		defer msgpackPool.Put(buf)

		if err := msgpack.NewEncoder(buf).EncodeValue(v); err != nil {
			return types.AppendError(b, err)
		}

		return fmter.QuoteBytes(b, buf.Bytes())
	}
}
