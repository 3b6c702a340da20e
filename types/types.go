package types

import "reflect"

// Formatter quotes identifiers and binary literals for a target backend.
// *fetchback.Backend implements it.
type Formatter interface {
	QuoteIdent(dst []byte, ident string) []byte
	QuoteBytes(dst, b []byte) []byte
}

type AppenderFunc func(fmter Formatter, b []byte, v reflect.Value) []byte

// ValueAppender lets a type control its own literal form.
type ValueAppender interface {
	AppendValue(fmter Formatter, b []byte) []byte
}
