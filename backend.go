package fetchback

import (
	hex "github.com/tmthrgd/go-hex"
)

// Feature is a bitmask of backend capabilities. Capabilities are fixed per
// backend, never probed at runtime.
type Feature uint

const (
	// FeatureReturning marks backends that can return server-computed
	// values within the write statement itself.
	FeatureReturning Feature = 1 << iota
	// FeatureDefaultKeyword marks backends that accept the DEFAULT keyword
	// in a VALUES list.
	FeatureDefaultKeyword
	// FeatureByteaHex marks backends using PostgreSQL '\x...' binary
	// literals instead of the standard X'...' form.
	FeatureByteaHex
)

// Backend describes a target database. It carries the capability flags the
// fetch decision depends on and the quoting rules used when shaping SQL.
type Backend struct {
	name       string
	features   Feature
	identQuote byte
}

func NewBackend(name string, features Feature, identQuote byte) *Backend {
	return &Backend{
		name:       name,
		features:   features,
		identQuote: identQuote,
	}
}

var (
	PostgreSQL  = NewBackend("postgres", FeatureReturning|FeatureDefaultKeyword|FeatureByteaHex, '"')
	CockroachDB = NewBackend("cockroachdb", FeatureReturning|FeatureDefaultKeyword|FeatureByteaHex, '"')
	SQLite      = NewBackend("sqlite", FeatureReturning, '"')
	MySQL       = NewBackend("mysql", FeatureDefaultKeyword, '`')
	MariaDB     = NewBackend("mariadb", FeatureReturning|FeatureDefaultKeyword, '`')
)

var backends = []*Backend{PostgreSQL, CockroachDB, SQLite, MySQL, MariaDB}

// Lookup returns a built-in backend by name, or nil.
func Lookup(name string) *Backend {
	for _, b := range backends {
		if b.name == name {
			return b
		}
	}
	return nil
}

// Backends returns the built-in backends.
func Backends() []*Backend {
	return backends
}

func (b *Backend) Name() string {
	return b.name
}

func (b *Backend) Has(f Feature) bool {
	return b.features&f != 0
}

// QuoteIdent appends a quoted identifier, doubling embedded quote chars.
func (b *Backend) QuoteIdent(dst []byte, ident string) []byte {
	dst = append(dst, b.identQuote)
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c == b.identQuote {
			dst = append(dst, c)
		}
		dst = append(dst, c)
	}
	return append(dst, b.identQuote)
}

// QuoteBytes appends a binary literal in the backend's preferred form.
func (b *Backend) QuoteBytes(dst, bs []byte) []byte {
	if b.Has(FeatureByteaHex) {
		dst = append(dst, `'\x`...)
	} else {
		dst = append(dst, `X'`...)
	}

	s := len(dst)
	dst = append(dst, make([]byte, hex.EncodedLen(len(bs)))...)
	hex.Encode(dst[s:], bs)

	return append(dst, '\'')
}
