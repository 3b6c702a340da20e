package fetchback

import (
	"fmt"

	"github.com/fetchback/fetchback/internal"
)

var (
	ErrNoRows    = internal.Errorf("fetchback: no rows in result set")
	ErrMultiRows = internal.Errorf("fetchback: multiple rows in result set")
)

// UnsupportedConfigurationError is returned when a primary key has a
// server-generated value that can't be fetched: the backend has no RETURNING
// and the default is not a pre-executable expression. This is a fatal
// configuration error surfaced at write time, never retried.
type UnsupportedConfigurationError struct {
	Backend string
	Table   string
	Column  string
}

func (err *UnsupportedConfigurationError) Error() string {
	return fmt.Sprintf(
		"fetchback: can't fetch generated primary key %s.%s: %s has no RETURNING and the default is not pre-executable",
		err.Table, err.Column, err.Backend,
	)
}
