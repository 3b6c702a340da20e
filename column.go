package fetchback

// Status tells whether the caller supplied a value for a column. An explicit
// null is not the same thing as an unset value: null is a supplied value and
// bypasses server defaults, unset lets the server generate one.
type Status int

const (
	StatusUnset Status = iota
	StatusNull
	StatusSet
)

func (s Status) String() string {
	switch s {
	case StatusNull:
		return "null"
	case StatusSet:
		return "set"
	default:
		return "unset"
	}
}

// Column describes a single column in a write, as seen by Decide. It is a
// stateless classification, not a persisted object.
type Column struct {
	Table string
	Name  string

	PrimaryKey bool
	// ServerDefault marks a value generated server-side in a way that can't
	// be computed up front, e.g. an identity column or a trigger.
	ServerDefault bool
	// Expression is an independently evaluable SQL expression default,
	// e.g. "now()". Such defaults can be pre-executed.
	Expression string
	// Eager requests the generated value in the same flush instead of
	// deferring the fetch to next access.
	Eager bool

	Supplied Status
}

// HasDefault reports whether the column has any server-generated value to
// fetch after a write.
func (c Column) HasDefault() bool {
	return c.ServerDefault || c.Expression != ""
}

// PreExecutable reports whether the default can be computed with a separate
// SELECT before the write.
func (c Column) PreExecutable() bool {
	return c.Expression != ""
}
