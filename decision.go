package fetchback

// Decision is the method by which a server-generated column value becomes
// known to the caller after a write.
type Decision int

const (
	// None means the value is supplied by the caller (or there is nothing
	// to fetch) and all server defaults are bypassed.
	None Decision = iota
	// Returning captures the value in the write statement itself.
	Returning
	// PreExecute computes the value with a SELECT issued before the write.
	PreExecute
	// PostSelect fetches the value with a SELECT issued immediately after
	// the write. Costs an extra round-trip.
	PostSelect
	// PostSelectDeferred marks the value expired and fetches it with a
	// SELECT on next access.
	PostSelectDeferred
)

var decisionStrings = []string{
	None:               "none",
	Returning:          "returning",
	PreExecute:         "pre_execute",
	PostSelect:         "post_select",
	PostSelectDeferred: "post_select_deferred",
}

func (d Decision) String() string {
	if d < 0 || int(d) >= len(decisionStrings) {
		return "unknown"
	}
	return decisionStrings[d]
}

// Decide picks the fetch method for a single column write. Rules are applied
// in order, first match wins:
//
//  1. A supplied value, including an explicit null, bypasses everything.
//  2. Primary keys use RETURNING when the backend has it.
//  3. Primary keys on backends without RETURNING fall back to pre-executing
//     an expression default; without one the configuration is unsupported.
//  4. Eager columns use RETURNING when the backend has it, otherwise an
//     immediate post-select.
//  5. Everything else is fetched lazily.
func Decide(col Column, backend *Backend) (Decision, error) {
	if col.Supplied != StatusUnset {
		return None, nil
	}
	if !col.HasDefault() {
		return None, nil
	}

	if col.PrimaryKey {
		if backend.Has(FeatureReturning) {
			return Returning, nil
		}
		if col.PreExecutable() {
			return PreExecute, nil
		}
		return None, &UnsupportedConfigurationError{
			Backend: backend.Name(),
			Table:   col.Table,
			Column:  col.Name,
		}
	}

	if col.Eager {
		if backend.Has(FeatureReturning) {
			return Returning, nil
		}
		return PostSelect, nil
	}

	return PostSelectDeferred, nil
}
