package orm

import "sort"

type expirer interface {
	Expire(column string)
	unexpire(column string)
}

// Expirable tracks columns whose server-generated values have not been
// fetched yet. Embed it in a model to enable deferred fetching:
//
//	type Article struct {
//		orm.Expirable
//
//		ID       int64
//		Revision int64 `fetch:"revision,serverdefault"`
//	}
//
// After a flush, non-eager generated columns are marked expired; Load
// fetches them and clears the marks.
type Expirable struct {
	expired map[string]struct{}
}

// Expire marks a column as awaiting a deferred fetch.
func (e *Expirable) Expire(column string) {
	if e.expired == nil {
		e.expired = make(map[string]struct{})
	}
	e.expired[column] = struct{}{}
}

func (e *Expirable) unexpire(column string) {
	delete(e.expired, column)
}

// IsExpired reports whether the column awaits a deferred fetch.
func (e *Expirable) IsExpired(column string) bool {
	_, ok := e.expired[column]
	return ok
}

// Expired returns the columns awaiting a deferred fetch, sorted by name.
func (e *Expirable) Expired() []string {
	if len(e.expired) == 0 {
		return nil
	}
	columns := make([]string, 0, len(e.expired))
	for column := range e.expired {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
