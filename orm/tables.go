package orm

import (
	"fmt"
	"reflect"
	"sync"
)

var _tables = newTables()

// GetTable returns the Table for a struct type, building it on first use.
func GetTable(typ reflect.Type) *Table {
	return _tables.Get(typ)
}

// RegisterTable builds and caches the Table for a model up front.
func RegisterTable(strct interface{}) {
	typ := reflect.TypeOf(strct)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	_ = GetTable(typ)
}

type tableInProgress struct {
	table *Table
	wg    sync.WaitGroup
}

type tables struct {
	mu         sync.RWMutex
	inProgress map[reflect.Type]*tableInProgress
	tables     map[reflect.Type]*Table
}

func newTables() *tables {
	return &tables{
		inProgress: make(map[reflect.Type]*tableInProgress),
		tables:     make(map[reflect.Type]*Table),
	}
}

func (t *tables) Get(typ reflect.Type) *Table {
	if typ.Kind() != reflect.Struct {
		panic(fmt.Errorf("got %s, wanted %s", typ.Kind(), reflect.Struct))
	}

	t.mu.RLock()
	table, ok := t.tables[typ]
	t.mu.RUnlock()
	if ok {
		return table
	}

	t.mu.Lock()

	table, ok = t.tables[typ]
	if ok {
		t.mu.Unlock()
		return table
	}

	if inProgress := t.inProgress[typ]; inProgress != nil {
		t.mu.Unlock()
		inProgress.wg.Wait()
		return inProgress.table
	}

	inProgress := &tableInProgress{
		table: newTable(typ),
	}
	inProgress.wg.Add(1)
	t.inProgress[typ] = inProgress

	t.mu.Unlock()
	inProgress.table.init()
	inProgress.wg.Done()
	t.mu.Lock()

	delete(t.inProgress, typ)
	t.tables[typ] = inProgress.table

	t.mu.Unlock()
	return inProgress.table
}
