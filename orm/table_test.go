package orm

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fetchback/fetchback"
)

type timestamps struct {
	CreatedAt time.Time `fetch:"created_at,serverdefault,eager"`
	UpdatedAt time.Time `fetch:"updated_at,serverdefault"`
}

type UserAccount struct {
	timestamps

	ID      int64
	Name    string
	Token   string                 `fetch:"token,default:gen_random_uuid()"`
	Profile map[string]interface{} `fetch:"profile,msgpack"`
	scratch string
	Ignored string `fetch:"-"`
}

type Item struct {
	tableName struct{} `fetch:"warehouse_items"`

	Code string `fetch:"code,pk"`
}

func TestTable(t *testing.T) {
	table := GetTable(reflect.TypeOf(UserAccount{}))

	require.Equal(t, "user_accounts", table.Name)
	require.Equal(t, "user_account", table.ModelName)

	var names []string
	for _, f := range table.Fields {
		names = append(names, f.SQLName)
	}
	require.Equal(t, []string{"created_at", "updated_at", "id", "name", "token", "profile"}, names)

	id, err := table.GetField("id")
	require.NoError(t, err)
	require.True(t, id.IsPK())
	require.Len(t, table.PKs, 1)

	createdAt, err := table.GetField("created_at")
	require.NoError(t, err)
	require.True(t, createdAt.has(serverDefaultFlag))
	require.True(t, createdAt.has(eagerFlag))
	require.True(t, createdAt.HasDefault())

	updatedAt, err := table.GetField("updated_at")
	require.NoError(t, err)
	require.False(t, updatedAt.has(eagerFlag))

	token, err := table.GetField("token")
	require.NoError(t, err)
	require.Equal(t, "gen_random_uuid()", token.Default)
	require.True(t, token.HasDefault())
	require.False(t, token.has(serverDefaultFlag))

	profile, err := table.GetField("profile")
	require.NoError(t, err)
	require.True(t, profile.has(msgpackFlag))

	_, err = table.GetField("scratch")
	require.Error(t, err)
	_, err = table.GetField("ignored")
	require.Error(t, err)
}

func TestTableNameOverride(t *testing.T) {
	table := GetTable(reflect.TypeOf(Item{}))

	require.Equal(t, "warehouse_items", table.Name)
	require.Len(t, table.PKs, 1)
	require.Equal(t, "code", table.PKs[0].SQLName)
}

func TestFieldStatus(t *testing.T) {
	type Row struct {
		ID   int64
		Name *string
	}
	table := GetTable(reflect.TypeOf(Row{}))

	name, err := table.GetField("name")
	require.NoError(t, err)
	id, err := table.GetField("id")
	require.NoError(t, err)

	row := Row{}
	v := reflect.ValueOf(&row).Elem()
	require.Equal(t, fetchback.StatusUnset, id.Status(v))
	require.Equal(t, fetchback.StatusNull, name.Status(v))

	s := ""
	row = Row{ID: 1, Name: &s}
	v = reflect.ValueOf(&row).Elem()
	require.Equal(t, fetchback.StatusSet, id.Status(v))
	require.Equal(t, fetchback.StatusSet, name.Status(v))
}

func TestGetTableConcurrent(t *testing.T) {
	type Widget struct {
		ID   int64 `fetch:"id,pk"`
		Name string
	}
	typ := reflect.TypeOf(Widget{})

	tables := make([]*Table, 8)
	var wg sync.WaitGroup
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = GetTable(typ)
		}(i)
	}
	wg.Wait()

	for _, table := range tables[1:] {
		require.Same(t, tables[0], table)
	}
	require.Len(t, tables[0].Fields, 2)
}
