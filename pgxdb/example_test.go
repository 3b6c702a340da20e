package pgxdb_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fetchback/fetchback"
	"github.com/fetchback/fetchback/orm"
	"github.com/fetchback/fetchback/pgxdb"
)

func ExampleWrap() {
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, "postgres://localhost:5432/app")
	if err != nil {
		panic(err)
	}
	defer conn.Close(ctx)

	type Order struct {
		ID        int64
		Total     int64
		CreatedAt time.Time `fetch:"created_at,serverdefault,eager"`
	}

	order := &Order{Total: 4200}
	if err := orm.Insert(ctx, pgxdb.Wrap(conn), fetchback.PostgreSQL, order); err != nil {
		panic(err)
	}
}
