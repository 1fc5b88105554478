package dbtest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/the-dev-tools/organizer/pkg/db/gen"
	"github.com/the-dev-tools/organizer/pkg/db/sqlc"
)

func GetTestDB(ctx context.Context) (*sql.DB, error) {
	// unique name per test keeps shared-cache databases isolated
	uniqueName := ulid.Make().String()
	connStr := fmt.Sprintf("file:testdb_%s?mode=memory&cache=shared", uniqueName)

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, err
	}
	// one writer; a second pooled connection would block on the shared-cache table lock
	db.SetMaxOpenConns(1)

	err = sqlc.CreateLocalTables(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func GetTestQueries(ctx context.Context) (*sql.DB, *gen.Queries, error) {
	db, err := GetTestDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return db, gen.New(db), nil
}
