package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/the-dev-tools/organizer/pkg/db/dbtest"
	"github.com/the-dev-tools/organizer/pkg/db/gen"
	"github.com/the-dev-tools/organizer/pkg/logger/mocklogger"
	"github.com/the-dev-tools/organizer/pkg/service/sheader"
	"github.com/the-dev-tools/organizer/pkg/service/srecord"
)

type BaseDBQueries struct {
	Queries *gen.Queries
	DB      *sql.DB
	t       *testing.T
}

type BaseTestServices struct {
	DB *sql.DB
	Rs *srecord.RecordService
	Hs sheader.HeaderService
}

func CreateBaseDB(ctx context.Context, t *testing.T) *BaseDBQueries {
	t.Helper()
	db, err := dbtest.GetTestDB(ctx)
	if err != nil {
		t.Fatal(err)
	}
	return &BaseDBQueries{Queries: gen.New(db), DB: db, t: t}
}

// GetBaseServices wires services over the test database with a fresh sort
// counter.
func (b BaseDBQueries) GetBaseServices() BaseTestServices {
	rs := srecord.New(b.DB, b.Queries, srecord.NewSortAllocator(b.Queries), b.Logger())
	return BaseTestServices{
		DB: b.DB,
		Rs: rs,
		Hs: sheader.New(b.Queries),
	}
}

func (b BaseDBQueries) Close() {
	if err := b.DB.Close(); err != nil {
		b.t.Error(err)
	}
}

func (b BaseDBQueries) Logger() *slog.Logger {
	return mocklogger.NewMockLogger()
}
