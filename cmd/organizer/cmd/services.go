package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/the-dev-tools/organizer/pkg/db/gen"
	"github.com/the-dev-tools/organizer/pkg/db/sqlitelocal"
	"github.com/the-dev-tools/organizer/pkg/db/sqlitemem"
	"github.com/the-dev-tools/organizer/pkg/service/srecord"
)

type services struct {
	DB      *sql.DB
	Records *srecord.RecordService
	close   func()
}

func (s services) Close() {
	s.close()
}

func openServices(ctx context.Context, cfg Config) (services, error) {
	var (
		db      *sql.DB
		closeDB func()
		err     error
	)
	if cfg.DBPath == "" {
		slog.WarnContext(ctx, "no db.path set, records are kept in memory only")
		db, closeDB, err = sqlitemem.NewSQLiteMem(ctx)
	} else {
		db, closeDB, err = sqlitelocal.NewSQLiteLocal(ctx, cfg.DBPath)
	}
	if err != nil {
		return services{}, fmt.Errorf("open database: %w", err)
	}

	queries := gen.New(db)
	rs := srecord.New(db, queries, srecord.NewSortAllocator(queries), slog.Default())
	return services{DB: db, Records: rs, close: closeDB}, nil
}
