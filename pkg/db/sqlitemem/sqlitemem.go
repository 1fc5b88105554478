package sqlitemem

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/the-dev-tools/organizer/pkg/db/sqlc"
)

// NewSQLiteMem opens a private in-memory database with the schema applied.
// Data is gone once the returned close func runs.
func NewSQLiteMem(ctx context.Context) (*sql.DB, func(), error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every pooled connection to :memory: would get its own empty database
	db.SetMaxOpenConns(1)
	if err := sqlc.CreateLocalTables(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return db, func() { _ = db.Close() }, nil
}
