package sqlitelocal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/the-dev-tools/organizer/pkg/db/sqlc"
)

var ErrDBPathNotFound = errors.New("db path not found")

// NewSQLiteLocal opens (creating if needed) the database file at path.
// Tables are created on first open.
func NewSQLiteLocal(ctx context.Context, path string) (*sql.DB, func(), error) {
	if path == "" {
		return nil, nil, ErrDBPathNotFound
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create directory: %w", err)
	}

	var firstTime bool
	if _, err := os.Stat(path); os.IsNotExist(err) {
		firstTime = true
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if firstTime {
		slog.InfoContext(ctx, "creating tables", "path", path)
	}
	// CreateLocalTables is idempotent, so an existing file from an older
	// schema still picks up new tables and indexes.
	if err := sqlc.CreateLocalTables(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, func() { _ = db.Close() }, nil
}
