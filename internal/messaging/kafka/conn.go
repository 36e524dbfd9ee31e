package kafka

import (
	"context"
	"database/sql"
)

// dbConn is the part of *sql.DB and *sql.Tx the outbox repository uses.
type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
