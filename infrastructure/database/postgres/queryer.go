package postgres

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 3 * time.Second

// Queryer é satisfeito por *sql.DB e *sql.Tx
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
