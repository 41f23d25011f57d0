package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor покрывает *sql.DB и *sql.Tx, чтобы репозитории
// могли работать как вне, так и внутри транзакции
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
