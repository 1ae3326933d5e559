package database

import "context"

// Database is the execution capability the engine consumes. Implementations
// own connection pooling and transactional concurrency control; the engine
// only ever asks for rows or an affected-row count.
type Database interface {
	Query(query string, args ...any) (Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(query string, args ...any) (Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (Result, error)
	PingContext(ctx context.Context) error
	Close() error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
	Columns() ([]string, error)
}

type Result interface {
	RowsAffected() (int64, error)
}
