package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDatabase adapts a pgxpool.Pool. Queries are prepared automatically by
// pgx; the pool owns all connection-level concurrency control.
type PgxDatabase struct {
	pool *pgxpool.Pool
}

func NewPgxDatabase(pool *pgxpool.Pool) *PgxDatabase {
	return &PgxDatabase{pool: pool}
}

func (p *PgxDatabase) Query(query string, args ...any) (Rows, error) {
	return p.QueryContext(context.Background(), query, args...)
}

func (p *PgxDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxRows{rows: rows}, nil
}

func (p *PgxDatabase) Exec(query string, args ...any) (Result, error) {
	return p.ExecContext(context.Background(), query, args...)
}

func (p *PgxDatabase) ExecContext(ctx context.Context, query string, args ...any) (Result, error) {
	cmdTag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxResult{cmdTag: cmdTag}, nil
}

func (p *PgxDatabase) PingContext(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PgxDatabase) Close() error {
	p.pool.Close()
	return nil
}

type PgxRows struct {
	rows    pgx.Rows
	columns []string
}

func (p *PgxRows) Next() bool             { return p.rows.Next() }
func (p *PgxRows) Scan(dest ...any) error { return p.rows.Scan(dest...) }
func (p *PgxRows) Close() error           { p.rows.Close(); return nil }
func (p *PgxRows) Err() error             { return p.rows.Err() }

func (p *PgxRows) Columns() ([]string, error) {
	if p.columns == nil {
		fds := p.rows.FieldDescriptions()
		p.columns = make([]string, len(fds))
		for i, fd := range fds {
			p.columns[i] = fd.Name
		}
	}
	return p.columns, nil
}

type PgxResult struct {
	cmdTag pgconn.CommandTag
}

func (r *PgxResult) RowsAffected() (int64, error) {
	return r.cmdTag.RowsAffected(), nil
}

var _ Database = (*PgxDatabase)(nil)
