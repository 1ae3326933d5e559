package database

import (
	"context"
	"database/sql"
)

// SqlDatabase adapts *sql.DB, which covers every database/sql driver
// (sqlite in the test suite, or pgx through stdlib registration).
type SqlDatabase struct {
	db *sql.DB
}

func NewSqlDatabase(db *sql.DB) *SqlDatabase {
	return &SqlDatabase{db: db}
}

func (s *SqlDatabase) Query(query string, args ...any) (Rows, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return &SqlRows{rows: rows}, nil
}

func (s *SqlDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &SqlRows{rows: rows}, nil
}

func (s *SqlDatabase) Exec(query string, args ...any) (Result, error) {
	return s.db.Exec(query, args...)
}

func (s *SqlDatabase) ExecContext(ctx context.Context, query string, args ...any) (Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s *SqlDatabase) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SqlDatabase) Close() error {
	return s.db.Close()
}

type SqlRows struct {
	rows *sql.Rows
}

func (s *SqlRows) Next() bool                 { return s.rows.Next() }
func (s *SqlRows) Scan(dest ...any) error     { return s.rows.Scan(dest...) }
func (s *SqlRows) Close() error               { return s.rows.Close() }
func (s *SqlRows) Err() error                 { return s.rows.Err() }
func (s *SqlRows) Columns() ([]string, error) { return s.rows.Columns() }

var _ Database = (*SqlDatabase)(nil)
