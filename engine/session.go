package engine

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Konsultn-Engineering/litesql/ast"
	"github.com/Konsultn-Engineering/litesql/database"
	"github.com/Konsultn-Engineering/litesql/result"
	"github.com/Konsultn-Engineering/litesql/schema"
	"github.com/Konsultn-Engineering/litesql/visitor"
)

// Session executes statements against one database handle and normalizes
// whatever comes back into a result.Result. Classification is by statement
// kind: selects run through the row path, everything else through Exec.
// Executor failures propagate unchanged.
type Session struct {
	db      database.Database
	visitor *visitor.SQLVisitor
}

func NewSession(db database.Database, v *visitor.SQLVisitor) *Session {
	return &Session{db: db, visitor: v}
}

// Execute renders and runs stmt, returning the normalized result.
func (s *Session) Execute(ctx context.Context, stmt ast.Node) (*result.Result, error) {
	sql, args, err := s.visitor.Build(stmt)
	if err != nil {
		return nil, err
	}

	if _, ok := stmt.(*ast.SelectStmt); ok {
		rows, err := s.db.QueryContext(ctx, sql, args...)
		if err != nil {
			return nil, err
		}
		return collectRows(rows)
	}

	res, err := s.db.ExecContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	return result.FromAffected(affected), nil
}

// Scalar runs a statement expected to yield a single value, nil when the
// statement produced nothing.
func (s *Session) Scalar(ctx context.Context, stmt ast.Node) (any, error) {
	res, err := s.Execute(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return res.Scalar(), nil
}

// Insert writes entity into its table, filling generator-tagged fields that
// are still zero. When entity is a pointer the generated values are written
// back into the struct.
func (s *Session) Insert(ctx context.Context, entity any) (*result.Result, error) {
	rv := reflect.ValueOf(entity)
	meta, err := schema.Introspect(rv.Type())
	if err != nil {
		return nil, err
	}

	structVal := rv
	if structVal.Kind() == reflect.Ptr {
		if structVal.IsNil() {
			return nil, fmt.Errorf("insert target is nil")
		}
		structVal = structVal.Elem()
	}

	stmt := &ast.InsertStmt{
		Table:   ast.NewTable(meta.TableName),
		Columns: meta.Columns(),
	}

	values := make([]ast.Node, len(meta.Fields))
	for i, f := range meta.Fields {
		field := structVal.Field(f.Index)
		if f.Generator != "" && field.IsZero() {
			generated, err := schema.GenerateID(f.Generator)
			if err != nil {
				return nil, err
			}
			if field.CanSet() {
				field.Set(reflect.ValueOf(generated))
			}
			values[i] = ast.NewValue(generated)
			continue
		}
		values[i] = ast.NewValue(field.Interface())
	}
	stmt.Values = [][]ast.Node{values}

	return s.Execute(ctx, stmt)
}

// collectRows drains rows into an immutable result snapshot.
func collectRows(rows database.Rows) (*result.Result, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var collected []result.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		collected = append(collected, result.NewRow(cols, values))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result.FromRows(collected), nil
}
