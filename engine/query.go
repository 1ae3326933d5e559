package engine

import "github.com/Konsultn-Engineering/litesql/ast"

// Query wraps a select statement with value-semantics derivation: every
// method returns a new Query over a cloned statement, so a query handed to
// the pager or shared between callers is never mutated.
type Query struct {
	stmt *ast.SelectStmt
}

func NewQuery(stmt *ast.SelectStmt) *Query {
	return &Query{stmt: stmt}
}

func (q *Query) Stmt() *ast.SelectStmt {
	return q.stmt
}

// Where adds condition AND-chained onto the filter.
func (q *Query) Where(condition ast.Node) *Query {
	return &Query{stmt: q.stmt.WithWhere(condition, "AND")}
}

// OrWhere adds condition OR-chained onto the filter.
func (q *Query) OrWhere(condition ast.Node) *Query {
	return &Query{stmt: q.stmt.WithWhere(condition, "OR")}
}

func (q *Query) OrderBy(column string, desc bool) *Query {
	return &Query{stmt: q.stmt.WithOrderBy(ast.NewColumn(column), desc)}
}

// Slice applies offset and limit, yielding the paged variant of the query.
func (q *Query) Slice(offset, limit int) *Query {
	return &Query{stmt: q.stmt.WithLimitOffset(limit, offset)}
}
