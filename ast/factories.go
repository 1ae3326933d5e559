package ast

// Factory helpers for the node shapes the engine builds most often.

func Columns(names ...string) []Node {
	nodes := make([]Node, len(names))
	for i, name := range names {
		nodes[i] = NewColumn(name)
	}
	return nodes
}

func AllColumns() []Node {
	return []Node{NewColumn("*")}
}

// CountAll builds COUNT(*).
func CountAll() *Function {
	return &Function{Name: "COUNT", Args: []Node{NewColumn("*")}}
}

// CountOver wraps stmt as a derived table and counts its rows:
// SELECT COUNT(*) FROM (stmt) AS sub. The wrapped statement is counted
// unsliced, so the total always covers the full filtered result set.
func CountOver(stmt Node) *SelectStmt {
	return &SelectStmt{
		Columns: []Node{CountAll()},
		FromSub: NewSubqueryExpr(stmt, "sub"),
	}
}

func Eq(column string, value any) Node {
	return NewBinaryExpr(NewColumn(column), "=", NewValue(value))
}

func NotEq(column string, value any) Node {
	return NewBinaryExpr(NewColumn(column), "<>", NewValue(value))
}

func Gt(column string, value any) Node {
	return NewBinaryExpr(NewColumn(column), ">", NewValue(value))
}

func Lt(column string, value any) Node {
	return NewBinaryExpr(NewColumn(column), "<", NewValue(value))
}

func Gte(column string, value any) Node {
	return NewBinaryExpr(NewColumn(column), ">=", NewValue(value))
}

func Lte(column string, value any) Node {
	return NewBinaryExpr(NewColumn(column), "<=", NewValue(value))
}

func Like(column string, pattern string) Node {
	return NewBinaryExpr(NewColumn(column), "LIKE", NewValue(pattern))
}

func And(left, right Node) Node {
	return &GroupedExpr{Expr: NewBinaryExpr(left, "AND", right)}
}

func Or(left, right Node) Node {
	return &GroupedExpr{Expr: NewBinaryExpr(left, "OR", right)}
}

func OrderByAsc(column string) *OrderByClause {
	return NewOrderByClause(NewColumn(column), false)
}

func OrderByDesc(column string) *OrderByClause {
	return NewOrderByClause(NewColumn(column), true)
}

func Limit(count int) *LimitClause {
	return NewLimitClause(count, nil)
}

func LimitOffset(count, offset int) *LimitClause {
	o := offset
	return NewLimitClause(count, &o)
}
