package ast

type NodeType int

const (
	NodeSelect NodeType = iota
	NodeInsert
	NodeCreateTable
	NodeColumn
	NodeTable
	NodeValue
	NodeFunction
	NodeGroupedExpr
	NodeBinaryExpr
	NodeSubqueryExpr
	NodeWhere
	NodeOrderBy
	NodeLimit
)

// Node is a piece of a SQL statement. Fingerprint must be stable for
// identical node trees so rendered SQL can be cached by value.
type Node interface {
	Type() NodeType
	Accept(v Visitor) error
	Fingerprint() uint64
}

type Visitor interface {
	VisitSelect(s *SelectStmt) error
	VisitInsert(s *InsertStmt) error
	VisitCreateTable(s *CreateTableStmt) error
	VisitColumn(c *Column) error
	VisitTable(t *Table) error
	VisitValue(v *Value) error
	VisitFunction(f *Function) error
	VisitGroupedExpr(g *GroupedExpr) error
	VisitBinaryExpr(b *BinaryExpr) error
	VisitSubqueryExpr(s *SubqueryExpr) error
	VisitWhereClause(w *WhereClause) error
	VisitOrderByClause(o *OrderByClause) error
	VisitLimitClause(l *LimitClause) error
}
