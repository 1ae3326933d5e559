package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/litesql/utils"
)

// SubqueryExpr wraps a statement used as an expression or derived table.
type SubqueryExpr struct {
	Stmt  Node
	Alias string
}

func NewSubqueryExpr(stmt Node, alias string) *SubqueryExpr {
	return &SubqueryExpr{Stmt: stmt, Alias: alias}
}

func (s *SubqueryExpr) Type() NodeType         { return NodeSubqueryExpr }
func (s *SubqueryExpr) Accept(v Visitor) error { return v.VisitSubqueryExpr(s) }
func (s *SubqueryExpr) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("subquery:" + s.Alias))
	if s.Stmt != nil {
		h.Write(utils.U64ToBytes(s.Stmt.Fingerprint()))
	}
	return h.Sum64()
}
