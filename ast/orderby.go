package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/litesql/utils"
)

type OrderByClause struct {
	Expr Node
	Desc bool
}

func NewOrderByClause(expr Node, desc bool) *OrderByClause {
	return &OrderByClause{Expr: expr, Desc: desc}
}

func (o *OrderByClause) Type() NodeType         { return NodeOrderBy }
func (o *OrderByClause) Accept(v Visitor) error { return v.VisitOrderByClause(o) }
func (o *OrderByClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("order:"))
	if o.Expr != nil {
		h.Write(utils.U64ToBytes(o.Expr.Fingerprint()))
	}
	if o.Desc {
		h.Write([]byte("desc"))
	}
	return h.Sum64()
}
