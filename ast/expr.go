package ast

import (
	"fmt"
	"hash/fnv"

	"github.com/Konsultn-Engineering/litesql/utils"
)

// Value is a bind parameter. Its fingerprint covers the held value's
// dynamic type and contents, so two trees that differ only in bound values
// still produce distinct cache keys and the cached argument list stays
// consistent with the cached SQL.
type Value struct {
	Val any
}

func NewValue(val any) *Value {
	return &Value{Val: val}
}

func (v *Value) Type() NodeType           { return NodeValue }
func (v *Value) Accept(vis Visitor) error { return vis.VisitValue(v) }
func (v *Value) Fingerprint() uint64 {
	return utils.FingerprintString(fmt.Sprintf("val:%T:%v", v.Val, v.Val))
}

type BinaryExpr struct {
	Left     Node
	Operator string
	Right    Node
}

func NewBinaryExpr(left Node, operator string, right Node) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: operator, Right: right}
}

func (b *BinaryExpr) Type() NodeType         { return NodeBinaryExpr }
func (b *BinaryExpr) Accept(v Visitor) error { return v.VisitBinaryExpr(b) }
func (b *BinaryExpr) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("bin:" + b.Operator))
	if b.Left != nil {
		h.Write(utils.U64ToBytes(b.Left.Fingerprint()))
	}
	if b.Right != nil {
		h.Write(utils.U64ToBytes(b.Right.Fingerprint()))
	}
	return h.Sum64()
}

type GroupedExpr struct {
	Expr Node
}

func (g *GroupedExpr) Type() NodeType         { return NodeGroupedExpr }
func (g *GroupedExpr) Accept(v Visitor) error { return v.VisitGroupedExpr(g) }
func (g *GroupedExpr) Fingerprint() uint64 {
	if g.Expr == nil {
		return 0
	}
	return utils.Mix64(utils.FingerprintString("grouped"), g.Expr.Fingerprint())
}

// Function is a SQL function call such as COUNT(*).
type Function struct {
	Name string
	Args []Node
}

func (f *Function) Type() NodeType         { return NodeFunction }
func (f *Function) Accept(v Visitor) error { return v.VisitFunction(f) }
func (f *Function) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("func:" + f.Name))
	for _, arg := range f.Args {
		h.Write(utils.U64ToBytes(arg.Fingerprint()))
	}
	return h.Sum64()
}
