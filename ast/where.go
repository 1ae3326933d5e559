package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/litesql/utils"
)

// WhereCondition is one link in a WHERE chain. Operator joins the condition
// to the previous one and is ignored on the first link.
type WhereCondition struct {
	Condition Node
	Operator  string
	Next      *WhereCondition
}

type WhereClause struct {
	First *WhereCondition
}

func NewWhereClause(condition Node) *WhereClause {
	return &WhereClause{First: &WhereCondition{Condition: condition}}
}

// Append returns a new clause with condition chained onto a copy of the
// existing chain. The receiver is left untouched so derived statements
// never mutate their parents.
func (w *WhereClause) Append(condition Node, operator string) *WhereClause {
	if w == nil || w.First == nil {
		return NewWhereClause(condition)
	}

	clone := w.clone()
	last := clone.First
	for last.Next != nil {
		last = last.Next
	}
	last.Next = &WhereCondition{Condition: condition, Operator: operator}
	return clone
}

func (w *WhereClause) clone() *WhereClause {
	clone := &WhereClause{}
	var tail *WhereCondition
	for cond := w.First; cond != nil; cond = cond.Next {
		cp := &WhereCondition{Condition: cond.Condition, Operator: cond.Operator}
		if tail == nil {
			clone.First = cp
		} else {
			tail.Next = cp
		}
		tail = cp
	}
	return clone
}

func (w *WhereClause) Type() NodeType         { return NodeWhere }
func (w *WhereClause) Accept(v Visitor) error { return v.VisitWhereClause(w) }
func (w *WhereClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("where:"))
	for cond := w.First; cond != nil; cond = cond.Next {
		h.Write([]byte(cond.Operator))
		if cond.Condition != nil {
			h.Write(utils.U64ToBytes(cond.Condition.Fingerprint()))
		}
	}
	return h.Sum64()
}
