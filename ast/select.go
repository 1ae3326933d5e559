package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/litesql/utils"
)

// SelectStmt is the root of a query tree. Derivation helpers (WithWhere,
// WithOrderBy, WithLimitOffset, WithColumns) return modified clones so a
// statement handed out once is never changed underneath its holder.
type SelectStmt struct {
	Columns []Node
	From    *Table
	FromSub *SubqueryExpr
	Where   *WhereClause
	OrderBy []*OrderByClause
	Limit   *LimitClause
}

func (s *SelectStmt) Type() NodeType         { return NodeSelect }
func (s *SelectStmt) Accept(v Visitor) error { return v.VisitSelect(s) }
func (s *SelectStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("select:"))
	for _, col := range s.Columns {
		h.Write(utils.U64ToBytes(col.Fingerprint()))
	}
	if s.From != nil {
		h.Write(utils.U64ToBytes(s.From.Fingerprint()))
	}
	if s.FromSub != nil {
		h.Write(utils.U64ToBytes(s.FromSub.Fingerprint()))
	}
	if s.Where != nil {
		h.Write(utils.U64ToBytes(s.Where.Fingerprint()))
	}
	for _, o := range s.OrderBy {
		h.Write(utils.U64ToBytes(o.Fingerprint()))
	}
	if s.Limit != nil {
		h.Write(utils.U64ToBytes(s.Limit.Fingerprint()))
	}
	return h.Sum64()
}

// Clone copies the statement shallowly. Leaf nodes are shared; they are
// treated as immutable once attached to a statement.
func (s *SelectStmt) Clone() *SelectStmt {
	clone := &SelectStmt{
		From:    s.From,
		FromSub: s.FromSub,
		Where:   s.Where,
		Limit:   s.Limit,
	}
	if len(s.Columns) > 0 {
		clone.Columns = make([]Node, len(s.Columns))
		copy(clone.Columns, s.Columns)
	}
	if len(s.OrderBy) > 0 {
		clone.OrderBy = make([]*OrderByClause, len(s.OrderBy))
		copy(clone.OrderBy, s.OrderBy)
	}
	return clone
}

// WithColumns returns a clone selecting the given columns.
func (s *SelectStmt) WithColumns(columns ...Node) *SelectStmt {
	clone := s.Clone()
	clone.Columns = columns
	return clone
}

// WithWhere returns a clone with condition chained onto the WHERE clause.
func (s *SelectStmt) WithWhere(condition Node, operator string) *SelectStmt {
	clone := s.Clone()
	if clone.Where == nil {
		clone.Where = NewWhereClause(condition)
	} else {
		clone.Where = clone.Where.Append(condition, operator)
	}
	return clone
}

// WithOrderBy returns a clone with an additional ORDER BY term.
func (s *SelectStmt) WithOrderBy(expr Node, desc bool) *SelectStmt {
	clone := s.Clone()
	clone.OrderBy = append(clone.OrderBy, NewOrderByClause(expr, desc))
	return clone
}

// WithLimitOffset returns a clone sliced to limit rows starting at offset.
func (s *SelectStmt) WithLimitOffset(limit, offset int) *SelectStmt {
	clone := s.Clone()
	o := offset
	clone.Limit = NewLimitClause(limit, &o)
	return clone
}
