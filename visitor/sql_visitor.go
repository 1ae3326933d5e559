package visitor

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/litesql/ast"
	"github.com/Konsultn-Engineering/litesql/cache"
	"github.com/Konsultn-Engineering/litesql/dialect"
)

// SQLVisitor renders an AST into dialect-specific SQL plus its bind
// arguments. Rendered statements are cached by tree fingerprint; since
// fingerprints cover bound values, cache hits return both SQL and args.
type SQLVisitor struct {
	sb      strings.Builder
	args    []any
	dialect dialect.Dialect
	qcache  cache.QueryCache
	mu      sync.Mutex
}

func NewSQLVisitor(d dialect.Dialect, q cache.QueryCache) *SQLVisitor {
	return &SQLVisitor{
		args:    make([]any, 0, 8),
		dialect: d,
		qcache:  q,
	}
}

func (v *SQLVisitor) reset() {
	v.sb.Reset()
	v.args = v.args[:0]
}

// Build renders root and returns the SQL text with its argument list.
func (v *SQLVisitor) Build(root ast.Node) (string, []any, error) {
	fp := root.Fingerprint()

	if v.qcache != nil {
		if cached, ok := v.qcache.Get(fp); ok {
			return cached.SQL, cached.Args, nil
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.reset()

	if err := root.Accept(v); err != nil {
		return "", nil, err
	}

	sql := v.sb.String()
	var args []any
	if len(v.args) > 0 {
		args = make([]any, len(v.args))
		copy(args, v.args)
	}

	if v.qcache != nil {
		v.qcache.Set(fp, &cache.CachedQuery{SQL: sql, Args: args})
	}
	return sql, args, nil
}

func (v *SQLVisitor) arg(a any) {
	v.args = append(v.args, a)
}

func (v *SQLVisitor) VisitSelect(s *ast.SelectStmt) error {
	v.sb.WriteString("SELECT ")

	for i, col := range s.Columns {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := col.Accept(v); err != nil {
			return err
		}
	}

	switch {
	case s.From != nil:
		v.sb.WriteString(" FROM ")
		if err := s.From.Accept(v); err != nil {
			return err
		}
	case s.FromSub != nil:
		v.sb.WriteString(" FROM ")
		if err := s.FromSub.Accept(v); err != nil {
			return err
		}
	}

	if s.Where != nil {
		if err := s.Where.Accept(v); err != nil {
			return err
		}
	}

	for i, o := range s.OrderBy {
		if i == 0 {
			v.sb.WriteString(" ORDER BY ")
		} else {
			v.sb.WriteString(", ")
		}
		if err := o.Accept(v); err != nil {
			return err
		}
	}

	if s.Limit != nil {
		if err := s.Limit.Accept(v); err != nil {
			return err
		}
	}

	return nil
}

func (v *SQLVisitor) VisitInsert(s *ast.InsertStmt) error {
	if s.Table == nil {
		return fmt.Errorf("insert statement without target table")
	}

	v.sb.WriteString("INSERT INTO ")
	if err := s.Table.Accept(v); err != nil {
		return err
	}

	v.sb.WriteString(" (")
	for i, col := range s.Columns {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(col))
	}
	v.sb.WriteString(") VALUES ")

	for i, row := range s.Values {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteByte('(')
		for j, val := range row {
			if j > 0 {
				v.sb.WriteString(", ")
			}
			if err := val.Accept(v); err != nil {
				return err
			}
		}
		v.sb.WriteByte(')')
	}

	return nil
}

func (v *SQLVisitor) VisitCreateTable(s *ast.CreateTableStmt) error {
	if s.Table == nil {
		return fmt.Errorf("create table statement without target table")
	}

	v.sb.WriteString("CREATE TABLE ")
	if s.IfNotExists {
		v.sb.WriteString("IF NOT EXISTS ")
	}
	if err := s.Table.Accept(v); err != nil {
		return err
	}

	v.sb.WriteString(" (")
	for i, col := range s.Columns {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(col.Name))
		v.sb.WriteByte(' ')
		v.sb.WriteString(col.TypeName)
		if col.PrimaryKey {
			v.sb.WriteString(" PRIMARY KEY")
		}
		if col.NotNull {
			v.sb.WriteString(" NOT NULL")
		}
	}
	v.sb.WriteByte(')')

	return nil
}

func (v *SQLVisitor) VisitColumn(c *ast.Column) error {
	if c.Table != "" {
		v.sb.WriteString(v.dialect.QuoteIdentifier(c.Table))
		v.sb.WriteByte('.')
	}
	if c.Name == "*" {
		v.sb.WriteByte('*')
		return nil
	}
	v.sb.WriteString(v.dialect.QuoteIdentifier(c.Name))

	if c.Alias != "" && c.Alias != c.Name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.dialect.QuoteIdentifier(c.Alias))
	}

	return nil
}

func (v *SQLVisitor) VisitTable(t *ast.Table) error {
	if t.Schema != "" {
		v.sb.WriteString(v.dialect.QuoteIdentifier(t.Schema))
		v.sb.WriteByte('.')
	}
	v.sb.WriteString(v.dialect.QuoteIdentifier(t.Name))

	if t.Alias != "" && t.Alias != t.Name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.dialect.QuoteIdentifier(t.Alias))
	}

	return nil
}

func (v *SQLVisitor) VisitValue(val *ast.Value) error {
	v.sb.WriteString(v.dialect.Placeholder(len(v.args) + 1))
	v.arg(val.Val)
	return nil
}

func (v *SQLVisitor) VisitFunction(f *ast.Function) error {
	v.sb.WriteString(f.Name)
	v.sb.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := arg.Accept(v); err != nil {
			return err
		}
	}
	v.sb.WriteByte(')')
	return nil
}

func (v *SQLVisitor) VisitGroupedExpr(g *ast.GroupedExpr) error {
	v.sb.WriteByte('(')
	err := g.Expr.Accept(v)
	v.sb.WriteByte(')')
	return err
}

func (v *SQLVisitor) VisitBinaryExpr(expr *ast.BinaryExpr) error {
	if err := expr.Left.Accept(v); err != nil {
		return err
	}

	v.sb.WriteByte(' ')
	v.sb.WriteString(expr.Operator)
	v.sb.WriteByte(' ')

	return expr.Right.Accept(v)
}

func (v *SQLVisitor) VisitSubqueryExpr(s *ast.SubqueryExpr) error {
	v.sb.WriteByte('(')
	if err := s.Stmt.Accept(v); err != nil {
		return err
	}
	v.sb.WriteByte(')')
	if s.Alias != "" {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.dialect.QuoteIdentifier(s.Alias))
	}
	return nil
}

func (v *SQLVisitor) VisitWhereClause(clause *ast.WhereClause) error {
	if clause == nil || clause.First == nil {
		return nil
	}

	v.sb.WriteString(" WHERE ")

	first := true
	for cond := clause.First; cond != nil; cond = cond.Next {
		if !first {
			op := cond.Operator
			if op == "" {
				op = "AND"
			}
			v.sb.WriteByte(' ')
			v.sb.WriteString(op)
			v.sb.WriteByte(' ')
		}
		first = false

		if err := cond.Condition.Accept(v); err != nil {
			return err
		}
	}

	return nil
}

func (v *SQLVisitor) VisitOrderByClause(clause *ast.OrderByClause) error {
	if err := clause.Expr.Accept(v); err != nil {
		return err
	}
	if clause.Desc {
		v.sb.WriteString(" DESC")
	} else {
		v.sb.WriteString(" ASC")
	}
	return nil
}

func (v *SQLVisitor) VisitLimitClause(clause *ast.LimitClause) error {
	v.sb.WriteString(" LIMIT ")
	v.sb.WriteString(strconv.Itoa(clause.Count))

	if clause.Offset != nil {
		v.sb.WriteString(" OFFSET ")
		v.sb.WriteString(strconv.Itoa(*clause.Offset))
	}

	return nil
}

var _ ast.Visitor = (*SQLVisitor)(nil)
