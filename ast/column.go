package ast

import "github.com/Konsultn-Engineering/litesql/utils"

// Column references a single column, optionally table-qualified and aliased.
// Name "*" stands for all columns and is rendered unquoted.
type Column struct {
	Table string
	Name  string
	Alias string
}

func NewColumn(name string) *Column {
	return &Column{Name: name}
}

func (c *Column) Type() NodeType         { return NodeColumn }
func (c *Column) Accept(v Visitor) error { return v.VisitColumn(c) }
func (c *Column) Fingerprint() uint64 {
	return utils.FingerprintString("col:" + c.Table + "." + c.Name + "." + c.Alias)
}
