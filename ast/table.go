package ast

import "github.com/Konsultn-Engineering/litesql/utils"

type Table struct {
	Schema string
	Name   string
	Alias  string
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (t *Table) Type() NodeType         { return NodeTable }
func (t *Table) Accept(v Visitor) error { return v.VisitTable(t) }
func (t *Table) Fingerprint() uint64 {
	return utils.FingerprintString("table:" + t.Schema + "." + t.Name + "." + t.Alias)
}
