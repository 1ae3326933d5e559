package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/litesql/utils"
)

type InsertStmt struct {
	Table   *Table
	Columns []string
	Values  [][]Node
}

func (i *InsertStmt) Type() NodeType         { return NodeInsert }
func (i *InsertStmt) Accept(v Visitor) error { return v.VisitInsert(i) }
func (i *InsertStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("insert:"))
	if i.Table != nil {
		h.Write(utils.U64ToBytes(i.Table.Fingerprint()))
	}
	for _, col := range i.Columns {
		h.Write([]byte(col + ","))
	}
	for _, row := range i.Values {
		for _, val := range row {
			h.Write(utils.U64ToBytes(val.Fingerprint()))
		}
	}
	return h.Sum64()
}
