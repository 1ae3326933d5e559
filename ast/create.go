package ast

import (
	"hash/fnv"
	"strconv"

	"github.com/Konsultn-Engineering/litesql/utils"
)

type ColumnDef struct {
	Name       string
	TypeName   string
	NotNull    bool
	PrimaryKey bool
}

type CreateTableStmt struct {
	Table       *Table
	Columns     []*ColumnDef
	IfNotExists bool
}

func (c *CreateTableStmt) Type() NodeType         { return NodeCreateTable }
func (c *CreateTableStmt) Accept(v Visitor) error { return v.VisitCreateTable(c) }
func (c *CreateTableStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("create:" + strconv.FormatBool(c.IfNotExists)))
	if c.Table != nil {
		h.Write(utils.U64ToBytes(c.Table.Fingerprint()))
	}
	for _, col := range c.Columns {
		h.Write([]byte(col.Name + ":" + col.TypeName))
		if col.NotNull {
			h.Write([]byte("!"))
		}
		if col.PrimaryKey {
			h.Write([]byte("pk"))
		}
	}
	return h.Sum64()
}
