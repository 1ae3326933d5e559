package engine

import (
	"github.com/Konsultn-Engineering/litesql/ast"
	"github.com/Konsultn-Engineering/litesql/schema"
)

// Project computes the column set of entity needed by the row shape: for
// each shape field, in declaration order, the entity's column of the same
// field name is selected; shape fields the entity does not expose are
// skipped. Zero overlap falls back to selecting all columns.
func Project(entity, shape *schema.EntityMeta) []ast.Node {
	columns := make([]ast.Node, 0, len(shape.Fields))
	for _, f := range shape.Fields {
		if ef, ok := entity.FieldMap[f.Name]; ok {
			columns = append(columns, ast.NewColumn(ef.DBName))
		}
	}
	if len(columns) == 0 {
		return ast.AllColumns()
	}
	return columns
}

// SelectFor builds the base query for model M narrowed to the columns that
// row shape S actually needs.
func SelectFor[M, S any]() (*Query, error) {
	entity, err := schema.IntrospectOf[M]()
	if err != nil {
		return nil, err
	}
	shape, err := schema.IntrospectOf[S]()
	if err != nil {
		return nil, err
	}

	stmt := &ast.SelectStmt{
		Columns: Project(entity, shape),
		From:    ast.NewTable(entity.TableName),
	}
	return NewQuery(stmt), nil
}
