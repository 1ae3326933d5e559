package dialect

import "reflect"

// Dialect covers the per-database differences the renderer needs: identifier
// quoting, bind placeholders, and Go-type to column-type mapping for DDL.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	Placeholder(n int) string
	ColumnType(t reflect.Type) string
}
