package result

// Row is one ordered, name-addressable tuple of column values. Column order
// is fixed by the statement's selected columns; positional and by-name
// lookup always agree because both read the same backing slices.
type Row struct {
	columns []string
	values  []any
}

func NewRow(columns []string, values []any) Row {
	return Row{columns: columns, values: values}
}

func (r Row) Len() int {
	return len(r.values)
}

func (r Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Get returns the value at position i.
func (r Row) Get(i int) any {
	return r.values[i]
}

// Value returns the value of the named column and whether the column exists.
func (r Row) Value(name string) (any, bool) {
	for i, col := range r.columns {
		if col == name {
			return r.values[i], true
		}
	}
	return nil, false
}

// AsMap converts the row to a column-name keyed mapping.
func (r Row) AsMap() map[string]any {
	m := make(map[string]any, len(r.columns))
	for i, col := range r.columns {
		m[col] = r.values[i]
	}
	return m
}
