package dialect

import "reflect"

type SQLite struct{}

func NewSQLiteDialect() Dialect {
	return &SQLite{}
}

func (SQLite) Name() string {
	return "sqlite"
}

func (SQLite) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (SQLite) Placeholder(n int) string {
	return "?"
}

func (SQLite) ColumnType(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == timeType {
		return "TIMESTAMP"
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "INTEGER"
	case reflect.Float32, reflect.Float64:
		return "REAL"
	case reflect.String:
		return "TEXT"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "BLOB"
		}
	}
	return "TEXT"
}
