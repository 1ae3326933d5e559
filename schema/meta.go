package schema

import (
	"fmt"
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"
)

// TableNamer lets a model override its derived table name.
type TableNamer interface {
	TableName() string
}

// EntityMeta is the introspected shape of one struct type: its table name
// and an ordered field list, each field carrying the column name and a
// precompiled decoder. Built once per type and cached; all reflection
// probing happens here, never per row.
type EntityMeta struct {
	Type      reflect.Type
	Name      string
	TableName string
	Fields    []*FieldMeta
	FieldMap  map[string]*FieldMeta // Go field name -> meta
	ColumnMap map[string]*FieldMeta // DB column name -> meta
}

type FieldMeta struct {
	Name      string
	DBName    string
	Type      reflect.Type
	Index     int
	Generator string
	decode    DecodeFunc
}

// DecodeFunc coerces a driver-returned value into the field's Go type.
type DecodeFunc func(value any) (any, error)

const metaCacheSize = 256

var metaCache, _ = lru.New[reflect.Type, *EntityMeta](metaCacheSize)

var tagParser = NewTagParser()

// Introspect returns the metadata for t, building and caching it on first
// use. Pointer types are normalized to their element type.
func Introspect(t reflect.Type) (*EntityMeta, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("invalid model type: %s (expected struct)", t.Kind())
	}

	if cached, ok := metaCache.Get(t); ok {
		return cached, nil
	}

	meta, err := buildMeta(t)
	if err != nil {
		return nil, err
	}

	metaCache.Add(t, meta)
	return meta, nil
}

// IntrospectOf is Introspect for a type parameter.
func IntrospectOf[T any]() (*EntityMeta, error) {
	var zero T
	return Introspect(reflect.TypeOf(zero))
}

func buildMeta(t reflect.Type) (*EntityMeta, error) {
	numFields := t.NumField()

	meta := &EntityMeta{
		Type:      t,
		Name:      t.Name(),
		Fields:    make([]*FieldMeta, 0, numFields),
		FieldMap:  make(map[string]*FieldMeta, numFields),
		ColumnMap: make(map[string]*FieldMeta, numFields),
	}

	if tn, ok := reflect.New(t).Interface().(TableNamer); ok {
		meta.TableName = tn.TableName()
	} else {
		meta.TableName = tableNameFor(t.Name())
	}

	for i := 0; i < numFields; i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		parsed, err := tagParser.ParseTag(f.Name, f.Tag.Get("db"))
		if err != nil {
			return nil, err
		}
		if parsed.Skip {
			continue
		}

		fm := &FieldMeta{
			Name:      f.Name,
			DBName:    parsed.ColumnName,
			Type:      f.Type,
			Index:     i,
			Generator: parsed.Generator,
			decode:    buildDecoder(f.Type),
		}

		meta.Fields = append(meta.Fields, fm)
		meta.FieldMap[f.Name] = fm
		meta.ColumnMap[fm.DBName] = fm
	}

	return meta, nil
}

// Columns returns the DB column names in field declaration order.
func (m *EntityMeta) Columns() []string {
	cols := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		cols[i] = f.DBName
	}
	return cols
}

// Decode reconstructs dest (pointer to struct of this meta's type) from a
// column-name keyed mapping. Every declared field is required: a missing
// column or an un-coercible value fails with a *ValidationError.
func (m *EntityMeta) Decode(dest any, mapping map[string]any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Type() != m.Type {
		return fmt.Errorf("decode target must be *%s", m.Type)
	}
	structVal := rv.Elem()

	for _, f := range m.Fields {
		raw, ok := mapping[f.DBName]
		if !ok {
			return &ValidationError{
				Type:   m.Name,
				Field:  f.Name,
				Column: f.DBName,
				Reason: "missing column",
			}
		}

		field := structVal.Field(f.Index)
		if raw == nil {
			field.Set(reflect.Zero(f.Type))
			continue
		}

		decoded, err := f.decode(raw)
		if err != nil {
			return &ValidationError{
				Type:   m.Name,
				Field:  f.Name,
				Column: f.DBName,
				Reason: err.Error(),
			}
		}
		val := reflect.ValueOf(decoded)
		if val.Type() != f.Type && val.Type().ConvertibleTo(f.Type) {
			// named types (type Status string) decode through their base kind
			val = val.Convert(f.Type)
		}
		field.Set(val)
	}

	return nil
}

// DecodeNew allocates a T and decodes mapping into it.
func DecodeNew[T any](mapping map[string]any) (T, error) {
	var out T
	meta, err := Introspect(reflect.TypeOf(out))
	if err != nil {
		return out, err
	}
	if err := meta.Decode(&out, mapping); err != nil {
		return out, err
	}
	return out, nil
}
