package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ValidationError reports that a raw row mapping could not be reconstructed
// into the target struct type.
type ValidationError struct {
	Type   string
	Field  string
	Column string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("litesql: cannot decode %s.%s (column %q): %s",
		e.Type, e.Field, e.Column, e.Reason)
}

var (
	uuidType      = reflect.TypeOf(uuid.UUID{})
	timeValueType = reflect.TypeOf(time.Time{})
)

// buildDecoder compiles a coercion function for one field type. Drivers
// disagree on scalar representations (sqlite returns int64 for every
// integer column, []byte for text, strings for timestamps), so decoders
// accept the common driver forms rather than only the exact Go type.
func buildDecoder(t reflect.Type) DecodeFunc {
	if t.Kind() == reflect.Ptr {
		elemDecode := buildDecoder(t.Elem())
		elemType := t.Elem()
		return func(value any) (any, error) {
			decoded, err := elemDecode(value)
			if err != nil {
				return nil, err
			}
			ptr := reflect.New(elemType)
			ptr.Elem().Set(reflect.ValueOf(decoded))
			return ptr.Interface(), nil
		}
	}

	switch {
	case t == timeValueType:
		return decodeTime
	case t == uuidType:
		return decodeUUID
	}

	switch t.Kind() {
	case reflect.String:
		return decodeString
	case reflect.Bool:
		return decodeBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intDecoder(t)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintDecoder(t)
	case reflect.Float32, reflect.Float64:
		return floatDecoder(t)
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return decodeBytes
		}
	}

	// Last resort for unregistered types: reflect-level convertibility.
	return func(value any) (any, error) {
		rv := reflect.ValueOf(value)
		if rv.Type() == t {
			return value, nil
		}
		if rv.Type().ConvertibleTo(t) {
			return rv.Convert(t).Interface(), nil
		}
		return nil, fmt.Errorf("cannot convert %T to %s", value, t)
	}
}

func decodeString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return nil, fmt.Errorf("cannot convert %T to string", value)
}

func decodeBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case []byte:
		return string(v) == "1" || string(v) == "true", nil
	}
	return nil, fmt.Errorf("cannot convert %T to bool", value)
}

func decodeBytes(value any) (any, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, fmt.Errorf("cannot convert %T to []byte", value)
}

func intDecoder(t reflect.Type) DecodeFunc {
	return func(value any) (any, error) {
		n, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		out := reflect.New(t).Elem()
		if out.OverflowInt(n) {
			return nil, fmt.Errorf("value %d overflows %s", n, t)
		}
		out.SetInt(n)
		return out.Interface(), nil
	}
}

func uintDecoder(t reflect.Type) DecodeFunc {
	return func(value any) (any, error) {
		n, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative value %d for %s", n, t)
		}
		out := reflect.New(t).Elem()
		if out.OverflowUint(uint64(n)) {
			return nil, fmt.Errorf("value %d overflows %s", n, t)
		}
		out.SetUint(uint64(n))
		return out.Interface(), nil
	}
}

func floatDecoder(t reflect.Type) DecodeFunc {
	return func(value any) (any, error) {
		var f float64
		switch v := value.(type) {
		case float64:
			f = v
		case float32:
			f = float64(v)
		case int64:
			f = float64(v)
		case []byte:
			parsed, err := strconv.ParseFloat(string(v), 64)
			if err != nil {
				return nil, err
			}
			f = parsed
		default:
			return nil, fmt.Errorf("cannot convert %T to %s", value, t)
		}
		out := reflect.New(t).Elem()
		out.SetFloat(f)
		return out.Interface(), nil
	}
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to integer", value)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func decodeTime(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	case int64:
		return time.Unix(v, 0).UTC(), nil
	}
	return nil, fmt.Errorf("cannot convert %T to time.Time", value)
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format %q", s)
}

func decodeUUID(value any) (any, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		return uuid.Parse(v)
	case []byte:
		if len(v) == 16 {
			return uuid.FromBytes(v)
		}
		return uuid.Parse(string(v))
	}
	return nil, fmt.Errorf("cannot convert %T to uuid.UUID", value)
}
