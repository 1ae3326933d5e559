package schema

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test models
// ============================================================================

type User struct {
	ID        string `db:"id;generator:uuid"`
	FirstName string
	Email     string `db:"email_address"`
	Age       int32
	Internal  string `db:"-"`
	unexported string //nolint:unused
}

type Company struct{}

func (Company) TableName() string { return "org_companies" }

type UserSummary struct {
	ID        string
	FirstName string
}

type Status string

type Order struct {
	ID     int64
	Status Status
	Placed time.Time
	Ref    uuid.UUID
	Notes  *string
	Amount float64
}

// ============================================================================
// Naming
// ============================================================================

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ID", "id"},
		{"UserID", "user_id"},
		{"HTTPStatus", "http_status"},
		{"FirstName", "first_name"},
		{"APIKey", "api_key"},
		{"already_snake", "already_snake"},
		{"Simple", "simple"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toSnakeCase(tt.in))
		})
	}
}

func TestTableNameDerivation(t *testing.T) {
	meta, err := IntrospectOf[User]()
	require.NoError(t, err)
	assert.Equal(t, "users", meta.TableName)

	meta, err = IntrospectOf[Company]()
	require.NoError(t, err)
	assert.Equal(t, "org_companies", meta.TableName)
}

// ============================================================================
// Tag parsing
// ============================================================================

func TestParseTag(t *testing.T) {
	parser := NewTagParser()

	tests := []struct {
		name    string
		field   string
		tag     string
		want    ParsedTag
		wantErr bool
	}{
		{name: "EmptyDefaultsToSnake", field: "FirstName", want: ParsedTag{ColumnName: "first_name"}},
		{name: "ExplicitColumn", field: "Email", tag: "email_address", want: ParsedTag{ColumnName: "email_address"}},
		{name: "Skip", field: "Internal", tag: "-", want: ParsedTag{Skip: true}},
		{name: "ColumnWithGenerator", field: "ID", tag: "id;generator:uuid", want: ParsedTag{ColumnName: "id", Generator: "uuid"}},
		{name: "GeneratorOnly", field: "TraceID", tag: "generator:ulid", want: ParsedTag{ColumnName: "trace_id", Generator: "ulid"}},
		{name: "ColumnKey", field: "Email", tag: "column:mail", want: ParsedTag{ColumnName: "mail"}},
		{name: "UnknownOption", field: "Email", tag: "frobnicate:yes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parser.ParseTag(tt.field, tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *parsed)
		})
	}
}

// ============================================================================
// Introspection
// ============================================================================

func TestIntrospect(t *testing.T) {
	meta, err := IntrospectOf[User]()
	require.NoError(t, err)

	assert.Equal(t, "User", meta.Name)
	assert.Equal(t, []string{"id", "first_name", "email_address", "age"}, meta.Columns())

	id := meta.FieldMap["ID"]
	require.NotNil(t, id)
	assert.Equal(t, "uuid", id.Generator)
	assert.Same(t, id, meta.ColumnMap["id"])

	// Skipped and unexported fields never surface.
	assert.NotContains(t, meta.FieldMap, "Internal")
	assert.NotContains(t, meta.FieldMap, "unexported")

	// Pointer types normalize to their element.
	viaPtr, err := IntrospectOf[*User]()
	require.NoError(t, err)
	assert.Same(t, meta, viaPtr)
}

func TestIntrospectRejectsNonStruct(t *testing.T) {
	_, err := IntrospectOf[int]()
	assert.Error(t, err)
}

// ============================================================================
// Decoding
// ============================================================================

func TestDecode(t *testing.T) {
	mapping := map[string]any{
		"id":            "u-1",
		"first_name":    []byte("Ada"),
		"email_address": "ada@example.com",
		"age":           int64(36),
	}

	user, err := DecodeNew[User](mapping)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, int32(36), user.Age)
}

func TestDecodeDriverForms(t *testing.T) {
	ref := uuid.New()
	note := "paid"

	mapping := map[string]any{
		"id":     []byte("42"),
		"status": "shipped",
		"placed": "2026-08-25 10:30:00",
		"ref":    ref.String(),
		"notes":  note,
		"amount": int64(12),
	}

	order, err := DecodeNew[Order](mapping)
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, Status("shipped"), order.Status)
	assert.Equal(t, 2026, order.Placed.Year())
	assert.Equal(t, ref, order.Ref)
	require.NotNil(t, order.Notes)
	assert.Equal(t, note, *order.Notes)
	assert.Equal(t, 12.0, order.Amount)
}

func TestDecodeNilLeavesZero(t *testing.T) {
	mapping := map[string]any{
		"id":     int64(1),
		"status": "",
		"placed": time.Time{},
		"ref":    uuid.Nil.String(),
		"notes":  nil,
		"amount": float64(0),
	}

	order, err := DecodeNew[Order](mapping)
	require.NoError(t, err)
	assert.Nil(t, order.Notes)
}

func TestDecodeMissingColumn(t *testing.T) {
	_, err := DecodeNew[User](map[string]any{"id": "u-1"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "User", verr.Type)
	assert.Equal(t, "FirstName", verr.Field)
	assert.Equal(t, "first_name", verr.Column)
}

func TestDecodeTypeMismatch(t *testing.T) {
	_, err := DecodeNew[User](map[string]any{
		"id":            "u-1",
		"first_name":    "Ada",
		"email_address": "ada@example.com",
		"age":           "not a number",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Age", verr.Field)
}

func TestDecodeIntOverflow(t *testing.T) {
	_, err := DecodeNew[User](map[string]any{
		"id":            "u-1",
		"first_name":    "Ada",
		"email_address": "ada@example.com",
		"age":           int64(1 << 40),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "overflows")
}

// ============================================================================
// Generators
// ============================================================================

func TestGenerators(t *testing.T) {
	v, err := GenerateID("uuid")
	require.NoError(t, err)
	_, err = uuid.Parse(v.(string))
	assert.NoError(t, err)

	v, err = GenerateID("ulid")
	require.NoError(t, err)
	_, err = ulid.Parse(v.(string))
	assert.NoError(t, err)

	_, err = GenerateID("snowflake")
	assert.Error(t, err)
}

func TestULIDMonotonicWithinMillisecond(t *testing.T) {
	gen := NewULIDGenerator()

	a, err := gen.Generate()
	require.NoError(t, err)
	b, err := gen.Generate()
	require.NoError(t, err)
	assert.Less(t, a.(string), b.(string))
}
