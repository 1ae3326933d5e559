package engine

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/litesql/ast"
	"github.com/Konsultn-Engineering/litesql/database"
	"github.com/Konsultn-Engineering/litesql/dialect"
)

type Employee struct {
	ID    string `db:"id;generator:ulid"`
	Name  string
	Dept  string
	Level int64
}

type EmployeeRow struct {
	ID   string
	Name string
}

func sqliteEngine(t *testing.T) *Engine {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(database.NewSqlDatabase(db), dialect.NewSQLiteDialect())
}

func seedEmployees(t *testing.T, eng *Engine, n int) []string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, eng.InitSchema(ctx, Employee{}))

	sess := eng.Session()
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		e := &Employee{
			Name:  fmt.Sprintf("employee %02d", i),
			Dept:  []string{"eng", "sales"}[i%2],
			Level: int64(i % 5),
		}
		res, err := sess.Insert(ctx, e)
		require.NoError(t, err)

		affected, ok := res.Affected()
		require.True(t, ok)
		require.Equal(t, int64(1), affected)
		require.NotEmpty(t, e.ID)
		ids = append(ids, e.ID)
	}
	return ids
}

func TestSQLiteRoundTrip(t *testing.T) {
	eng := sqliteEngine(t)
	seedEmployees(t, eng, 25)
	sess := eng.Session()
	ctx := context.Background()

	base, err := SelectFor[Employee, EmployeeRow]()
	require.NoError(t, err)
	base = base.OrderBy("name", false)

	var collected []EmployeeRow
	for p := 1; ; p++ {
		page, err := FetchPage[EmployeeRow](ctx, sess, base, p, 10)
		require.NoError(t, err)

		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, int64(3), page.TotalPages())
		collected = append(collected, page.Items...)
		if !page.HasNext() {
			break
		}
	}

	require.Len(t, collected, 25)
	for i, row := range collected {
		assert.Equal(t, fmt.Sprintf("employee %02d", i+1), row.Name)
		assert.NotEmpty(t, row.ID)
	}
}

func TestSQLitePastEndPage(t *testing.T) {
	eng := sqliteEngine(t)
	seedEmployees(t, eng, 3)
	sess := eng.Session()

	page, err := FetchPage[EmployeeRow](context.Background(), sess, mustSelect(t), 5, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 5, page.Page)
}

func TestSQLiteFilteredCount(t *testing.T) {
	eng := sqliteEngine(t)
	seedEmployees(t, eng, 10)
	sess := eng.Session()

	base := mustSelect(t).Where(ast.Eq("dept", "eng")).OrderBy("name", false)
	page, err := FetchPage[EmployeeRow](context.Background(), sess, base, 1, 3)
	require.NoError(t, err)

	// Even-numbered employees are eng: the count covers the whole filtered
	// set, not just the fetched slice.
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Items, 3)
	assert.True(t, page.HasNext())
}

func TestSQLiteAutoQuery(t *testing.T) {
	eng := sqliteEngine(t)
	seedEmployees(t, eng, 6)
	sess := eng.Session()
	ctx := context.Background()

	rows, err := AutoQuery[Employee, EmployeeRow](ctx, sess, func(q *Query) *Query {
		return q.Where(ast.Eq("dept", "sales")).OrderBy("name", false)
	})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	one, err := AutoQueryOne[Employee, EmployeeRow](ctx, sess, func(q *Query) *Query {
		return q.Where(ast.Eq("name", "employee 02"))
	})
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, "employee 02", one.Name)

	none, err := AutoQueryOne[Employee, EmployeeRow](ctx, sess, func(q *Query) *Query {
		return q.Where(ast.Eq("name", "nobody"))
	})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func mustSelect(t *testing.T) *Query {
	t.Helper()
	q, err := SelectFor[Employee, EmployeeRow]()
	require.NoError(t, err)
	return q
}
