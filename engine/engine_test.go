package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/litesql/ast"
	"github.com/Konsultn-Engineering/litesql/database"
	"github.com/Konsultn-Engineering/litesql/dialect"
)

// ============================================================================
// Scripted database fake
// ============================================================================

type loggedQuery struct {
	sql  string
	args []any
}

type queryResponse struct {
	cols []string
	rows [][]any
	err  error
}

// fakeDB replays queued responses in order and logs every statement it is
// handed, so tests can assert both what ran and how often.
type fakeDB struct {
	queries   []loggedQuery
	responses []queryResponse
	affected  []int64
	execErr   error
}

func (f *fakeDB) pop() queryResponse {
	if len(f.responses) == 0 {
		return queryResponse{err: fmt.Errorf("unexpected query #%d", len(f.queries))}
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, loggedQuery{sql: query, args: args})
	resp := f.pop()
	if resp.err != nil {
		return nil, resp.err
	}
	return &fakeRows{cols: resp.cols, data: resp.rows, idx: -1}, nil
}

func (f *fakeDB) Query(query string, args ...any) (database.Rows, error) {
	return f.QueryContext(context.Background(), query, args...)
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (database.Result, error) {
	f.queries = append(f.queries, loggedQuery{sql: query, args: args})
	if f.execErr != nil {
		return nil, f.execErr
	}
	var n int64
	if len(f.affected) > 0 {
		n = f.affected[0]
		f.affected = f.affected[1:]
	}
	return fakeResult{n: n}, nil
}

func (f *fakeDB) Exec(query string, args ...any) (database.Result, error) {
	return f.ExecContext(context.Background(), query, args...)
}

func (f *fakeDB) PingContext(ctx context.Context) error { return nil }
func (f *fakeDB) Close() error                          { return nil }

type fakeRows struct {
	cols []string
	data [][]any
	idx  int
}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx]
	for i, d := range dest {
		*(d.(*any)) = row[i]
	}
	return nil
}

func (r *fakeRows) Close() error              { return nil }
func (r *fakeRows) Err() error                { return nil }
func (r *fakeRows) Columns() ([]string, error) { return r.cols, nil }

type fakeResult struct{ n int64 }

func (r fakeResult) RowsAffected() (int64, error) { return r.n, nil }

var _ database.Database = (*fakeDB)(nil)

func newFakeEngine(db *fakeDB) *Engine {
	return New(db, dialect.NewSQLiteDialect())
}

// ============================================================================
// Test models
// ============================================================================

type Person struct {
	ID   string
	Name string
	Age  int32
}

type PersonRow struct {
	ID   string
	Name string
}

type Account struct {
	ID      string `db:"id;generator:uuid"`
	Owner   string
	Balance int64
}

// ============================================================================
// Projection
// ============================================================================

func TestSelectForProjectsShapeColumns(t *testing.T) {
	q, err := SelectFor[Person, PersonRow]()
	require.NoError(t, err)

	sess := newFakeEngine(&fakeDB{}).Session()
	sql, args, err := sess.visitor.Build(q.Stmt())
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id", "name" FROM "people"`, sql)
	assert.Nil(t, args)
}

func TestSelectForFallsBackToAllColumns(t *testing.T) {
	type Unrelated struct {
		Serial int
	}

	q, err := SelectFor[Person, Unrelated]()
	require.NoError(t, err)

	sess := newFakeEngine(&fakeDB{}).Session()
	sql, _, err := sess.visitor.Build(q.Stmt())
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "people"`, sql)
}

func TestProjectionKeepsShapeOrder(t *testing.T) {
	type Reordered struct {
		Name string
		ID   string
	}

	q, err := SelectFor[Person, Reordered]()
	require.NoError(t, err)

	sess := newFakeEngine(&fakeDB{}).Session()
	sql, _, err := sess.visitor.Build(q.Stmt())
	require.NoError(t, err)
	assert.Equal(t, `SELECT "name", "id" FROM "people"`, sql)
}

// ============================================================================
// Session execution
// ============================================================================

func TestSessionExecuteSelect(t *testing.T) {
	db := &fakeDB{responses: []queryResponse{{
		cols: []string{"id", "name"},
		rows: [][]any{{"p1", "ada"}, {"p2", "bob"}},
	}}}
	sess := newFakeEngine(db).Session()

	q, err := SelectFor[Person, PersonRow]()
	require.NoError(t, err)

	res, err := sess.Execute(context.Background(), q.Stmt())
	require.NoError(t, err)
	assert.Len(t, res.All(), 2)

	row, ok := res.First()
	require.True(t, ok)
	assert.Equal(t, "p1", row.Get(0))
}

func TestSessionExecuteErrorPropagates(t *testing.T) {
	boom := fmt.Errorf("connection reset")
	db := &fakeDB{responses: []queryResponse{{err: boom}}}
	sess := newFakeEngine(db).Session()

	q, _ := SelectFor[Person, PersonRow]()
	_, err := sess.Execute(context.Background(), q.Stmt())
	assert.ErrorIs(t, err, boom)
}

func TestSessionInsertFillsGenerator(t *testing.T) {
	db := &fakeDB{affected: []int64{1}}
	sess := newFakeEngine(db).Session()

	acct := &Account{Owner: "ada", Balance: 100}
	res, err := sess.Insert(context.Background(), acct)
	require.NoError(t, err)

	n, ok := res.Affected()
	require.True(t, ok)
	assert.Equal(t, int64(1), n)

	// The generated ID is written back and bound as the first argument.
	assert.NotEmpty(t, acct.ID)
	require.Len(t, db.queries, 1)
	assert.Equal(t, `INSERT INTO "accounts" ("id", "owner", "balance") VALUES (?, ?, ?)`, db.queries[0].sql)
	assert.Equal(t, []any{acct.ID, "ada", int64(100)}, db.queries[0].args)
}

func TestSessionInsertKeepsExplicitID(t *testing.T) {
	db := &fakeDB{affected: []int64{1}}
	sess := newFakeEngine(db).Session()

	_, err := sess.Insert(context.Background(), &Account{ID: "fixed", Owner: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", db.queries[0].args[0])
}

// ============================================================================
// InitSchema
// ============================================================================

func TestInitSchema(t *testing.T) {
	db := &fakeDB{affected: []int64{0, 0}}
	eng := newFakeEngine(db)

	err := eng.InitSchema(context.Background(), Person{}, Account{})
	require.NoError(t, err)

	require.Len(t, db.queries, 2)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "people" ("id" TEXT PRIMARY KEY, "name" TEXT, "age" INTEGER)`,
		db.queries[0].sql)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "accounts" ("id" TEXT PRIMARY KEY, "owner" TEXT, "balance" INTEGER)`,
		db.queries[1].sql)
}

// ============================================================================
// AutoQuery
// ============================================================================

func TestAutoQuery(t *testing.T) {
	db := &fakeDB{responses: []queryResponse{{
		cols: []string{"id", "name"},
		rows: [][]any{{"p1", "ada"}},
	}}}
	sess := newFakeEngine(db).Session()

	people, err := AutoQuery[Person, PersonRow](context.Background(), sess, func(q *Query) *Query {
		return q.Where(ast.Eq("age", 36))
	})
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, PersonRow{ID: "p1", Name: "ada"}, people[0])

	require.Len(t, db.queries, 1)
	assert.Equal(t, `SELECT "id", "name" FROM "people" WHERE "age" = ?`, db.queries[0].sql)
	assert.Equal(t, []any{36}, db.queries[0].args)
}

func TestAutoQueryNilFilter(t *testing.T) {
	db := &fakeDB{responses: []queryResponse{{cols: []string{"id", "name"}}}}
	sess := newFakeEngine(db).Session()

	people, err := AutoQuery[Person, PersonRow](context.Background(), sess, nil)
	require.NoError(t, err)
	assert.Empty(t, people)
	assert.Equal(t, `SELECT "id", "name" FROM "people"`, db.queries[0].sql)
}

func TestAutoQueryOne(t *testing.T) {
	db := &fakeDB{responses: []queryResponse{
		{cols: []string{"id", "name"}, rows: [][]any{{"p1", "ada"}, {"p2", "bob"}}},
		{cols: []string{"id", "name"}},
	}}
	sess := newFakeEngine(db).Session()

	person, err := AutoQueryOne[Person, PersonRow](context.Background(), sess, nil)
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "p1", person.ID)

	person, err = AutoQueryOne[Person, PersonRow](context.Background(), sess, func(q *Query) *Query {
		return q.Where(ast.Eq("name", "nobody"))
	})
	require.NoError(t, err)
	assert.Nil(t, person)
}
