package engine

import (
	"context"
	"reflect"

	"github.com/Konsultn-Engineering/litesql/ast"
	"github.com/Konsultn-Engineering/litesql/cache"
	"github.com/Konsultn-Engineering/litesql/connector"
	"github.com/Konsultn-Engineering/litesql/database"
	"github.com/Konsultn-Engineering/litesql/dialect"
	"github.com/Konsultn-Engineering/litesql/schema"
	"github.com/Konsultn-Engineering/litesql/visitor"
)

// Engine bundles a database handle with its dialect and the shared rendered
// statement cache. Sessions created from one engine share that cache.
type Engine struct {
	db      database.Database
	dialect dialect.Dialect
	qcache  cache.QueryCache
	conn    connector.Connection
}

func New(db database.Database, d dialect.Dialect) *Engine {
	return &Engine{
		db:      db,
		dialect: d,
		qcache:  cache.NewQueryCache(0),
	}
}

// Connect bootstraps an engine through the connector for the named driver.
func Connect(ctx context.Context, driver string, cfg connector.Config) (*Engine, error) {
	conn, err := connector.Connect(ctx, driver, cfg)
	if err != nil {
		return nil, err
	}
	e := New(conn.Database(), conn.Dialect())
	e.conn = conn
	return e, nil
}

func (e *Engine) Session() *Session {
	return NewSession(e.db, visitor.NewSQLVisitor(e.dialect, e.qcache))
}

// InitSchema creates a table for each model that does not exist yet.
func (e *Engine) InitSchema(ctx context.Context, models ...any) error {
	sess := e.Session()
	for _, model := range models {
		meta, err := schema.Introspect(reflect.TypeOf(model))
		if err != nil {
			return err
		}

		stmt := &ast.CreateTableStmt{
			Table:       ast.NewTable(meta.TableName),
			IfNotExists: true,
		}
		for _, f := range meta.Fields {
			stmt.Columns = append(stmt.Columns, &ast.ColumnDef{
				Name:       f.DBName,
				TypeName:   e.dialect.ColumnType(f.Type),
				PrimaryKey: f.DBName == "id",
			})
		}

		if _, err := sess.Execute(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) Close() error {
	if e.conn != nil {
		return e.conn.Close()
	}
	return e.db.Close()
}
