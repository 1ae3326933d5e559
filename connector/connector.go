package connector

import (
	"context"
	"fmt"

	"github.com/Konsultn-Engineering/litesql/database"
	"github.com/Konsultn-Engineering/litesql/dialect"
)

// Connection is an established database handle plus the dialect it speaks.
type Connection interface {
	Database() database.Database
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Close() error
}

// Connect opens a connection for the named driver.
func Connect(ctx context.Context, driver string, cfg Config) (Connection, error) {
	switch driver {
	case "postgres", "pgx":
		return newPostgresConnector(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}
}
