// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the save-history database, opening it on demand.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
