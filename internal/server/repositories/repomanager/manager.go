// Package repomanager owns the connection to the credential store and vends
// repositories bound to it. The backend is picked from the DSN scheme.
package repomanager

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	// RunMigrations prepares the schema: tables for PostgreSQL, unique
	// indexes for MongoDB.
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// NewRepositoryManager opens the store named by dsn. Supported schemes are
// mongodb, mongodb+srv, postgres, postgresql and memory.
func NewRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database dsn: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return NewMongoRepositoryManager(ctx, dsn)
	case "postgres", "postgresql":
		return NewPostgresRepositoryManager(dsn)
	case "memory":
		return NewInMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
