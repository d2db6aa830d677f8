// Package store persists contact submissions. Records are insert-only.
package store

import (
	"context"
	"strings"

	"github.com/pooja2309/portfolio/internal/contact"
)

// Store is the persistence layer behind the intake endpoint.
type Store interface {
	CreateSubmission(ctx context.Context, s *contact.Submission) error
	CountSubmissions(ctx context.Context) (int64, error)
	Close() error
}

var (
	_ Store = (*SQLite)(nil)
	_ Store = (*Postgres)(nil)
)

// Options selects and configures a backend.
type Options struct {
	// URL is a PostgreSQL connection string. When empty, SQLite is used.
	URL string
	// SQLitePath is the database file used when URL is empty.
	SQLitePath string
}

// Open returns the backend selected by opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	if isPostgresURL(opts.URL) {
		return OpenPostgres(ctx, opts.URL)
	}
	path := opts.SQLitePath
	if path == "" {
		path = "portfolio.db"
	}
	return OpenSQLite(ctx, path)
}

func isPostgresURL(u string) bool {
	return strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://")
}
