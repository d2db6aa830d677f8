package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pooja2309/portfolio/internal/contact"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	subject     TEXT NOT NULL,
	message     TEXT NOT NULL,
	source_hash TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
)`

// SQLite stores submissions in a local database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies
// the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening sqlite %s: %w", path, err)
	}
	// One writer at a time; also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: creating contact_submissions table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// CreateSubmission inserts s.
func (s *SQLite) CreateSubmission(ctx context.Context, sub *contact.Submission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, subject, message, source_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message, sub.SourceHash,
		sub.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store: inserting submission %s: %w", sub.ID, err)
	}
	return nil
}

// CountSubmissions returns the number of stored submissions.
func (s *SQLite) CountSubmissions(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: counting submissions: %w", err)
	}
	return n, nil
}

// Close releases the database connections.
func (s *SQLite) Close() error {
	return s.db.Close()
}
