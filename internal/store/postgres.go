package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pooja2309/portfolio/internal/contact"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	subject     TEXT NOT NULL,
	message     TEXT NOT NULL,
	source_hash TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
)`

// Postgres stores submissions in PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to connString, verifies the connection and applies
// the schema.
func OpenPostgres(ctx context.Context, connString string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("store: connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: pinging postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: creating contact_submissions table: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// CreateSubmission inserts s.
func (p *Postgres) CreateSubmission(ctx context.Context, sub *contact.Submission) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO contact_submissions (id, name, email, subject, message, source_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message, sub.SourceHash, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("store: inserting submission %s: %w", sub.ID, err)
	}
	return nil
}

// CountSubmissions returns the number of stored submissions.
func (p *Postgres) CountSubmissions(ctx context.Context) (int64, error) {
	var n int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: counting submissions: %w", err)
	}
	return n, nil
}

// Close releases the database connections.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
