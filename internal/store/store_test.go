package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooja2309/portfolio/internal/contact"
)

func newSubmission() *contact.Submission {
	return &contact.Submission{
		ID:         uuid.NewString(),
		Name:       "Alice",
		Email:      "alice@example.com",
		Subject:    "Hello",
		Message:    "Let's talk.",
		SourceHash: "0123456789abcdef",
		CreatedAt:  time.Date(2025, 8, 2, 9, 30, 0, 0, time.UTC),
	}
}

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "contact.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_CreateSubmission(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()
	sub := newSubmission()

	require.NoError(t, s.CreateSubmission(ctx, sub))

	var name, email, subject, message, hash, created string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, email, subject, message, source_hash, created_at FROM contact_submissions WHERE id = ?`,
		sub.ID,
	).Scan(&name, &email, &subject, &message, &hash, &created)
	require.NoError(t, err)

	assert.Equal(t, sub.Name, name)
	assert.Equal(t, sub.Email, email)
	assert.Equal(t, sub.Subject, subject)
	assert.Equal(t, sub.Message, message)
	assert.Equal(t, sub.SourceHash, hash)
	assert.Equal(t, "2025-08-02T09:30:00Z", created)
}

func TestSQLite_DuplicateIDRejected(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()
	sub := newSubmission()

	require.NoError(t, s.CreateSubmission(ctx, sub))
	assert.Error(t, s.CreateSubmission(ctx, sub))
}

func TestSQLite_CountSubmissions(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	n, err := s.CountSubmissions(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.CreateSubmission(ctx, newSubmission()))
	require.NoError(t, s.CreateSubmission(ctx, newSubmission()))

	n, err = s.CountSubmissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSQLite_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contact.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.CreateSubmission(ctx, newSubmission()))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.CountSubmissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpen_DefaultsToSQLite(t *testing.T) {
	st, err := Open(context.Background(), Options{SQLitePath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	defer st.Close()

	_, ok := st.(*SQLite)
	assert.True(t, ok, "expected *SQLite, got %T", st)
}

func TestIsPostgresURL(t *testing.T) {
	assert.True(t, isPostgresURL("postgres://u:p@localhost:5432/db"))
	assert.True(t, isPostgresURL("postgresql://localhost/db"))
	assert.False(t, isPostgresURL(""))
	assert.False(t, isPostgresURL("file:portfolio.db"))
}

// TestPostgres_CreateSubmission runs only against a real database.
func TestPostgres_CreateSubmission(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	p, err := OpenPostgres(ctx, url)
	require.NoError(t, err)
	defer p.Close()

	before, err := p.CountSubmissions(ctx)
	require.NoError(t, err)

	require.NoError(t, p.CreateSubmission(ctx, newSubmission()))

	after, err := p.CountSubmissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}
