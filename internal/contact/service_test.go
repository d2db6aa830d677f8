package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	mu    sync.Mutex
	saved []*Submission
	err   error
}

func (r *memoryRepo) CreateSubmission(ctx context.Context, s *Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	cp := *s
	r.saved = append(r.saved, &cp)
	return nil
}

type recordingNotifier struct {
	calls int
	err   error
}

func (n *recordingNotifier) NotifySubmission(ctx context.Context, s *Submission) error {
	n.calls++
	return n.err
}

func TestService_Create_AssignsIDAndTimestamp(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nil, nil, "salt")
	fixed := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	svc.newID = func() string { return "id-1" }

	sub, err := svc.Create(context.Background(), validInput(), "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, "id-1", sub.ID)
	assert.Equal(t, fixed, sub.CreatedAt)
	assert.Equal(t, "Alice Example", sub.Name)
	assert.Equal(t, HashIP("203.0.113.7", "salt"), sub.SourceHash)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, *sub, *repo.saved[0])
}

func TestService_Create_StoresTrimmedValues(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nil, nil, "")

	in := validInput()
	in.Subject = "   Hello   "
	sub, err := svc.Create(context.Background(), in, "")
	require.NoError(t, err)
	assert.Equal(t, "Hello", sub.Subject)
	assert.Empty(t, sub.SourceHash)
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nil, nil, "")

	in := validInput()
	in.Email = "not-an-email"
	_, err := svc.Create(context.Background(), in, "")

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, FieldEmail)
	assert.Empty(t, repo.saved, "invalid input must not be persisted")
}

func TestService_Create_RepositoryFailure(t *testing.T) {
	repo := &memoryRepo{err: errors.New("disk full")}
	svc := NewService(repo, nil, nil, "")

	_, err := svc.Create(context.Background(), validInput(), "")
	require.Error(t, err)

	var fe FieldErrors
	assert.False(t, errors.As(err, &fe), "storage failures are not validation errors")
	assert.ErrorIs(t, err, repo.err)
}

func TestService_Create_NotifierFailureDoesNotFailIntake(t *testing.T) {
	repo := &memoryRepo{}
	n := &recordingNotifier{err: errors.New("smtp down")}
	svc := NewService(repo, n, nil, "")

	sub, err := svc.Create(context.Background(), validInput(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, 1, n.calls)
	assert.Len(t, repo.saved, 1)
}

func TestService_Create_IdenticalInputCreatesIndependentRecords(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nil, nil, "")

	first, err := svc.Create(context.Background(), validInput(), "198.51.100.1")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), validInput(), "198.51.100.1")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.saved, 2)
}

func TestHashIP(t *testing.T) {
	a := HashIP("192.0.2.1", "s1")
	assert.Len(t, a, 16)
	assert.Equal(t, a, HashIP("192.0.2.1", "s1"))
	assert.NotEqual(t, a, HashIP("192.0.2.1", "s2"))
	assert.NotEqual(t, a, HashIP("192.0.2.2", "s1"))
	assert.Empty(t, HashIP("", "s1"))
}
