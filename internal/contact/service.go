package contact

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository persists submissions. Implementations must treat records as
// insert-only.
type Repository interface {
	CreateSubmission(ctx context.Context, s *Submission) error
}

// Notifier tells the site owner about a new submission.
type Notifier interface {
	NotifySubmission(ctx context.Context, s *Submission) error
}

// Service is the intake side of the contact form.
type Service struct {
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
	salt     string

	now   func() time.Time
	newID func() string
}

// NewService creates a Service. notifier may be nil to disable owner
// notifications.
func NewService(repo Repository, notifier Notifier, logger *zap.Logger, salt string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		salt:     salt,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Create validates in, assigns an identifier and timestamp, and persists a
// new submission. Validation failures are returned as FieldErrors. Every
// successful call creates a new record, even for identical input.
func (s *Service) Create(ctx context.Context, in Input, clientIP string) (*Submission, error) {
	valid, err := Validate(in)
	if err != nil {
		return nil, err
	}

	sub := &Submission{
		ID:         s.newID(),
		Name:       valid.Name,
		Email:      valid.Email,
		Subject:    valid.Subject,
		Message:    valid.Message,
		SourceHash: HashIP(clientIP, s.salt),
		CreatedAt:  s.now(),
	}

	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("contact: saving submission: %w", err)
	}

	s.logger.Info("contact submission received",
		zap.String("id", sub.ID),
		zap.String("source", sub.SourceHash),
	)

	if s.notifier != nil {
		if err := s.notifier.NotifySubmission(ctx, sub); err != nil {
			s.logger.Warn("could not send contact notification",
				zap.String("id", sub.ID),
				zap.Error(err),
			)
		}
	}

	return sub, nil
}

// HashIP returns a salted, truncated SHA-256 of ip. Identical inputs hash
// identically so repeat senders can be spotted without storing addresses.
func HashIP(ip, salt string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}
