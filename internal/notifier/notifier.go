package notifier

import (
	"context"
	"time"

	"go.uber.org/zap"

	"loanly-backend/internal/domain/notification"
)

// Notifier is the best-effort notification sink. Fire must never block the
// caller's transaction and its failure must never surface to the caller.
type Notifier interface {
	Fire(userID, title, message string, typ notification.Type, referenceID string)
}

// Store persists notifications asynchronously through the notification
// repository. Each Fire runs in its own goroutine with its own deadline so a
// slow or broken store cannot roll back a committed state transition.
type Store struct {
	repo    notification.Repository
	log     *zap.SugaredLogger
	timeout time.Duration
}

func NewStore(repo notification.Repository, log *zap.SugaredLogger) *Store {
	return &Store{repo: repo, log: log, timeout: 5 * time.Second}
}

func (s *Store) Fire(userID, title, message string, typ notification.Type, referenceID string) {
	n := &notification.Notification{
		UserID:      userID,
		Title:       title,
		Message:     message,
		Type:        typ,
		ReferenceID: referenceID,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.repo.Create(ctx, n); err != nil {
			s.log.Warnw("notification dropped", "user_id", userID, "type", typ, "err", err)
		}
	}()
}

// Nop discards everything; handy default for tests.
type Nop struct{}

func (Nop) Fire(string, string, string, notification.Type, string) {}
