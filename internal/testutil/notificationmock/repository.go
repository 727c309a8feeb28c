package notificationmock

import (
	"context"
	"sync"

	domain "loanly-backend/internal/domain/notification"
	"loanly-backend/internal/notifier"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, n *domain.Notification) error
	ListByUserFn       func(ctx context.Context, userID string) ([]domain.Notification, error)
	ListUnreadByUserFn func(ctx context.Context, userID string) ([]domain.Notification, error)
	CountUnreadFn      func(ctx context.Context, userID string) (int64, error)
	MarkReadFn         func(ctx context.Context, userID string, id uint64) error
	MarkAllReadFn      func(ctx context.Context, userID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}
func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *Repo) ListUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.ListUnreadByUserFn != nil {
		return m.ListUnreadByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *Repo) CountUnread(ctx context.Context, userID string) (int64, error) {
	if m.CountUnreadFn != nil {
		return m.CountUnreadFn(ctx, userID)
	}
	return 0, nil
}
func (m *Repo) MarkRead(ctx context.Context, userID string, id uint64) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, userID, id)
	}
	return nil
}
func (m *Repo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, userID)
	}
	return 0, nil
}

// FiredEvent records one Fire call on the Recorder.
type FiredEvent struct {
	UserID      string
	Title       string
	Message     string
	Type        domain.Type
	ReferenceID string
}

// Recorder is a notifier.Notifier that remembers every event, for asserting
// which notifications a usecase fired (Fire is synchronous here).
type Recorder struct {
	mu     sync.Mutex
	Events []FiredEvent
}

var _ notifier.Notifier = (*Recorder)(nil)

func (r *Recorder) Fire(userID, title, message string, typ domain.Type, referenceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, FiredEvent{
		UserID:      userID,
		Title:       title,
		Message:     message,
		Type:        typ,
		ReferenceID: referenceID,
	})
}

func (r *Recorder) Fired() []FiredEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FiredEvent, len(r.Events))
	copy(out, r.Events)
	return out
}
