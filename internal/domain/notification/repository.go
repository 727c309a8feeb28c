package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error

	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)

	// MarkRead is scoped to the owning user; ErrNotFound when id does not
	// exist or belongs to someone else
	MarkRead(ctx context.Context, userID string, id uint64) error
	// MarkAllRead returns the number of rows flipped
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
