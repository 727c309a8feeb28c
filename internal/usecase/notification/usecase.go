package notification

import (
	"context"

	domain "loanly-backend/internal/domain/notification"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return u.repo.ListByUser(ctx, userID)
}

func (u *Usecase) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	return u.repo.ListUnreadByUser(ctx, userID)
}

func (u *Usecase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return u.repo.CountUnread(ctx, userID)
}

func (u *Usecase) MarkRead(ctx context.Context, userID string, id uint64) error {
	return u.repo.MarkRead(ctx, userID, id)
}

func (u *Usecase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return u.repo.MarkAllRead(ctx, userID)
}
