package mysql

import (
	"context"
	"errors"
	"testing"

	notifDomain "loanly-backend/internal/domain/notification"
	"loanly-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openNotifTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&notifDomain.Notification{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func fire(t *testing.T, repo *NotificationRepository, userID, title string) *notifDomain.Notification {
	t.Helper()
	n := &notifDomain.Notification{
		UserID:      userID,
		Title:       title,
		Message:     "msg",
		Type:        notifDomain.TypeLoanSubmitted,
		ReferenceID: id.NewID32(),
	}
	if err := repo.Create(context.Background(), n); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return n
}

func TestNotification_ListAndCount(t *testing.T) {
	db := openNotifTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	user := id.NewID32()
	fire(t, repo, user, "first")
	fire(t, repo, user, "second")
	fire(t, repo, id.NewID32(), "someone else's")

	out, err := repo.ListByUser(ctx, user)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Title != "second" {
		t.Fatal("newest first")
	}

	n, err := repo.CountUnread(ctx, user)
	if err != nil || n != 2 {
		t.Fatalf("CountUnread = %d err=%v", n, err)
	}
}

func TestNotification_MarkRead_ScopedToOwner(t *testing.T) {
	db := openNotifTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	owner := id.NewID32()
	intruder := id.NewID32()
	n := fire(t, repo, owner, "hello")

	if err := repo.MarkRead(ctx, intruder, n.ID); !errors.Is(err, notifDomain.ErrNotFound) {
		t.Fatalf("foreign MarkRead: expected ErrNotFound, got %v", err)
	}
	if err := repo.MarkRead(ctx, owner, n.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	unread, err := repo.ListUnreadByUser(ctx, owner)
	if err != nil || len(unread) != 0 {
		t.Fatalf("unread = %+v err=%v", unread, err)
	}
	all, _ := repo.ListByUser(ctx, owner)
	if len(all) != 1 || !all[0].IsRead || all[0].ReadAt == nil {
		t.Fatalf("read flags not persisted: %+v", all)
	}

	if err := repo.MarkRead(ctx, owner, 9999); !errors.Is(err, notifDomain.ErrNotFound) {
		t.Fatalf("missing id: expected ErrNotFound, got %v", err)
	}
}

func TestNotification_MarkAllRead(t *testing.T) {
	db := openNotifTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	user := id.NewID32()
	fire(t, repo, user, "a")
	fire(t, repo, user, "b")
	fire(t, repo, user, "c")

	flipped, err := repo.MarkAllRead(ctx, user)
	if err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if flipped != 3 {
		t.Fatalf("flipped = %d, want 3", flipped)
	}

	// idempotent: nothing left to flip
	flipped, err = repo.MarkAllRead(ctx, user)
	if err != nil || flipped != 0 {
		t.Fatalf("second MarkAllRead = %d err=%v", flipped, err)
	}
}
