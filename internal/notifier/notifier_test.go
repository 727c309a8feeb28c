package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"loanly-backend/internal/domain/notification"
	"loanly-backend/internal/notifier"
	"loanly-backend/internal/testutil/notificationmock"
)

func TestStoreFire_PersistsAsync(t *testing.T) {
	done := make(chan *notification.Notification, 1)
	repo := &notificationmock.Repo{
		CreateFn: func(ctx context.Context, n *notification.Notification) error {
			done <- n
			return nil
		},
	}
	s := notifier.NewStore(repo, zap.NewNop().Sugar())

	s.Fire("cust-1", "Credit Limit Approved!", "your limit is ready", notification.TypeLoanApproved, "ref-1")

	select {
	case n := <-done:
		if n.UserID != "cust-1" || n.Type != notification.TypeLoanApproved || n.ReferenceID != "ref-1" {
			t.Fatalf("persisted = %+v", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification never reached the repository")
	}
}

// A broken store logs and drops; Fire itself never reports the failure.
func TestStoreFire_SwallowsRepoError(t *testing.T) {
	called := make(chan struct{}, 1)
	repo := &notificationmock.Repo{
		CreateFn: func(ctx context.Context, n *notification.Notification) error {
			called <- struct{}{}
			return errors.New("store down")
		},
	}
	s := notifier.NewStore(repo, zap.NewNop().Sugar())

	s.Fire("cust-1", "t", "m", notification.TypeLoanSubmitted, "")

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("repository never called")
	}
}

func TestNopFire(t *testing.T) {
	var n notifier.Notifier = notifier.Nop{}
	n.Fire("cust-1", "t", "m", notification.TypeLoanSubmitted, "")
}
