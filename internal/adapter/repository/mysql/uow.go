package mysql

import (
	"context"
	"fmt"
	"strings"

	"loanly-backend/internal/domain/application"
	"loanly-backend/internal/domain/uow"

	"gorm.io/gorm"
)

const maxLockRetries = 3

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Plafonds:      &PlafondRepository{db: tx},
		Applications:  &ApplicationRepository{db: tx},
		Disbursements: &DisbursementRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.retryOnLockConflict(func() error {
		return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(u.repos(tx))
		})
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
	return u.retryOnLockConflict(func() error {
		return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			r := u.repos(tx)
			// lock the application row up-front to prevent races
			a, err := r.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
			if err != nil {
				return err
			}
			return fn(r, a)
		})
	})
}

// retryOnLockConflict re-runs the whole transaction a bounded number of times
// on deadlock or lock-wait timeout, then surfaces uow.ErrConcurrency.
// Business errors pass through untouched on the first occurrence.
func (u *GormUoW) retryOnLockConflict(run func() error) error {
	var err error
	for attempt := 0; attempt < maxLockRetries; attempt++ {
		err = run()
		if err == nil || !isLockConflict(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", uow.ErrConcurrency, err)
}

// MySQL 1213 (deadlock), 1205 (lock wait timeout); sqlite busy in tests
func isLockConflict(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Deadlock found") ||
		strings.Contains(msg, "Lock wait timeout") ||
		strings.Contains(msg, "database is locked")
}

var _ uow.UnitOfWork = (*GormUoW)(nil)
