package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	appDomain "loanly-backend/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// forUpdate adds a row lock on dialects that support it. The sqlite driver
// used in tests serializes writers on its own and rejects FOR UPDATE syntax.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// MySQL 1062; sqlite in tests
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// syncActiveKey keeps the active_key column in step with the aggregate state
// so the unique index enforces one active application per (customer, plafond).
func syncActiveKey(a *appDomain.Application) {
	if a.Active() {
		key := fmt.Sprintf("%s:%d", a.CustomerID, a.PlafondID)
		a.ActiveKey = &key
		return
	}
	a.ActiveKey = nil
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	syncActiveKey(a)
	err := r.db.WithContext(ctx).Omit("Plafond").Create(a).Error
	if err != nil && isDuplicateKey(err) {
		return appDomain.ErrDuplicateActive
	}
	return err
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	syncActiveKey(a)
	return r.db.WithContext(ctx).Omit("Plafond").Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	err := r.db.WithContext(ctx).
		Preload("Plafond").
		Where("application_id = ?", applicationID).
		First(&out).Error
	if err != nil {
		return nil, mapNotFound(err, appDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	err := forUpdate(r.db.WithContext(ctx)).
		Preload("Plafond").
		Where("application_id = ?", applicationID).
		First(&out).Error
	if err != nil {
		return nil, mapNotFound(err, appDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	err := r.db.WithContext(ctx).
		Preload("Plafond").
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, mapNotFound(err, appDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	err := forUpdate(r.db.WithContext(ctx)).
		Preload("Plafond").
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, mapNotFound(err, appDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ApplicationRepository) HasPendingByCustomer(ctx context.Context, customerID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("customer_id = ? AND status IN ?", customerID,
			[]appDomain.Status{appDomain.StatusPendingReview, appDomain.StatusWaitingApproval}).
		Count(&n).Error
	return n > 0, err
}

func (r *ApplicationRepository) GetActiveWithBalanceByCustomer(ctx context.Context, customerID string) (*appDomain.Application, error) {
	var out appDomain.Application
	err := r.db.WithContext(ctx).
		Preload("Plafond").
		Where("customer_id = ? AND status = ? AND used_amount < approved_limit", customerID, appDomain.StatusApproved).
		Order("approved_at DESC, id DESC").
		First(&out).Error
	if err != nil {
		return nil, mapNotFound(err, appDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ApplicationRepository) HighestApprovedMaxAmount(ctx context.Context, customerID string) (float64, error) {
	var max sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Joins("JOIN plafonds ON plafonds.id = applications.plafond_id").
		Where("applications.customer_id = ? AND applications.status = ?", customerID, appDomain.StatusApproved).
		Select("MAX(plafonds.max_amount)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return max.Float64, nil
}

func (r *ApplicationRepository) ExistsActiveByCustomerAndPlafond(ctx context.Context, customerID string, plafondID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("customer_id = ? AND plafond_id = ?", customerID, plafondID).
		Where("status IN ? OR (status = ? AND used_amount < approved_limit)",
			[]appDomain.Status{appDomain.StatusPendingReview, appDomain.StatusWaitingApproval},
			appDomain.StatusApproved).
		Count(&n).Error
	return n > 0, err
}

func (r *ApplicationRepository) ListByCustomer(ctx context.Context, customerID string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Preload("Plafond").
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) ListApprovedByCustomer(ctx context.Context, customerID string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Preload("Plafond").
		Where("customer_id = ? AND status = ?", customerID, appDomain.StatusApproved).
		Order("approved_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, status appDomain.Status) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Preload("Plafond").
		Where("status = ?", status).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) AppendHistory(ctx context.Context, h *appDomain.ApplicationHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *ApplicationRepository) ListHistory(ctx context.Context, applicationID uint64) ([]appDomain.ApplicationHistory, error) {
	var out []appDomain.ApplicationHistory
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
