package mysql

import (
	"context"
	"errors"

	plafondDomain "loanly-backend/internal/domain/plafond"

	"gorm.io/gorm"
)

type PlafondRepository struct{ db *gorm.DB }

func NewPlafondRepository(db *gorm.DB) *PlafondRepository { return &PlafondRepository{db: db} }

func (r *PlafondRepository) FindActive(ctx context.Context) ([]plafondDomain.Plafond, error) {
	var out []plafondDomain.Plafond
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("max_amount ASC").
		Find(&out).Error
	return out, err
}

func (r *PlafondRepository) GetByID(ctx context.Context, id uint64) (*plafondDomain.Plafond, error) {
	var out plafondDomain.Plafond
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, plafondDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PlafondRepository) GetActiveTenorRate(ctx context.Context, plafondID uint64, tenorMonths int) (*plafondDomain.TenorRate, error) {
	var out plafondDomain.TenorRate
	err := r.db.WithContext(ctx).
		Where("plafond_id = ? AND tenor_months = ? AND is_active = ?", plafondID, tenorMonths, true).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, plafondDomain.ErrTenorNotOffered
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PlafondRepository) ListTenorRates(ctx context.Context, plafondID uint64) ([]plafondDomain.TenorRate, error) {
	var out []plafondDomain.TenorRate
	err := r.db.WithContext(ctx).
		Where("plafond_id = ? AND is_active = ?", plafondID, true).
		Order("tenor_months ASC").
		Find(&out).Error
	return out, err
}
