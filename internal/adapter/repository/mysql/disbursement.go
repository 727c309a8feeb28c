package mysql

import (
	"context"

	disbDomain "loanly-backend/internal/domain/disbursement"

	"gorm.io/gorm"
)

type DisbursementRepository struct{ db *gorm.DB }

func NewDisbursementRepository(db *gorm.DB) *DisbursementRepository {
	return &DisbursementRepository{db: db}
}

func (r *DisbursementRepository) Create(ctx context.Context, d *disbDomain.Disbursement) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DisbursementRepository) Save(ctx context.Context, d *disbDomain.Disbursement) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DisbursementRepository) GetByDisbursementID(ctx context.Context, disbursementID string) (*disbDomain.Disbursement, error) {
	var out disbDomain.Disbursement
	err := r.db.WithContext(ctx).
		Where("disbursement_id = ?", disbursementID).
		First(&out).Error
	if err != nil {
		return nil, mapNotFound(err, disbDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *DisbursementRepository) GetByDisbursementIDForUpdate(ctx context.Context, disbursementID string) (*disbDomain.Disbursement, error) {
	var out disbDomain.Disbursement
	err := forUpdate(r.db.WithContext(ctx)).
		Where("disbursement_id = ?", disbursementID).
		First(&out).Error
	if err != nil {
		return nil, mapNotFound(err, disbDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *DisbursementRepository) ListByCustomer(ctx context.Context, customerID string) ([]disbDomain.Disbursement, error) {
	var out []disbDomain.Disbursement
	err := r.db.WithContext(ctx).
		Joins("JOIN applications ON applications.id = disbursements.application_id").
		Where("applications.customer_id = ?", customerID).
		Order("disbursements.created_at DESC, disbursements.id DESC").
		Find(&out).Error
	return out, err
}

func (r *DisbursementRepository) ListPending(ctx context.Context) ([]disbDomain.Disbursement, error) {
	var out []disbDomain.Disbursement
	err := r.db.WithContext(ctx).
		Where("status = ?", disbDomain.StatusPending).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *DisbursementRepository) ListAll(ctx context.Context) ([]disbDomain.Disbursement, error) {
	var out []disbDomain.Disbursement
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
