package disbursementmock

import (
	"context"

	domain "loanly-backend/internal/domain/disbursement"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                       func(ctx context.Context, d *domain.Disbursement) error
	SaveFn                         func(ctx context.Context, d *domain.Disbursement) error
	GetByDisbursementIDFn          func(ctx context.Context, disbursementID string) (*domain.Disbursement, error)
	GetByDisbursementIDForUpdateFn func(ctx context.Context, disbursementID string) (*domain.Disbursement, error)
	ListByCustomerFn               func(ctx context.Context, customerID string) ([]domain.Disbursement, error)
	ListPendingFn                  func(ctx context.Context) ([]domain.Disbursement, error)
	ListAllFn                      func(ctx context.Context) ([]domain.Disbursement, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Disbursement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, d *domain.Disbursement) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}
func (m *Repo) GetByDisbursementID(ctx context.Context, disbursementID string) (*domain.Disbursement, error) {
	if m.GetByDisbursementIDFn != nil {
		return m.GetByDisbursementIDFn(ctx, disbursementID)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) GetByDisbursementIDForUpdate(ctx context.Context, disbursementID string) (*domain.Disbursement, error) {
	if m.GetByDisbursementIDForUpdateFn != nil {
		return m.GetByDisbursementIDForUpdateFn(ctx, disbursementID)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Disbursement, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
func (m *Repo) ListPending(ctx context.Context) ([]domain.Disbursement, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListAll(ctx context.Context) ([]domain.Disbursement, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
