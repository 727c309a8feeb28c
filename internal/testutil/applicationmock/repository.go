package applicationmock

import (
	"context"

	domain "loanly-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                           func(ctx context.Context, a *domain.Application) error
	SaveFn                             func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn               func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByApplicationIDForUpdateFn      func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByIDFn                          func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByIDForUpdateFn                 func(ctx context.Context, id uint64) (*domain.Application, error)
	HasPendingByCustomerFn             func(ctx context.Context, customerID string) (bool, error)
	GetActiveWithBalanceByCustomerFn   func(ctx context.Context, customerID string) (*domain.Application, error)
	HighestApprovedMaxAmountFn         func(ctx context.Context, customerID string) (float64, error)
	ExistsActiveByCustomerAndPlafondFn func(ctx context.Context, customerID string, plafondID uint64) (bool, error)
	ListByCustomerFn                   func(ctx context.Context, customerID string) ([]domain.Application, error)
	ListApprovedByCustomerFn           func(ctx context.Context, customerID string) ([]domain.Application, error)
	ListByStatusFn                     func(ctx context.Context, status domain.Status) ([]domain.Application, error)
	AppendHistoryFn                    func(ctx context.Context, h *domain.ApplicationHistory) error
	ListHistoryFn                      func(ctx context.Context, applicationID uint64) ([]domain.ApplicationHistory, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) HasPendingByCustomer(ctx context.Context, customerID string) (bool, error) {
	if m.HasPendingByCustomerFn != nil {
		return m.HasPendingByCustomerFn(ctx, customerID)
	}
	return false, nil
}
func (m *Repo) GetActiveWithBalanceByCustomer(ctx context.Context, customerID string) (*domain.Application, error) {
	if m.GetActiveWithBalanceByCustomerFn != nil {
		return m.GetActiveWithBalanceByCustomerFn(ctx, customerID)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) HighestApprovedMaxAmount(ctx context.Context, customerID string) (float64, error) {
	if m.HighestApprovedMaxAmountFn != nil {
		return m.HighestApprovedMaxAmountFn(ctx, customerID)
	}
	return 0, nil
}
func (m *Repo) ExistsActiveByCustomerAndPlafond(ctx context.Context, customerID string, plafondID uint64) (bool, error) {
	if m.ExistsActiveByCustomerAndPlafondFn != nil {
		return m.ExistsActiveByCustomerAndPlafondFn(ctx, customerID, plafondID)
	}
	return false, nil
}
func (m *Repo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Application, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
func (m *Repo) ListApprovedByCustomer(ctx context.Context, customerID string) ([]domain.Application, error) {
	if m.ListApprovedByCustomerFn != nil {
		return m.ListApprovedByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Application, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}
func (m *Repo) AppendHistory(ctx context.Context, h *domain.ApplicationHistory) error {
	if m.AppendHistoryFn != nil {
		return m.AppendHistoryFn(ctx, h)
	}
	return nil
}
func (m *Repo) ListHistory(ctx context.Context, applicationID uint64) ([]domain.ApplicationHistory, error) {
	if m.ListHistoryFn != nil {
		return m.ListHistoryFn(ctx, applicationID)
	}
	return nil, nil
}
