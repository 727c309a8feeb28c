package plafondmock

import (
	"context"

	domain "loanly-backend/internal/domain/plafond"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	FindActiveFn         func(ctx context.Context) ([]domain.Plafond, error)
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Plafond, error)
	GetActiveTenorRateFn func(ctx context.Context, plafondID uint64, tenorMonths int) (*domain.TenorRate, error)
	ListTenorRatesFn     func(ctx context.Context, plafondID uint64) ([]domain.TenorRate, error)
}

func (m *Repo) FindActive(ctx context.Context) ([]domain.Plafond, error) {
	if m.FindActiveFn != nil {
		return m.FindActiveFn(ctx)
	}
	return nil, nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Plafond, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) GetActiveTenorRate(ctx context.Context, plafondID uint64, tenorMonths int) (*domain.TenorRate, error) {
	if m.GetActiveTenorRateFn != nil {
		return m.GetActiveTenorRateFn(ctx, plafondID, tenorMonths)
	}
	return nil, domain.ErrTenorNotOffered
}
func (m *Repo) ListTenorRates(ctx context.Context, plafondID uint64) ([]domain.TenorRate, error) {
	if m.ListTenorRatesFn != nil {
		return m.ListTenorRatesFn(ctx, plafondID)
	}
	return nil, nil
}
