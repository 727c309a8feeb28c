package plafond

import "context"

type Repository interface {
	// Active tiers, ascending by max_amount
	FindActive(ctx context.Context) ([]Plafond, error)
	// By numeric id, excluding soft-deleted tiers
	GetByID(ctx context.Context, id uint64) (*Plafond, error)

	// Active rate for a (tier, tenor) pair; ErrTenorNotOffered if absent
	GetActiveTenorRate(ctx context.Context, plafondID uint64, tenorMonths int) (*TenorRate, error)
	// All active rates for a tier, ascending by tenor
	ListTenorRates(ctx context.Context, plafondID uint64) ([]TenorRate, error)
}
