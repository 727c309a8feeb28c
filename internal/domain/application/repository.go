package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error

	// By public id, plafond preloaded
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// Same, with a row lock; must run inside a transaction
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	// By numeric PK, for rows reached through a disbursement FK
	GetByID(ctx context.Context, id uint64) (*Application, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)

	// Eligibility queries
	HasPendingByCustomer(ctx context.Context, customerID string) (bool, error)
	// First APPROVED application with available limit > 0, plafond preloaded;
	// ErrNotFound when none exists
	GetActiveWithBalanceByCustomer(ctx context.Context, customerID string) (*Application, error)
	// Highest plafond max_amount over the customer's ever-approved
	// applications; 0 when the customer was never approved
	HighestApprovedMaxAmount(ctx context.Context, customerID string) (float64, error)
	ExistsActiveByCustomerAndPlafond(ctx context.Context, customerID string, plafondID uint64) (bool, error)

	// Listings
	ListByCustomer(ctx context.Context, customerID string) ([]Application, error)
	ListApprovedByCustomer(ctx context.Context, customerID string) ([]Application, error)
	ListByStatus(ctx context.Context, status Status) ([]Application, error)

	// Audit trail; AppendHistory must run in the same tx as the transition
	AppendHistory(ctx context.Context, h *ApplicationHistory) error
	ListHistory(ctx context.Context, applicationID uint64) ([]ApplicationHistory, error)
}
