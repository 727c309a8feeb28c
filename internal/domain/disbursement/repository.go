package disbursement

import "context"

type Repository interface {
	Create(ctx context.Context, d *Disbursement) error
	Save(ctx context.Context, d *Disbursement) error

	GetByDisbursementID(ctx context.Context, disbursementID string) (*Disbursement, error)
	// Same, with a row lock; must run inside a transaction
	GetByDisbursementIDForUpdate(ctx context.Context, disbursementID string) (*Disbursement, error)

	// All draws against the customer's applications, newest first
	ListByCustomer(ctx context.Context, customerID string) ([]Disbursement, error)
	ListPending(ctx context.Context) ([]Disbursement, error)
	ListAll(ctx context.Context) ([]Disbursement, error)
}
