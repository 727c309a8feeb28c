package uow

import (
	"context"
	"errors"

	"loanly-backend/internal/domain/application"
	"loanly-backend/internal/domain/disbursement"
	"loanly-backend/internal/domain/plafond"
)

// ErrConcurrency surfaces after bounded retries on storage-level lock or
// deadlock contention. Callers may safely re-submit.
var ErrConcurrency = errors.New("concurrent modification, please retry")

type Repos struct {
	Plafonds      plafond.Repository
	Applications  application.Repository
	Disbursements disbursement.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
