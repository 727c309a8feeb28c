package disbursement

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainApp "loanly-backend/internal/domain/application"
	domainDisb "loanly-backend/internal/domain/disbursement"
	"loanly-backend/internal/domain/notification"
	"loanly-backend/internal/domain/uow"
	"loanly-backend/internal/notifier"
	"loanly-backend/pkg/id"
	"loanly-backend/pkg/money"
)

var ErrValidation = errors.New("invalid input")

type Usecase struct {
	apps  domainApp.Repository
	disbs domainDisb.Repository
	uow   uow.UnitOfWork
	notif notifier.Notifier
}

func NewUsecase(apps domainApp.Repository, disbs domainDisb.Repository, tx uow.UnitOfWork, n notifier.Notifier) *Usecase {
	return &Usecase{apps: apps, disbs: disbs, uow: tx, notif: n}
}

// Request validates a draw-down, computes flat monthly interest and reserves
// limit capacity. The availability check and the used_amount write run under
// the application row lock so concurrent requests cannot overdraw.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*DisbursementDTO, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !domainDisb.IsValidTenor(in.TenorMonths) {
		return nil, fmt.Errorf("%w: tenor must be one of %v", ErrValidation, domainDisb.ValidTenors)
	}

	var dto *DisbursementDTO
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.Application) error {
		if a.CustomerID != in.CustomerID {
			return domainApp.ErrNotOwned
		}
		if a.Status != domainApp.StatusApproved {
			return fmt.Errorf("%w: credit line is not approved", domainApp.ErrInvalidState)
		}
		if a.AvailableLimit() < in.Amount {
			return fmt.Errorf("%w: available %.2f", domainApp.ErrInsufficientLimit, a.AvailableLimit())
		}

		rate, err := r.Plafonds.GetActiveTenorRate(ctx, a.PlafondID, in.TenorMonths)
		if err != nil {
			return err
		}

		interest := money.Interest(in.Amount, rate.InterestRate, in.TenorMonths)
		total := money.Total(in.Amount, rate.InterestRate, in.TenorMonths)

		d := &domainDisb.Disbursement{
			DisbursementID: id.NewID32(),
			ApplicationID:  a.ID,
			Amount:         in.Amount,
			InterestRate:   rate.InterestRate,
			TenorMonths:    in.TenorMonths,
			InterestAmount: interest,
			TotalAmount:    total,
			Status:         domainDisb.StatusPending,
			Latitude:       in.Latitude,
			Longitude:      in.Longitude,
		}
		if err := r.Disbursements.Create(ctx, d); err != nil {
			return err
		}

		if err := a.Reserve(in.Amount); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		dto = toDTO(d, a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notif.Fire(in.CustomerID,
		"Disbursement Request Sent",
		fmt.Sprintf("Your disbursement of %.2f over %d months is being processed. Total payable: %.2f.",
			dto.Amount, dto.TenorMonths, dto.TotalAmount),
		notification.TypeLoanSubmitted, dto.DisbursementID)

	return dto, nil
}

// Process marks a PENDING disbursement DISBURSED. The amount was reserved at
// request time, so the ledger does not move here.
func (u *Usecase) Process(ctx context.Context, actorID, disbursementID, note string) (*DisbursementDTO, error) {
	var (
		dto        *DisbursementDTO
		customerID string
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Disbursements.GetByDisbursementIDForUpdate(ctx, disbursementID)
		if err != nil {
			return err
		}
		if d.Status != domainDisb.StatusPending {
			return domainDisb.ErrInvalidState
		}

		a, err := r.Applications.GetByID(ctx, d.ApplicationID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		d.Status = domainDisb.StatusDisbursed
		d.DisbursedBy = actorID
		d.DisbursedAt = &now
		d.Note = note
		if err := r.Disbursements.Save(ctx, d); err != nil {
			return err
		}

		customerID = a.CustomerID
		dto = toDTO(d, a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notif.Fire(customerID,
		"Funds Disbursed!",
		fmt.Sprintf("Your disbursement of %.2f has been processed. Total payable: %.2f.", dto.Amount, dto.TotalAmount),
		notification.TypeLoanDisbursed, dto.DisbursementID)

	return dto, nil
}

// Cancel releases the reserved amount back to the application's limit and
// closes the disbursement. Both writes commit together.
func (u *Usecase) Cancel(ctx context.Context, actorID, disbursementID, reason string) (*DisbursementDTO, error) {
	var (
		dto        *DisbursementDTO
		customerID string
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Disbursements.GetByDisbursementIDForUpdate(ctx, disbursementID)
		if err != nil {
			return err
		}
		if d.Status != domainDisb.StatusPending {
			return domainDisb.ErrInvalidState
		}

		a, err := r.Applications.GetByIDForUpdate(ctx, d.ApplicationID)
		if err != nil {
			return err
		}
		a.Release(d.Amount)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		d.Status = domainDisb.StatusCancelled
		d.Note = reason
		if err := r.Disbursements.Save(ctx, d); err != nil {
			return err
		}

		customerID = a.CustomerID
		dto = toDTO(d, a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notif.Fire(customerID,
		"Disbursement Cancelled",
		fmt.Sprintf("Your disbursement of %.2f was cancelled. Reason: %s", dto.Amount, reason),
		notification.TypeLoanRejected, dto.DisbursementID)

	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, disbursementID string) (*DisbursementDTO, error) {
	d, err := u.disbs.GetByDisbursementID(ctx, disbursementID)
	if err != nil {
		return nil, err
	}
	a, err := u.apps.GetByID(ctx, d.ApplicationID)
	if err != nil {
		return nil, err
	}
	return toDTO(d, a), nil
}

func (u *Usecase) MyDisbursements(ctx context.Context, customerID string) ([]DisbursementDTO, error) {
	ds, err := u.disbs.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ctx, ds)
}

func (u *Usecase) PendingQueue(ctx context.Context) ([]DisbursementDTO, error) {
	ds, err := u.disbs.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ctx, ds)
}

func (u *Usecase) All(ctx context.Context) ([]DisbursementDTO, error) {
	ds, err := u.disbs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(ctx, ds)
}

func (u *Usecase) toDTOs(ctx context.Context, ds []domainDisb.Disbursement) ([]DisbursementDTO, error) {
	out := make([]DisbursementDTO, 0, len(ds))
	for i := range ds {
		a, err := u.apps.GetByID(ctx, ds[i].ApplicationID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDTO(&ds[i], a))
	}
	return out, nil
}

func toDTO(d *domainDisb.Disbursement, a *domainApp.Application) *DisbursementDTO {
	return &DisbursementDTO{
		DisbursementID: d.DisbursementID,
		ApplicationID:  a.ApplicationID,
		PlafondName:    a.Plafond.Name,
		BankName:       a.BankName,
		AccountNumber:  a.AccountNumber,
		Amount:         d.Amount,
		InterestRate:   d.InterestRate,
		TenorMonths:    d.TenorMonths,
		InterestAmount: d.InterestAmount,
		TotalAmount:    d.TotalAmount,
		Status:         string(d.Status),
		Note:           d.Note,
		RequestedAt:    d.CreatedAt,
		DisbursedAt:    d.DisbursedAt,
	}
}
