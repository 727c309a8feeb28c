package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainApp "loanly-backend/internal/domain/application"
	"loanly-backend/internal/domain/notification"
	"loanly-backend/internal/domain/plafond"
	"loanly-backend/internal/domain/uow"
	"loanly-backend/internal/notifier"
	"loanly-backend/internal/usecase/eligibility"
	"loanly-backend/pkg/id"
)

var ErrValidation = errors.New("invalid input")

type Usecase struct {
	apps     domainApp.Repository
	plafonds plafond.Repository
	uow      uow.UnitOfWork
	notif    notifier.Notifier
}

func NewUsecase(apps domainApp.Repository, plafonds plafond.Repository, tx uow.UnitOfWork, n notifier.Notifier) *Usecase {
	return &Usecase{apps: apps, plafonds: plafonds, uow: tx, notif: n}
}

// Submit runs the eligibility gate and creates the application, all inside
// one transaction so two concurrent submissions cannot both observe "no
// pending application".
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	if in.CustomerID == "" || in.PlafondID == 0 {
		return nil, fmt.Errorf("%w: customer and plafond are required", ErrValidation)
	}

	var dto *ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := eligibility.Validate(ctx, r.Applications, r.Plafonds, in.CustomerID, in.PlafondID); err != nil {
			return err
		}

		p, err := r.Plafonds.GetByID(ctx, in.PlafondID)
		if err != nil {
			return err
		}

		exists, err := r.Applications.ExistsActiveByCustomerAndPlafond(ctx, in.CustomerID, in.PlafondID)
		if err != nil {
			return err
		}
		if exists {
			return domainApp.ErrDuplicateActive
		}

		a := &domainApp.Application{
			ApplicationID: id.NewID32(),
			CustomerID:    in.CustomerID,
			PlafondID:     p.ID,
			Status:        domainApp.StatusPendingReview,
			NIK:           in.NIK,
			BirthPlace:    in.BirthPlace,
			BirthDate:     in.BirthDate,
			MaritalStatus: in.MaritalStatus,
			Occupation:    in.Occupation,
			MonthlyIncome: in.MonthlyIncome,
			Phone:         in.Phone,
			NPWP:          in.NPWP,
			BankName:      in.BankName,
			AccountNumber: in.AccountNumber,
			Latitude:      in.Latitude,
			Longitude:     in.Longitude,
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}

		if err := r.Applications.AppendHistory(ctx, &domainApp.ApplicationHistory{
			ApplicationID:  a.ID,
			PreviousStatus: nil,
			NewStatus:      domainApp.StatusPendingReview,
			ActorID:        in.CustomerID,
			ActorRole:      domainApp.RoleCustomer,
			Note:           "application submitted",
		}); err != nil {
			return err
		}

		a.Plafond = *p
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notif.Fire(in.CustomerID,
		"Credit Limit Application Received",
		fmt.Sprintf("Your application for %s is under review.", dto.PlafondName),
		notification.TypeLoanSubmitted, dto.ApplicationID)

	return dto, nil
}

// Review is the marketing stage: PENDING_REVIEW -> WAITING_APPROVAL | REJECTED.
func (u *Usecase) Review(ctx context.Context, in DecisionInput) (*ApplicationDTO, error) {
	return u.decide(ctx, domainApp.StageReview, in)
}

// Approve is the branch-manager stage: WAITING_APPROVAL -> APPROVED | REJECTED.
// Approval requires a limit in (0, plafond.MaxAmount].
func (u *Usecase) Approve(ctx context.Context, in DecisionInput) (*ApplicationDTO, error) {
	return u.decide(ctx, domainApp.StageApprove, in)
}

// decide applies one staff stage under the application row lock. Re-invoking
// a stage on an already-resolved application fails ErrInvalidState; it never
// silently no-ops.
func (u *Usecase) decide(ctx context.Context, stage domainApp.Stage, in DecisionInput) (*ApplicationDTO, error) {
	if in.ActorID == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrValidation)
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.Application) error {
		if a.Status != stage.From {
			return fmt.Errorf("%w: expected %s, got %s", domainApp.ErrInvalidState, stage.From, a.Status)
		}

		prev := a.Status
		now := time.Now().UTC()

		if in.Approved {
			switch stage.Name {
			case domainApp.StageReview.Name:
				a.ReviewedBy = in.ActorID
				a.ReviewedAt = &now
			case domainApp.StageApprove.Name:
				if in.ApprovedLimit == nil || *in.ApprovedLimit <= 0 {
					return fmt.Errorf("%w: approved limit is required for approval", ErrValidation)
				}
				if *in.ApprovedLimit > a.Plafond.MaxAmount {
					return fmt.Errorf("%w: approved limit cannot exceed plafond max amount %.2f", ErrValidation, a.Plafond.MaxAmount)
				}
				a.ApprovedBy = in.ActorID
				a.ApprovedAt = &now
				a.ApprovedLimit = *in.ApprovedLimit
				a.UsedAmount = 0
			}
			a.Status = stage.ApproveTo
		} else {
			a.RejectionNote = in.Note
			a.Status = stage.RejectTo
		}

		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		if err := r.Applications.AppendHistory(ctx, &domainApp.ApplicationHistory{
			ApplicationID:  a.ID,
			PreviousStatus: &prev,
			NewStatus:      a.Status,
			ActorID:        in.ActorID,
			ActorRole:      stage.Role,
			Note:           in.Note,
		}); err != nil {
			return err
		}

		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifyDecision(stage, in, dto)
	return dto, nil
}

func (u *Usecase) notifyDecision(stage domainApp.Stage, in DecisionInput, dto *ApplicationDTO) {
	switch {
	case !in.Approved:
		u.notif.Fire(dto.CustomerID,
			"Application Rejected",
			"Unfortunately your credit limit application did not meet our criteria. "+in.Note,
			notification.TypeLoanRejected, dto.ApplicationID)
	case stage.Name == domainApp.StageReview.Name:
		u.notif.Fire(dto.CustomerID,
			"Application Passed Review",
			"Your application has been verified and is awaiting final approval.",
			notification.TypeLoanReviewed, dto.ApplicationID)
	default:
		u.notif.Fire(dto.CustomerID,
			"Credit Limit Approved!",
			fmt.Sprintf("Your %s limit of %.2f is now active.", dto.PlafondName, dto.ApprovedLimit),
			notification.TypeLoanApproved, dto.ApplicationID)
	}
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) MyApplications(ctx context.Context, customerID string) ([]ApplicationDTO, error) {
	as, err := u.apps.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(as), nil
}

func (u *Usecase) MyApprovedApplications(ctx context.Context, customerID string) ([]ApplicationDTO, error) {
	as, err := u.apps.ListApprovedByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(as), nil
}

func (u *Usecase) PendingReviewQueue(ctx context.Context) ([]ApplicationDTO, error) {
	as, err := u.apps.ListByStatus(ctx, domainApp.StatusPendingReview)
	if err != nil {
		return nil, err
	}
	return toDTOs(as), nil
}

func (u *Usecase) WaitingApprovalQueue(ctx context.Context) ([]ApplicationDTO, error) {
	as, err := u.apps.ListByStatus(ctx, domainApp.StatusWaitingApproval)
	if err != nil {
		return nil, err
	}
	return toDTOs(as), nil
}

func (u *Usecase) History(ctx context.Context, applicationID string) ([]HistoryDTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	hs, err := u.apps.ListHistory(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryDTO, 0, len(hs))
	for _, h := range hs {
		var prev *string
		if h.PreviousStatus != nil {
			s := string(*h.PreviousStatus)
			prev = &s
		}
		out = append(out, HistoryDTO{
			PreviousStatus: prev,
			NewStatus:      string(h.NewStatus),
			ActorID:        h.ActorID,
			ActorRole:      string(h.ActorRole),
			Note:           h.Note,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out, nil
}

func toDTO(a *domainApp.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:  a.ApplicationID,
		CustomerID:     a.CustomerID,
		PlafondID:      a.PlafondID,
		PlafondName:    a.Plafond.Name,
		MaxAmount:      a.Plafond.MaxAmount,
		Status:         string(a.Status),
		ApprovedLimit:  a.ApprovedLimit,
		UsedAmount:     a.UsedAmount,
		AvailableLimit: a.AvailableLimit(),
		RejectionNote:  a.RejectionNote,
		ReviewedAt:     a.ReviewedAt,
		ApprovedAt:     a.ApprovedAt,
		CreatedAt:      a.CreatedAt,
	}
}

func toDTOs(as []domainApp.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(as))
	for i := range as {
		out = append(out, *toDTO(&as[i]))
	}
	return out
}
