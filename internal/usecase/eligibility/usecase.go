package eligibility

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"loanly-backend/internal/domain/application"
	"loanly-backend/internal/domain/plafond"
)

type Usecase struct {
	apps     application.Repository
	plafonds plafond.Repository
}

func NewUsecase(apps application.Repository, plafonds plafond.Repository) *Usecase {
	return &Usecase{apps: apps, plafonds: plafonds}
}

// Check evaluates the eligibility rules in strict order; first match wins.
func (u *Usecase) Check(ctx context.Context, customerID string) (*Result, error) {
	return Check(ctx, u.apps, u.plafonds, customerID)
}

// Check is the repo-parameterized form so submission can re-run the gate on
// tx-bound repositories inside its own transaction.
func Check(ctx context.Context, apps application.Repository, plafonds plafond.Repository, customerID string) (*Result, error) {
	// Rule 1: a pending application blocks everything
	pending, err := apps.HasPendingByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if pending {
		return &Result{
			CanApply:         false,
			Reason:           "you have an application that is still under review",
			ReasonCode:       ReasonPendingApplication,
			EligiblePlafonds: []PlafondInfo{},
		}, nil
	}

	// Rule 2: an approved limit with remaining balance blocks a new one
	active, err := apps.GetActiveWithBalanceByCustomer(ctx, customerID)
	switch {
	case err == nil:
		return &Result{
			CanApply:   false,
			Reason:     fmt.Sprintf("you still have an active limit of %.2f remaining", active.AvailableLimit()),
			ReasonCode: ReasonActiveLimitExists,
			CurrentLimit: &ActiveLimitInfo{
				ApplicationID:  active.ApplicationID,
				PlafondID:      active.PlafondID,
				PlafondName:    active.Plafond.Name,
				MaxAmount:      active.Plafond.MaxAmount,
				ApprovedLimit:  active.ApprovedLimit,
				UsedAmount:     active.UsedAmount,
				AvailableLimit: active.AvailableLimit(),
			},
			EligiblePlafonds: []PlafondInfo{},
		}, nil
	case !errors.Is(err, application.ErrNotFound):
		return nil, err
	}

	// Rule 3: tier-up floor from the customer's approval history
	minAmount, err := apps.HighestApprovedMaxAmount(ctx, customerID)
	if err != nil {
		return nil, err
	}

	catalog, err := plafonds.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	eligible := EligibleTiers(minAmount, catalog)

	if len(eligible) == 0 && minAmount > 0 {
		return &Result{
			CanApply:         false,
			Reason:           "no higher plafond tier is available",
			ReasonCode:       ReasonNoHigherTier,
			EligiblePlafonds: []PlafondInfo{},
		}, nil
	}

	res := &Result{
		CanApply:         true,
		Reason:           "you may apply for a new plafond",
		ReasonCode:       ReasonEligible,
		EligiblePlafonds: toInfos(eligible),
	}
	if minAmount > 0 {
		res.Reason = "you may apply for a higher plafond tier"
		if len(eligible) > 0 {
			info := toInfo(eligible[0])
			res.MinimumNextTier = &info
		}
	}
	return res, nil
}

// EligibleTiers filters the catalog to active tiers strictly above minAmount,
// ascending by max amount. Pure; no hidden state.
func EligibleTiers(minAmount float64, catalog []plafond.Plafond) []plafond.Plafond {
	out := make([]plafond.Plafond, 0, len(catalog))
	for _, p := range catalog {
		if p.IsActive && p.MaxAmount > minAmount {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MaxAmount < out[j].MaxAmount })
	return out
}

// Validate re-runs the gate and enforces the strict tier-up rule for a
// specific target plafond. Intended to run inside the submission transaction.
func Validate(ctx context.Context, apps application.Repository, plafonds plafond.Repository, customerID string, plafondID uint64) error {
	res, err := Check(ctx, apps, plafonds, customerID)
	if err != nil {
		return err
	}
	if !res.CanApply {
		return &IneligibleError{ReasonCode: res.ReasonCode, Reason: res.Reason}
	}

	minAmount, err := apps.HighestApprovedMaxAmount(ctx, customerID)
	if err != nil {
		return err
	}
	if minAmount > 0 {
		target, err := plafonds.GetByID(ctx, plafondID)
		if err != nil {
			return err
		}
		if target.MaxAmount <= minAmount {
			return &IneligibleError{
				ReasonCode: ReasonNoHigherTier,
				Reason:     fmt.Sprintf("you must apply for a tier higher than %.2f", minAmount),
			}
		}
	}
	return nil
}

func toInfo(p plafond.Plafond) PlafondInfo {
	return PlafondInfo{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		MaxAmount:   p.MaxAmount,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

func toInfos(ps []plafond.Plafond) []PlafondInfo {
	out := make([]PlafondInfo, 0, len(ps))
	for _, p := range ps {
		out = append(out, toInfo(p))
	}
	return out
}
