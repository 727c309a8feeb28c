package mysql

import (
	"context"
	"errors"
	"testing"

	plafondDomain "loanly-backend/internal/domain/plafond"
)

func TestPlafond_FindActive_AscendingActiveOnly(t *testing.T) {
	db := openTestDB(t)
	repo := NewPlafondRepository(db)
	ctx := context.Background()

	for _, p := range []*plafondDomain.Plafond{
		{Name: "Gold", MaxAmount: 10_000_000, IsActive: true},
		{Name: "Bronze", MaxAmount: 1_000_000, IsActive: true},
		{Name: "Legacy", MaxAmount: 20_000_000, IsActive: false},
		{Name: "Silver", MaxAmount: 5_000_000, IsActive: true},
	} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := repo.FindActive(ctx)
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i, want := range []string{"Bronze", "Silver", "Gold"} {
		if out[i].Name != want {
			t.Fatalf("out[%d] = %s, want %s", i, out[i].Name, want)
		}
	}
}

func TestPlafond_GetByID_NotFoundAndSoftDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewPlafondRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 404); !errors.Is(err, plafondDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	p := seedPlafond(t, db, "Silver", 5_000_000)
	got, err := repo.GetByID(ctx, p.ID)
	if err != nil || got.Name != "Silver" {
		t.Fatalf("GetByID: got=%+v err=%v", got, err)
	}

	if err := db.Delete(p).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, plafondDomain.ErrNotFound) {
		t.Fatalf("soft-deleted tier must be invisible, got %v", err)
	}
}

func TestPlafond_TenorRates(t *testing.T) {
	db := openTestDB(t)
	repo := NewPlafondRepository(db)
	ctx := context.Background()

	p := seedPlafond(t, db, "Silver", 5_000_000)
	for _, r := range []*plafondDomain.TenorRate{
		{PlafondID: p.ID, TenorMonths: 12, InterestRate: 3.50, IsActive: true},
		{PlafondID: p.ID, TenorMonths: 6, InterestRate: 4.00, IsActive: true},
		{PlafondID: p.ID, TenorMonths: 24, InterestRate: 3.00, IsActive: false},
	} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed rate: %v", err)
		}
	}

	rate, err := repo.GetActiveTenorRate(ctx, p.ID, 6)
	if err != nil {
		t.Fatalf("GetActiveTenorRate: %v", err)
	}
	if rate.InterestRate != 4.00 {
		t.Fatalf("rate = %v", rate.InterestRate)
	}

	// inactive rate and absent tenor both map to ErrTenorNotOffered
	if _, err := repo.GetActiveTenorRate(ctx, p.ID, 24); !errors.Is(err, plafondDomain.ErrTenorNotOffered) {
		t.Fatalf("inactive rate: got %v", err)
	}
	if _, err := repo.GetActiveTenorRate(ctx, p.ID, 9); !errors.Is(err, plafondDomain.ErrTenorNotOffered) {
		t.Fatalf("absent tenor: got %v", err)
	}

	rates, err := repo.ListTenorRates(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListTenorRates: %v", err)
	}
	if len(rates) != 2 || rates[0].TenorMonths != 6 || rates[1].TenorMonths != 12 {
		t.Fatalf("rates = %+v", rates)
	}
}
