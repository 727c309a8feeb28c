package money

import "github.com/shopspring/decimal"

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Interest computes flat, non-compounding interest:
//
//	amount × (monthlyRatePct / 100) × tenorMonths
//
// rounded to 2 decimals half-up. The rate is applied per month; this is the
// product's pricing policy, not an amortized schedule.
func Interest(amount, monthlyRatePct float64, tenorMonths int) float64 {
	interest := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(monthlyRatePct).Div(decimal.NewFromInt(100))).
		Mul(decimal.NewFromInt(int64(tenorMonths))).
		Round(2)
	f, _ := interest.Float64()
	return f
}

// Total is amount + Interest(amount, rate, tenor), rounded to 2 decimals.
func Total(amount, monthlyRatePct float64, tenorMonths int) float64 {
	total := decimal.NewFromFloat(amount).
		Add(decimal.NewFromFloat(Interest(amount, monthlyRatePct, tenorMonths))).
		Round(2)
	f, _ := total.Float64()
	return f
}
