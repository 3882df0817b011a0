// Package pricing derives the display values of a plan for a billing cycle.
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-website/app/entity"
)

const monthsPerYear = 12

var (
	twelve  = decimal.NewFromInt(monthsPerYear)
	hundred = decimal.NewFromInt(100)
)

// DisplayedMonthlyPrice returns the per-month figure shown for the cycle. Annual
// prices are spread over twelve months and rounded half away from zero.
func DisplayedMonthlyPrice(plan entity.Plan, cycle entity.BillingCycle) int64 {
	if cycle != entity.BillingCycleAnnual {
		return plan.MonthlyPrice
	}
	return decimal.NewFromInt(plan.AnnualPrice).Div(twelve).Round(0).IntPart()
}

// AnnualSavingsPercent returns the discount of annual billing against twelve
// monthly payments. It is absent for the monthly cycle and can be zero or
// negative when the annual price is not discounted.
func AnnualSavingsPercent(plan entity.Plan, cycle entity.BillingCycle) (int64, bool) {
	if cycle != entity.BillingCycleAnnual {
		return 0, false
	}
	monthlyTotal := plan.MonthlyPrice * monthsPerYear
	if monthlyTotal == 0 {
		return 0, true
	}
	savingsAmount := monthlyTotal - plan.AnnualPrice
	percent := decimal.NewFromInt(savingsAmount).Mul(hundred).Div(decimal.NewFromInt(monthlyTotal))
	return percent.Round(0).IntPart(), true
}
