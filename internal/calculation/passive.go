package calculation

import "github.com/rpgo/growth-calculator/internal/domain"

// PassiveIncome is the income balance would pay at a monthly yield given in percent.
// Zero yield or a non-positive balance yields nothing.
func PassiveIncome(balance, monthlyYieldPercent float64) domain.PassiveIncome {
	income := domain.PassiveIncome{YieldPercent: monthlyYieldPercent}
	if monthlyYieldPercent <= 0 || balance <= 0 {
		return income
	}
	income.Monthly = balance * PercentToFraction(monthlyYieldPercent)
	income.Annual = income.Monthly * domain.PeriodsPerYear
	return income
}
