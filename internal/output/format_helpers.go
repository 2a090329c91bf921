package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an engine amount as grouped USD with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string { return money.NewMoney(amount).FormatGrouped() }

// FormatAmount renders an amount with two decimals and no symbol, for machine-readable outputs.
func FormatAmount(amount float64) string { return money.NewMoney(amount).String() }

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct float64) string { return decimal.NewFromFloat(pct).StringFixed(2) + "%" }

// FormatPeriods renders a month count with its length in years.
func FormatPeriods(periods int) string {
	if periods == domain.Unreachable {
		return "unreachable"
	}
	if periods == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months (%.1f years)", periods, dateutil.YearsFromMonths(periods))
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
