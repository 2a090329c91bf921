package dateutil

import (
	"math"
	"strconv"
	"time"
)

// MonthsFromYears converts a horizon in (possibly fractional) years to whole months, rounding to nearest
func MonthsFromYears(years float64) int {
	return int(math.Round(years * 12))
}

// YearsFromMonths converts a month count to years
func YearsFromMonths(months int) float64 {
	return float64(months) / 12
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// BeginningOfMonth returns the first day of the month for a given date
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// PeriodDate returns the first day of the calendar month in which period m falls, where
// period 1 is the month containing start.
func PeriodDate(start time.Time, period int) time.Time {
	return AddMonths(BeginningOfMonth(start), period-1)
}

// PeriodLabel formats a period as "Jan 2025" when a start date is known, else as its index
func PeriodLabel(start *time.Time, period int) string {
	if start == nil {
		return strconv.Itoa(period)
	}
	return PeriodDate(*start, period).Format("Jan 2006")
}

