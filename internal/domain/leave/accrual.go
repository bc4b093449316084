package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// Accrual rates are hours earned per 40 hours worked.
var (
	StandardAccrualRate = decimal.RequireFromString("2.80")
	SeniorAccrualRate   = decimal.RequireFromString("3.80")

	accrualBasisHours = decimal.NewFromInt(40)
)

// SeniorityYears is the tenure at which the senior rate applies.
const SeniorityYears = 5

var DefaultHoursPerDay = decimal.NewFromInt(8)

func AccrualRateForTenure(yearsOfService int) decimal.Decimal {
	if yearsOfService >= SeniorityYears {
		return SeniorAccrualRate
	}
	return StandardAccrualRate
}

// HoursAccrued rounds to hundredths, the precision balances are stored at.
func HoursAccrued(hoursWorked, rate decimal.Decimal) decimal.Decimal {
	if !hoursWorked.IsPositive() {
		return decimal.Zero
	}
	return hoursWorked.Mul(rate).Div(accrualBasisHours).Round(2)
}

// CalculateLeaveDays counts days in [start, end]. Saturdays and Sundays are
// skipped unless includeWeekends is set. An inverted range counts zero.
func CalculateLeaveDays(start, end time.Time, includeWeekends bool) int {
	start, end = utils.Date(start), utils.Date(end)
	if start.After(end) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if includeWeekends || !utils.IsWeekend(d) {
			days++
		}
	}
	return days
}

// LeaveHours converts a day count to hours.
func LeaveHours(days int, hoursPerDay decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(days)).Mul(hoursPerDay)
}
