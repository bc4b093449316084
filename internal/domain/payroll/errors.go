package payroll

import "errors"

var (
	ErrPayPeriodNotFound  = errors.New("pay period not found")
	ErrPayrollNotFound    = errors.New("payroll record not found")
	ErrPayrollExists      = errors.New("payroll record already exists for this employee and period")
	ErrInvalidState       = errors.New("pay period is not in a valid state for this operation")
	ErrPeriodOverlap      = errors.New("pay period overlaps an existing period")
	ErrInvalidPeriodDates = errors.New("pay period start date must be before end date")
	ErrNoPeriods          = errors.New("no existing pay periods; create the first period manually")
	ErrAnnualPeriodsExist = errors.New("pay periods already exist for this year")
	ErrInvalidPaymentDate = errors.New("payment date cannot be before the period start date")
)
