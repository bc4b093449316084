package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type PeriodStatus string

// Draft, Processing and Completed drive payroll. Open and Closed belong to
// timesheet editability and are never set by the payroll engine.
const (
	PeriodDraft      PeriodStatus = "Draft"
	PeriodOpen       PeriodStatus = "Open"
	PeriodProcessing PeriodStatus = "Processing"
	PeriodCompleted  PeriodStatus = "Completed"
	PeriodClosed     PeriodStatus = "Closed"
)

type PayPeriod struct {
	ID          string
	StartDate   time.Time
	EndDate     time.Time
	PaymentDate time.Time
	Status      PeriodStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCurrent reports whether today falls inside the period, bounds included.
func (p PayPeriod) IsCurrent(today time.Time) bool {
	return utils.WithinInclusive(today, p.StartDate, p.EndDate)
}

// Overlaps reports whether [start, end] intersects the period. Touching
// bounds count as overlap.
func (p PayPeriod) Overlaps(start, end time.Time) bool {
	return !utils.Date(end).Before(utils.Date(p.StartDate)) && !utils.Date(start).After(utils.Date(p.EndDate))
}

func (p PayPeriod) IsEditable() bool {
	return p.Status == PeriodDraft
}

type PayrollStatus string

const (
	PayrollDraft    PayrollStatus = "Draft"
	PayrollPending  PayrollStatus = "Pending"
	PayrollApproved PayrollStatus = "Approved"
	PayrollPaid     PayrollStatus = "Paid"
)

type EntryType string

const (
	EntryEarning   EntryType = "Earning"
	EntryDeduction EntryType = "Deduction"
)

const (
	BaseSalaryEntryName = "Base Salary"
	IncomeTaxEntryName  = "Income Tax"
)

// Payroll is one employee's payslip for one pay period.
type Payroll struct {
	ID              string
	EmployeeID      string
	PayPeriodID     string
	GrossPay        decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Status          PayrollStatus
	Entries         []PayrollEntry
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PayrollEntry struct {
	ID                 string
	PayrollID          string
	Position           int
	ComponentName      string
	Type               EntryType
	Amount             decimal.Decimal
	IsRecurring        bool
	IsManualAdjustment bool
}

// Totals recomputes earnings and deductions from the entries. Deductions
// include the income tax line.
func (p Payroll) Totals() (earnings, deductions decimal.Decimal) {
	earnings, deductions = decimal.Zero, decimal.Zero
	for _, e := range p.Entries {
		switch e.Type {
		case EntryEarning:
			earnings = earnings.Add(e.Amount)
		case EntryDeduction:
			deductions = deductions.Add(e.Amount)
		}
	}
	return earnings, deductions
}

// IsBalanced checks the payslip header against its line items.
func (p Payroll) IsBalanced() bool {
	earnings, deductions := p.Totals()
	return p.GrossPay.Equal(earnings) &&
		p.TotalDeductions.Add(p.TaxAmount).Equal(deductions) &&
		p.NetPay.Equal(earnings.Sub(deductions))
}
