package compensation

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type SalaryType string

const (
	SalaryTypeAnnual SalaryType = "Annual"
	SalaryTypeHourly SalaryType = "Hourly"
)

const WeeksPerYear = 52

var DefaultHoursPerWeek = decimal.NewFromInt(40)

// Compensation is a time-bounded pay record. Records are never edited; a
// change of pay is a new row and the old one gets an end date.
type Compensation struct {
	ID                string
	EmployeeID        string
	BaseSalary        decimal.Decimal
	SalaryType        SalaryType
	HoursPerWeek      decimal.Decimal
	EffectiveDate     time.Time
	EndDate           *time.Time
	SalaryStructureID *string
	CreatedAt         time.Time
}

// IsActiveOn reports whether the record has not ended before asOf.
func (c Compensation) IsActiveOn(asOf time.Time) bool {
	return c.EndDate == nil || !utils.Date(*c.EndDate).Before(utils.Date(asOf))
}

func (c Compensation) hoursPerWeek() decimal.Decimal {
	if c.HoursPerWeek.IsPositive() {
		return c.HoursPerWeek
	}
	return DefaultHoursPerWeek
}

// AnnualEquivalent converts the record to a yearly amount: hourly rates are
// multiplied out over hours per week and 52 weeks.
func (c Compensation) AnnualEquivalent() decimal.Decimal {
	if c.SalaryType == SalaryTypeHourly {
		return c.BaseSalary.Mul(c.hoursPerWeek()).Mul(decimal.NewFromInt(WeeksPerYear))
	}
	return c.BaseSalary
}

// PeriodGross is the annual equivalent spread evenly over periodsPerYear,
// rounded to cents. Hourly and annual records follow the same rule.
func (c Compensation) PeriodGross(periodsPerYear int) decimal.Decimal {
	if periodsPerYear <= 0 {
		return decimal.Zero
	}
	return c.AnnualEquivalent().Div(decimal.NewFromInt(int64(periodsPerYear))).Round(2)
}

type ComponentType string

const (
	ComponentAllowance ComponentType = "allowance"
	ComponentBonus     ComponentType = "bonus"
	ComponentDeduction ComponentType = "deduction"
	ComponentBenefit   ComponentType = "benefit"
	ComponentTax       ComponentType = "tax"
	ComponentStipend   ComponentType = "stipend"
)

// IsDeduction reports whether the component reduces pay.
func (t ComponentType) IsDeduction() bool {
	return t == ComponentDeduction || t == ComponentTax
}

func (t ComponentType) Valid() bool {
	switch t {
	case ComponentAllowance, ComponentBonus, ComponentDeduction, ComponentBenefit, ComponentTax, ComponentStipend:
		return true
	}
	return false
}

type SalaryStructure struct {
	ID            string
	Name          string
	Description   *string
	BaseSalaryMin decimal.Decimal
	BaseSalaryMax decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
}

type SalaryComponent struct {
	ID            string
	StructureID   string
	Name          string
	ComponentType ComponentType
	IsPercentage  bool
	Value         decimal.Decimal
	IsTaxable     bool
	IsActive      bool
	CreatedAt     time.Time
}

type IncentiveType string

const (
	IncentiveBonus      IncentiveType = "bonus"
	IncentiveCommission IncentiveType = "commission"
)

// Incentive is a one-off award outside the recurring payroll.
type Incentive struct {
	ID            string
	EmployeeID    string
	IncentiveType IncentiveType
	Amount        decimal.Decimal
	DateAwarded   time.Time
	Description   *string
}

// BenefitCategoryRetirement marks the plan whose enrollment date starts the
// vesting clock.
const BenefitCategoryRetirement = "Retirement"

type Benefit struct {
	ID       string
	Name     string
	Category string
	// Monthly employer cost. When zero, EmployerContributionPct applies.
	EmployerContribution    decimal.Decimal
	EmployerContributionPct decimal.Decimal
	EmployeeContribution    decimal.Decimal
	IsActive                bool
}

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Active"
	EnrollmentPending   EnrollmentStatus = "Pending"
	EnrollmentCancelled EnrollmentStatus = "Cancelled"
)

type EmployeeBenefit struct {
	ID             string
	EmployeeID     string
	BenefitID      string
	EnrollmentDate time.Time
	EndDate        *time.Time
	Status         EnrollmentStatus

	// Join
	Benefit Benefit
}

func (eb EmployeeBenefit) IsActiveOn(asOf time.Time) bool {
	if eb.Status != EnrollmentActive {
		return false
	}
	ref := utils.Date(asOf)
	if utils.Date(eb.EnrollmentDate).After(ref) {
		return false
	}
	return eb.EndDate == nil || !utils.Date(*eb.EndDate).Before(ref)
}

// AnnualEmployerCost is twelve months of the flat contribution, or the
// percentage of annualSalary when no flat amount is set.
func (eb EmployeeBenefit) AnnualEmployerCost(annualSalary decimal.Decimal) decimal.Decimal {
	if eb.Benefit.EmployerContribution.IsPositive() {
		return eb.Benefit.EmployerContribution.Mul(decimal.NewFromInt(12))
	}
	if eb.Benefit.EmployerContributionPct.IsPositive() {
		return annualSalary.Mul(eb.Benefit.EmployerContributionPct).Div(decimal.NewFromInt(100)).Round(2)
	}
	return decimal.Zero
}
