package report

import (
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GroupBy string

const (
	GroupByDepartment GroupBy = "department"
	GroupByJobTitle   GroupBy = "job_title"
)

// Uncategorized labels employees with an empty department or job title.
const Uncategorized = "Unassigned"

type CompensationSummaryRequest struct {
	GroupBy GroupBy
	// Year limits incentives to awards in that calendar year; nil means all time.
	Year            *int
	Department      *string
	IncludeBonuses  bool
	IncludeBenefits bool
}

func (r *CompensationSummaryRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.GroupBy == "" {
		r.GroupBy = GroupByDepartment
	}
	if r.GroupBy != GroupByDepartment && r.GroupBy != GroupByJobTitle {
		errs.Add("group_by", "must be 'department' or 'job_title'")
	}
	if r.Year != nil {
		errs.Year("year", *r.Year)
	}
	return errs.Err()
}

type CategorySummary struct {
	Category          string          `json:"category"`
	EmployeeCount     int             `json:"employee_count"`
	TotalBasePay      decimal.Decimal `json:"total_base_pay"`
	TotalBonus        decimal.Decimal `json:"total_bonus"`
	TotalBenefits     decimal.Decimal `json:"total_benefits"`
	TotalCompensation decimal.Decimal `json:"total_compensation"`
	AvgBasePay        decimal.Decimal `json:"avg_base_pay"`
	AvgTotalComp      decimal.Decimal `json:"avg_total_comp"`
}

type CompensationSummaryResponse struct {
	GroupBy    GroupBy           `json:"group_by"`
	Year       *int              `json:"year,omitempty"`
	Categories []CategorySummary `json:"categories"`
	GrandTotal CategorySummary   `json:"grand_total"`
}

type EmployeeCompensationResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Year         int             `json:"year"`
	SalaryType   string          `json:"salary_type,omitempty"`
	AnnualBase   decimal.Decimal `json:"annual_base"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	Commissions  decimal.Decimal `json:"commissions"`
	BenefitsCost decimal.Decimal `json:"benefits_cost"`
	Total        decimal.Decimal `json:"total_compensation"`
}

type BudgetProjectionRequest struct {
	Year       int
	Department *string
}

func (r *BudgetProjectionRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Year("year", r.Year)
	return errs.Err()
}

type ProjectionLine struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Department   string          `json:"department"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Retirement   decimal.Decimal `json:"retirement"`
	Taxes        decimal.Decimal `json:"taxes"`
	Benefits     decimal.Decimal `json:"benefits"`
	Total        decimal.Decimal `json:"total"`
}

type BudgetProjectionResponse struct {
	Year          int              `json:"year"`
	Lines         []ProjectionLine `json:"lines"`
	TotalSalary   decimal.Decimal  `json:"total_salary"`
	TotalBenefits decimal.Decimal  `json:"total_benefits"`
	TotalTaxes    decimal.Decimal  `json:"total_taxes"`
	TotalCost     decimal.Decimal  `json:"total_cost"`
}
