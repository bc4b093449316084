package compensation

import (
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type CompensationResponse struct {
	ID                string           `json:"id"`
	EmployeeID        string           `json:"employee_id"`
	BaseSalary        decimal.Decimal  `json:"base_salary"`
	SalaryType        string           `json:"salary_type"`
	HoursPerWeek      *decimal.Decimal `json:"hours_per_week,omitempty"`
	EffectiveDate     string           `json:"effective_date"`
	EndDate           *string          `json:"end_date,omitempty"`
	SalaryStructureID *string          `json:"salary_structure_id,omitempty"`
	AnnualEquivalent  decimal.Decimal  `json:"annual_equivalent"`
}

func NewCompensationResponse(c Compensation) CompensationResponse {
	resp := CompensationResponse{
		ID:                c.ID,
		EmployeeID:        c.EmployeeID,
		BaseSalary:        c.BaseSalary,
		SalaryType:        string(c.SalaryType),
		EffectiveDate:     utils.FormatDate(c.EffectiveDate),
		SalaryStructureID: c.SalaryStructureID,
		AnnualEquivalent:  c.AnnualEquivalent(),
	}
	if c.SalaryType == SalaryTypeHourly {
		hours := c.hoursPerWeek()
		resp.HoursPerWeek = &hours
	}
	if c.EndDate != nil {
		end := utils.FormatDate(*c.EndDate)
		resp.EndDate = &end
	}
	return resp
}

// CurrentCompensationResponse is the pay in force on AsOf together with the
// employer's annual benefits cost.
type CurrentCompensationResponse struct {
	EmployeeID   string                `json:"employee_id"`
	AsOf         string                `json:"as_of"`
	Compensation *CompensationResponse `json:"compensation"`
	BenefitsCost decimal.Decimal       `json:"benefits_cost"`
}
