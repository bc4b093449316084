package employee

import (
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
)

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Department   string  `json:"department"`
	JobTitle     string  `json:"job_title"`
	HireDate     string  `json:"hire_date"`
	Status       string  `json:"status"`
	ManagerID    *string `json:"manager_id,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName(),
		Email:        e.Email,
		Department:   e.Department,
		JobTitle:     e.JobTitle,
		HireDate:     utils.FormatDate(e.HireDate),
		Status:       string(e.Status),
		ManagerID:    e.ManagerID,
	}
}

func NewEmployeeListResponse(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}

type EligibilityResponse struct {
	EmployeeID             string `json:"employee_id"`
	AsOf                   string `json:"as_of"`
	YearsOfService         int    `json:"years_of_service"`
	HealthcareEligibleDate string `json:"healthcare_eligible_date"`
	HealthcareEligible     bool   `json:"healthcare_eligible"`
	RetirementEligibleDate string `json:"retirement_eligible_date"`
	RetirementEligible     bool   `json:"retirement_eligible"`
	RetirementVestingDate  string `json:"retirement_vesting_date"`
	RetirementVested       bool   `json:"retirement_vested"`
}

func NewEligibilityResponse(e Eligibility) EligibilityResponse {
	return EligibilityResponse{
		EmployeeID:             e.EmployeeID,
		AsOf:                   utils.FormatDate(e.AsOf),
		YearsOfService:         e.YearsOfService,
		HealthcareEligibleDate: utils.FormatDate(e.HealthcareEligibleDate),
		HealthcareEligible:     e.HealthcareEligible,
		RetirementEligibleDate: utils.FormatDate(e.RetirementEligibleDate),
		RetirementEligible:     e.RetirementEligible,
		RetirementVestingDate:  utils.FormatDate(e.RetirementVestingDate),
		RetirementVested:       e.RetirementVested,
	}
}
