package compensation

import (
	"context"
	"time"
)

type CompensationRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]Compensation, error)
	// ListActiveAsOf returns every record whose end date is null or on/after asOf.
	ListActiveAsOf(ctx context.Context, asOf time.Time) ([]Compensation, error)
}

type SalaryStructureRepository interface {
	GetByID(ctx context.Context, id string) (SalaryStructure, error)
	ListActiveComponents(ctx context.Context, structureID string) ([]SalaryComponent, error)
}

type IncentiveRepository interface {
	// A nil year means all time.
	ListByEmployee(ctx context.Context, employeeID string, year *int) ([]Incentive, error)
	List(ctx context.Context, year *int) ([]Incentive, error)
}

type BenefitRepository interface {
	ListActiveEnrollments(ctx context.Context, employeeID string, asOf time.Time) ([]EmployeeBenefit, error)
	ListAllActiveEnrollments(ctx context.Context, asOf time.Time) ([]EmployeeBenefit, error)
}
