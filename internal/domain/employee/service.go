package employee

import (
	"context"
	"time"
)

type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	ReportingChain(ctx context.Context, id string) ([]EmployeeResponse, error)
	// Subordinates returns direct reports, or the whole subtree when recursive.
	Subordinates(ctx context.Context, managerID string, recursive bool) ([]EmployeeResponse, error)
	Eligibility(ctx context.Context, id string, asOf time.Time) (EligibilityResponse, error)
}
