package report

import "context"

type ReportService interface {
	AggregateCompensation(ctx context.Context, req CompensationSummaryRequest) (CompensationSummaryResponse, error)
	EmployeeCompensation(ctx context.Context, employeeID string, year int) (EmployeeCompensationResponse, error)
	ProjectBudget(ctx context.Context, req BudgetProjectionRequest) (BudgetProjectionResponse, error)
}
