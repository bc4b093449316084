package payroll

import "context"

type PayrollService interface {
	// Processing
	ProcessPayPeriod(ctx context.Context, periodID string) (ProcessResult, error)
	CompletePeriod(ctx context.Context, periodID string) (CompleteResult, error)
	ListPayslips(ctx context.Context, periodID string) ([]PayrollResponse, error)
	GetPayslip(ctx context.Context, id string) (PayrollResponse, error)
}

type PeriodService interface {
	CreatePeriod(ctx context.Context, req CreatePayPeriodRequest) (PayPeriodResponse, error)
	UpdatePeriod(ctx context.Context, req UpdatePayPeriodRequest) (PayPeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PayPeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PayPeriodResponse, error)
	CreateNextPeriod(ctx context.Context) (PayPeriodResponse, error)
	CreateAnnualPeriods(ctx context.Context, req CreateAnnualPeriodsRequest) ([]PayPeriodResponse, error)
}
