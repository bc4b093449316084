package compensation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Resolver interface {
	ResolveCurrentCompensation(ctx context.Context, employeeID string, asOf time.Time) (*Compensation, error)
}

type CompensationService interface {
	Resolver
	AnnualSalary(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error)
	TotalBenefitsCost(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error)
	CurrentCompensation(ctx context.Context, employeeID string, asOf time.Time) (CurrentCompensationResponse, error)
}
