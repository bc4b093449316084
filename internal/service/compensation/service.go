package compensation

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type CompensationServiceImpl struct {
	compensationRepo compensation.CompensationRepository
	benefitRepo      compensation.BenefitRepository
}

func NewCompensationService(
	compensationRepo compensation.CompensationRepository,
	benefitRepo compensation.BenefitRepository,
) compensation.CompensationService {
	return &CompensationServiceImpl{
		compensationRepo: compensationRepo,
		benefitRepo:      benefitRepo,
	}
}

// ResolveCurrentCompensation returns nil without error when the employee has
// no record in effect at asOf.
func (s *CompensationServiceImpl) ResolveCurrentCompensation(ctx context.Context, employeeID string, asOf time.Time) (*compensation.Compensation, error) {
	records, err := s.compensationRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation records: %w", err)
	}
	return compensation.SelectCurrent(records, asOf), nil
}

func (s *CompensationServiceImpl) AnnualSalary(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
	current, err := s.ResolveCurrentCompensation(ctx, employeeID, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	if current == nil {
		return decimal.Zero, compensation.ErrMissingCompensation
	}
	return current.AnnualEquivalent(), nil
}

// TotalBenefitsCost sums the annual employer cost of every active
// enrollment. Percentage-based benefits use the current annual salary, or
// zero when there is none.
func (s *CompensationServiceImpl) TotalBenefitsCost(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
	salary := decimal.Zero
	current, err := s.ResolveCurrentCompensation(ctx, employeeID, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	if current != nil {
		salary = current.AnnualEquivalent()
	}

	enrollments, err := s.benefitRepo.ListActiveEnrollments(ctx, employeeID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list benefit enrollments: %w", err)
	}
	total := decimal.Zero
	for _, eb := range enrollments {
		total = total.Add(eb.AnnualEmployerCost(salary))
	}
	return total, nil
}

func (s *CompensationServiceImpl) CurrentCompensation(ctx context.Context, employeeID string, asOf time.Time) (compensation.CurrentCompensationResponse, error) {
	resp := compensation.CurrentCompensationResponse{
		EmployeeID: employeeID,
		AsOf:       utils.FormatDate(asOf),
	}

	current, err := s.ResolveCurrentCompensation(ctx, employeeID, asOf)
	if err != nil {
		return compensation.CurrentCompensationResponse{}, err
	}
	if current != nil {
		c := compensation.NewCompensationResponse(*current)
		resp.Compensation = &c
	}

	resp.BenefitsCost, err = s.TotalBenefitsCost(ctx, employeeID, asOf)
	if err != nil {
		return compensation.CurrentCompensationResponse{}, err
	}
	return resp, nil
}
