package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	tx            database.Transactor
	periodRepo    payroll.PayPeriodRepository
	payrollRepo   payroll.PayrollRepository
	employeeRepo  employee.EmployeeRepository
	structureRepo compensation.SalaryStructureRepository
	resolver      compensation.Resolver
	schedule      payroll.Schedule
	taxRate       decimal.Decimal
}

func NewPayrollService(
	tx database.Transactor,
	periodRepo payroll.PayPeriodRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	structureRepo compensation.SalaryStructureRepository,
	resolver compensation.Resolver,
	schedule payroll.Schedule,
	taxRate decimal.Decimal,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:            tx,
		periodRepo:    periodRepo,
		payrollRepo:   payrollRepo,
		employeeRepo:  employeeRepo,
		structureRepo: structureRepo,
		resolver:      resolver,
		schedule:      schedule,
		taxRate:       taxRate,
	}
}

// ========== PROCESSING ==========

// ProcessPayPeriod generates a Pending payslip for every active employee
// that does not have one yet, then moves the period to Processing. The whole
// run is one transaction: any failure leaves no payslips behind and the
// period in Draft.
func (s *PayrollServiceImpl) ProcessPayPeriod(ctx context.Context, periodID string) (payroll.ProcessResult, error) {
	result := payroll.ProcessResult{PeriodID: periodID}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		period, err := s.periodRepo.GetByID(ctx, periodID)
		if err != nil {
			return err
		}
		if period.Status != payroll.PeriodDraft {
			return payroll.ErrInvalidState
		}

		employees, err := s.employeeRepo.ListActive(ctx)
		if err != nil {
			return fmt.Errorf("failed to list active employees: %w", err)
		}
		if len(employees) == 0 {
			result.Warnings = append(result.Warnings, payroll.Warning{Message: "no active employees found"})
			return nil
		}

		// Claim the period first so a concurrent run fails fast instead of
		// racing on payslip inserts.
		if _, err := s.periodRepo.TransitionStatus(ctx, periodID, payroll.PeriodDraft, payroll.PeriodProcessing); err != nil {
			return err
		}

		existingIDs, err := s.payrollRepo.ListEmployeeIDsByPeriod(ctx, periodID)
		if err != nil {
			return fmt.Errorf("failed to list existing payslips: %w", err)
		}
		existing := make(map[string]bool, len(existingIDs))
		for _, id := range existingIDs {
			existing[id] = true
		}

		for _, emp := range employees {
			if existing[emp.ID] {
				result.Skipped++
				continue
			}

			slip, warnings, err := s.buildPayslip(ctx, emp, period)
			if err != nil {
				return err
			}
			result.Warnings = append(result.Warnings, warnings...)

			if _, err := s.payrollRepo.Create(ctx, slip); err != nil {
				return fmt.Errorf("failed to create payslip for employee %s: %w", emp.ID, err)
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		return payroll.ProcessResult{}, err
	}

	slog.InfoContext(ctx, "pay period processed",
		"period_id", periodID,
		"created", result.Created,
		"skipped", result.Skipped,
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// buildPayslip resolves the employee's pay as of the period end date. A
// missing compensation record pays zero base and comes back as a warning.
func (s *PayrollServiceImpl) buildPayslip(ctx context.Context, emp employee.Employee, period payroll.PayPeriod) (payroll.Payroll, []payroll.Warning, error) {
	var warnings []payroll.Warning

	comp, err := s.resolver.ResolveCurrentCompensation(ctx, emp.ID, period.EndDate)
	if err != nil {
		return payroll.Payroll{}, nil, fmt.Errorf("failed to resolve compensation for employee %s: %w", emp.ID, err)
	}

	baseGross := decimal.Zero
	var components []compensation.SalaryComponent
	if comp == nil {
		warnings = append(warnings, payroll.Warning{
			EmployeeID: emp.ID,
			Message:    compensation.ErrMissingCompensation.Error(),
		})
	} else {
		baseGross = comp.PeriodGross(s.schedule.PeriodsPerYear)
		if comp.SalaryStructureID != nil {
			components, err = s.structureRepo.ListActiveComponents(ctx, *comp.SalaryStructureID)
			if err != nil {
				return payroll.Payroll{}, nil, fmt.Errorf("failed to load salary components: %w", err)
			}
		}
	}

	for _, c := range components {
		if c.IsPercentage {
			slog.WarnContext(ctx, "percentage salary component applied as a flat amount",
				"employee_id", emp.ID,
				"component", c.Name,
				"value", c.Value.String(),
			)
		}
	}

	slip := payroll.BuildPayslip(baseGross, components, s.taxRate)
	slip.EmployeeID = emp.ID
	slip.PayPeriodID = period.ID
	return slip, warnings, nil
}

// CompletePeriod closes a Processing period and approves its Pending
// payslips in the same transaction.
func (s *PayrollServiceImpl) CompletePeriod(ctx context.Context, periodID string) (payroll.CompleteResult, error) {
	result := payroll.CompleteResult{PeriodID: periodID}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.periodRepo.TransitionStatus(ctx, periodID, payroll.PeriodProcessing, payroll.PeriodCompleted); err != nil {
			return err
		}
		approved, err := s.payrollRepo.UpdateStatusByPeriod(ctx, periodID, payroll.PayrollPending, payroll.PayrollApproved)
		if err != nil {
			return fmt.Errorf("failed to approve payslips: %w", err)
		}
		result.Approved = approved
		return nil
	})
	if err != nil {
		return payroll.CompleteResult{}, err
	}

	slog.InfoContext(ctx, "pay period completed", "period_id", periodID, "approved", result.Approved)
	return result, nil
}

// ========== PAYSLIPS ==========

func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, periodID string) ([]payroll.PayrollResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}
	slips, err := s.payrollRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	out := make([]payroll.PayrollResponse, 0, len(slips))
	for _, p := range slips {
		out = append(out, payroll.NewPayrollResponse(p))
	}
	return out, nil
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollNotFound) {
			return payroll.PayrollResponse{}, err
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return payroll.NewPayrollResponse(p), nil
}
