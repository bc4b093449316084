package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
)

type AccrualServiceImpl struct {
	tx            database.Transactor
	timesheetRepo timesheet.TimesheetRepository
	employeeRepo  employee.EmployeeRepository
	leaveTypeRepo leave.LeaveTypeRepository
	balanceRepo   leave.LeaveBalanceRepository
	now           func() time.Time
}

func NewAccrualService(
	tx database.Transactor,
	timesheetRepo timesheet.TimesheetRepository,
	employeeRepo employee.EmployeeRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
	balanceRepo leave.LeaveBalanceRepository,
) leave.AccrualService {
	return &AccrualServiceImpl{
		tx:            tx,
		timesheetRepo: timesheetRepo,
		employeeRepo:  employeeRepo,
		leaveTypeRepo: leaveTypeRepo,
		balanceRepo:   balanceRepo,
		now:           time.Now,
	}
}

// AccrueLeaveFromTimesheet credits every paid leave type with hours earned
// on an approved timesheet. The rate is refreshed from the employee's tenure
// on each run, including on balances that already exist.
func (s *AccrualServiceImpl) AccrueLeaveFromTimesheet(ctx context.Context, timesheetID string) (leave.AccrualResult, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	if ts.Status != timesheet.StatusApproved || !ts.TotalHours.IsPositive() {
		return nil, nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, ts.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", ts.EmployeeID, err)
	}

	now := s.now()
	rate := leave.AccrualRateForTenure(employee.YearsOfService(emp.HireDate, now))

	result := make(leave.AccrualResult)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		types, err := s.leaveTypeRepo.ListPaid(ctx)
		if err != nil {
			return fmt.Errorf("failed to list paid leave types: %w", err)
		}

		for _, lt := range types {
			balance, err := s.balanceRepo.GetOrCreate(ctx, leave.LeaveBalance{
				EmployeeID:  emp.ID,
				LeaveTypeID: lt.ID,
				Year:        now.Year(),
				AccrualRate: rate,
			})
			if err != nil {
				return fmt.Errorf("failed to get leave balance: %w", err)
			}

			balance.AccrualRate = rate
			accrued := balance.AccrueFromTimesheet(ts.TotalHours)
			if _, err := s.balanceRepo.ApplyAccrual(ctx, balance.ID, rate, accrued); err != nil {
				return fmt.Errorf("failed to apply accrual to %s: %w", lt.Name, err)
			}
			result[lt.Name] = accrued
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "leave accrued from timesheet",
		"timesheet_id", ts.ID,
		"employee_id", emp.ID,
		"hours_worked", ts.TotalHours.String(),
		"rate", rate.String(),
		"leave_types", len(result),
	)
	return result, nil
}
