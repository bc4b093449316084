package timesheet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll/internal/repository/memory"
	leavesvc "github.com/cmlabs-hris/hris-payroll/internal/service/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *memory.Store
	svc   *TimesheetServiceImpl
	pto   leave.LeaveType
	emp   employee.Employee
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore()
	accrual := leavesvc.NewAccrualService(store, store.Timesheets(), store.Employees(), store.LeaveTypes(), store.LeaveBalances())
	svc := &TimesheetServiceImpl{
		tx:      store,
		repo:    store.Timesheets(),
		accrual: accrual,
		now:     time.Now,
	}
	return fixture{
		store: store,
		svc:   svc,
		pto:   store.AddLeaveType(leave.LeaveType{Name: "PTO", IsPaid: true, IsActive: true}),
		emp:   store.AddEmployee(employee.Employee{FirstName: "Ada", HireDate: time.Now().AddDate(-1, 0, 0)}),
	}
}

func (f fixture) draft(hours string) timesheet.Timesheet {
	return f.store.AddTimesheet(timesheet.Timesheet{
		EmployeeID: f.emp.ID,
		Entries: []timesheet.TimeEntry{
			{WorkDate: utils.Today(), Hours: decimal.RequireFromString(hours)},
		},
	})
}

func (f fixture) balanceHours(t *testing.T) decimal.Decimal {
	t.Helper()
	b, ok := f.store.LeaveBalance(f.emp.ID, f.pto.ID, time.Now().Year())
	if !ok {
		return decimal.Zero
	}
	return b.TotalHours
}

func TestTimesheetLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ts := f.draft("40")

	submitted, err := f.svc.Submit(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, string(timesheet.StatusSubmitted), submitted.Status)

	approved, err := f.svc.Approve(ctx, timesheet.ReviewTimesheetRequest{ID: ts.ID, ReviewerID: "mgr-1"})
	require.NoError(t, err)
	assert.Equal(t, string(timesheet.StatusApproved), approved.Status)
	require.Contains(t, approved.LeaveAccrued, "PTO")
	assert.True(t, decimal.RequireFromString("2.8").Equal(approved.LeaveAccrued["PTO"]))

	_, err = f.svc.Approve(ctx, timesheet.ReviewTimesheetRequest{ID: ts.ID, ReviewerID: "mgr-1"})
	assert.ErrorIs(t, err, timesheet.ErrInvalidState)
	assert.True(t, decimal.RequireFromString("2.8").Equal(f.balanceHours(t)))
}

func TestApprove_ConcurrentCallsAccrueOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ts := f.draft("40")
	_, err := f.svc.Submit(ctx, ts.ID)
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Approve(ctx, timesheet.ReviewTimesheetRequest{ID: ts.ID, ReviewerID: "mgr-1"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, timesheet.ErrInvalidState)
	}
	assert.Equal(t, 1, succeeded)
	assert.True(t, decimal.RequireFromString("2.8").Equal(f.balanceHours(t)))
}

func TestApprove_RequiresSubmitted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ts := f.draft("40")

	_, err := f.svc.Approve(ctx, timesheet.ReviewTimesheetRequest{ID: ts.ID, ReviewerID: "mgr-1"})
	assert.ErrorIs(t, err, timesheet.ErrInvalidState)
	assert.True(t, f.balanceHours(t).IsZero())
}

func TestApprove_AccrualFailureRollsBackApproval(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ts := f.draft("40")
	_, err := f.svc.Submit(ctx, ts.ID)
	require.NoError(t, err)

	boom := errors.New("balance table locked")
	f.store.FailAfter("leave_balances.accrue", 0, boom)

	_, err = f.svc.Approve(ctx, timesheet.ReviewTimesheetRequest{ID: ts.ID, ReviewerID: "mgr-1"})
	assert.ErrorIs(t, err, boom)

	stored, err := f.store.Timesheets().GetByID(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusSubmitted, stored.Status)
}

func TestSubmit_EmptyTimesheet(t *testing.T) {
	f := newFixture(t)
	ts := f.draft("0")

	_, err := f.svc.Submit(context.Background(), ts.ID)
	assert.ErrorIs(t, err, timesheet.ErrEmptyTimesheet)
}

func TestRejectAndReopen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ts := f.draft("16")
	_, err := f.svc.Submit(ctx, ts.ID)
	require.NoError(t, err)

	rejected, err := f.svc.Reject(ctx, timesheet.ReviewTimesheetRequest{ID: ts.ID, ReviewerID: "mgr-1"})
	require.NoError(t, err)
	assert.Equal(t, string(timesheet.StatusRejected), rejected.Status)

	reopened, err := f.svc.Reopen(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, string(timesheet.StatusDraft), reopened.Status)

	_, err = f.svc.Reopen(ctx, ts.ID)
	assert.ErrorIs(t, err, timesheet.ErrInvalidState)
	assert.True(t, f.balanceHours(t).IsZero())
}
