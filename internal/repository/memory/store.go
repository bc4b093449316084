// Package memory is an in-process implementation of every repository, used
// by the service and handler tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
	"github.com/google/uuid"
)

type txKey struct{}

// Store keeps all tables in maps guarded by one lock. Transactions are
// serialized and rolled back by restoring a snapshot taken on entry.
type Store struct {
	txMu sync.Mutex

	mu     sync.RWMutex
	data   *tables
	faults map[string]*fault
	now    func() time.Time
}

type fault struct {
	remaining int
	err       error
}

type tables struct {
	employees     map[string]employee.Employee
	compensations map[string]compensation.Compensation
	structures    map[string]compensation.SalaryStructure
	components    map[string]compensation.SalaryComponent
	incentives    map[string]compensation.Incentive
	enrollments   map[string]compensation.EmployeeBenefit
	periods       map[string]payroll.PayPeriod
	payrolls      map[string]payroll.Payroll
	leaveTypes    map[string]leave.LeaveType
	balances      map[string]leave.LeaveBalance
	requests      map[string]leave.LeaveRequest
	timesheets    map[string]timesheet.Timesheet
}

func NewStore() *Store {
	return &Store{
		data:   newTables(),
		faults: make(map[string]*fault),
		now:    time.Now,
	}
}

func newTables() *tables {
	return &tables{
		employees:     make(map[string]employee.Employee),
		compensations: make(map[string]compensation.Compensation),
		structures:    make(map[string]compensation.SalaryStructure),
		components:    make(map[string]compensation.SalaryComponent),
		incentives:    make(map[string]compensation.Incentive),
		enrollments:   make(map[string]compensation.EmployeeBenefit),
		periods:       make(map[string]payroll.PayPeriod),
		payrolls:      make(map[string]payroll.Payroll),
		leaveTypes:    make(map[string]leave.LeaveType),
		balances:      make(map[string]leave.LeaveBalance),
		requests:      make(map[string]leave.LeaveRequest),
		timesheets:    make(map[string]timesheet.Timesheet),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone copies every table. Slice fields are never mutated in place, so a
// shallow copy of each value is enough.
func (t *tables) clone() *tables {
	return &tables{
		employees:     cloneMap(t.employees),
		compensations: cloneMap(t.compensations),
		structures:    cloneMap(t.structures),
		components:    cloneMap(t.components),
		incentives:    cloneMap(t.incentives),
		enrollments:   cloneMap(t.enrollments),
		periods:       cloneMap(t.periods),
		payrolls:      cloneMap(t.payrolls),
		leaveTypes:    cloneMap(t.leaveTypes),
		balances:      cloneMap(t.balances),
		requests:      cloneMap(t.requests),
		timesheets:    cloneMap(t.timesheets),
	}
}

// WithinTransaction runs fn with every write rolled back if fn returns an
// error or panics. Nested calls join the outer transaction.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(bool); ok {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
		if err != nil {
			s.restore(snapshot)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, true))
}

func (s *Store) restore(snapshot *tables) {
	s.mu.Lock()
	s.data = snapshot
	s.mu.Unlock()
}

// FailAfter makes the named operation succeed n more times and then return
// err once. Operation names are "<table>.<method>", e.g. "payrolls.create".
func (s *Store) FailAfter(op string, n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = &fault{remaining: n, err: err}
}

// checkFault must be called with s.mu held for writing.
func (s *Store) checkFault(op string) error {
	f, ok := s.faults[op]
	if !ok {
		return nil
	}
	if f.remaining > 0 {
		f.remaining--
		return nil
	}
	delete(s.faults, op)
	return f.err
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Repositories

func (s *Store) Employees() employee.EmployeeRepository { return employeeRepo{s} }

func (s *Store) Compensations() compensation.CompensationRepository { return compensationRepo{s} }

func (s *Store) SalaryStructures() compensation.SalaryStructureRepository {
	return salaryStructureRepo{s}
}

func (s *Store) Incentives() compensation.IncentiveRepository { return incentiveRepo{s} }

func (s *Store) Benefits() compensation.BenefitRepository { return benefitRepo{s} }

func (s *Store) PayPeriods() payroll.PayPeriodRepository { return payPeriodRepo{s} }

func (s *Store) Payrolls() payroll.PayrollRepository { return payrollRepo{s} }

func (s *Store) LeaveTypes() leave.LeaveTypeRepository { return leaveTypeRepo{s} }

func (s *Store) LeaveBalances() leave.LeaveBalanceRepository { return leaveBalanceRepo{s} }

func (s *Store) LeaveRequests() leave.LeaveRequestRepository { return leaveRequestRepo{s} }

func (s *Store) Timesheets() timesheet.TimesheetRepository { return timesheetRepo{s} }
