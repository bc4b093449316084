package memory

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
)

// The Add methods load reference data that the repositories only read.
// Each fills in a missing ID and returns the stored value.

func (s *Store) AddEmployee(e employee.Employee) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = newID()
	}
	if e.Status == "" {
		e.Status = employee.StatusActive
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.timestamp()
		e.UpdatedAt = e.CreatedAt
	}
	s.data.employees[e.ID] = e
	return e
}

func (s *Store) AddCompensation(c compensation.Compensation) compensation.Compensation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = newID()
	}
	if c.SalaryType == "" {
		c.SalaryType = compensation.SalaryTypeAnnual
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.timestamp()
	}
	s.data.compensations[c.ID] = c
	return c
}

func (s *Store) AddSalaryStructure(st compensation.SalaryStructure, components ...compensation.SalaryComponent) compensation.SalaryStructure {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == "" {
		st.ID = newID()
	}
	if st.CreatedAt.IsZero() {
		st.CreatedAt = s.timestamp()
	}
	s.data.structures[st.ID] = st
	for i, c := range components {
		if c.ID == "" {
			c.ID = newID()
		}
		c.StructureID = st.ID
		if c.CreatedAt.IsZero() {
			// Keep insertion order stable for ListActiveComponents.
			c.CreatedAt = st.CreatedAt.Add(time.Duration(i) * time.Microsecond)
		}
		s.data.components[c.ID] = c
	}
	return st
}

func (s *Store) AddIncentive(in compensation.Incentive) compensation.Incentive {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.ID == "" {
		in.ID = newID()
	}
	s.data.incentives[in.ID] = in
	return in
}

// AddEnrollment stores an enrollment together with its joined benefit.
func (s *Store) AddEnrollment(eb compensation.EmployeeBenefit) compensation.EmployeeBenefit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if eb.Benefit.ID == "" {
		eb.Benefit.ID = newID()
	}
	eb.BenefitID = eb.Benefit.ID
	if eb.ID == "" {
		eb.ID = newID()
	}
	if eb.Status == "" {
		eb.Status = compensation.EnrollmentActive
	}
	s.data.enrollments[eb.ID] = eb
	return eb
}

func (s *Store) AddLeaveType(lt leave.LeaveType) leave.LeaveType {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lt.ID == "" {
		lt.ID = newID()
	}
	if lt.CreatedAt.IsZero() {
		lt.CreatedAt = s.timestamp()
	}
	s.data.leaveTypes[lt.ID] = lt
	return lt
}

func (s *Store) AddLeaveRequest(r leave.LeaveRequest) leave.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = newID()
	}
	if r.Status == "" {
		r.Status = leave.RequestPending
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.timestamp()
		r.UpdatedAt = r.CreatedAt
	}
	s.data.requests[r.ID] = r
	return r
}

func (s *Store) AddTimesheet(ts timesheet.Timesheet) timesheet.Timesheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ts.ID == "" {
		ts.ID = newID()
	}
	if ts.Status == "" {
		ts.Status = timesheet.StatusDraft
	}
	entries := make([]timesheet.TimeEntry, len(ts.Entries))
	for i, e := range ts.Entries {
		if e.ID == "" {
			e.ID = newID()
		}
		e.TimesheetID = ts.ID
		entries[i] = e
	}
	ts.Entries = entries
	ts.TotalHours = timesheet.SumHours(entries)
	if ts.CreatedAt.IsZero() {
		ts.CreatedAt = s.timestamp()
		ts.UpdatedAt = ts.CreatedAt
	}
	s.data.timesheets[ts.ID] = ts
	return ts
}

// AddPayroll stores a payslip directly, bypassing the period status checks
// the service applies.
func (s *Store) AddPayroll(p payroll.Payroll) payroll.Payroll {
	s.mu.Lock()
	defer s.mu.Unlock()
	p = preparePayroll(p, s.timestamp())
	s.data.payrolls[p.ID] = p
	return p
}

// LeaveBalance returns the stored balance for (employee, leave type, year).
func (s *Store) LeaveBalance(employeeID, leaveTypeID string, year int) (leave.LeaveBalance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.data.balances {
		if b.EmployeeID == employeeID && b.LeaveTypeID == leaveTypeID && b.Year == year {
			return b, true
		}
	}
	return leave.LeaveBalance{}, false
}
