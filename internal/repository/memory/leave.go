package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/shopspring/decimal"
)

type leaveTypeRepo struct{ s *Store }

func (r leaveTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	lt, ok := r.s.data.leaveTypes[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (r leaveTypeRepo) ListPaid(_ context.Context) ([]leave.LeaveType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []leave.LeaveType
	for _, lt := range r.s.data.leaveTypes {
		if lt.IsPaid && lt.IsActive {
			out = append(out, lt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type leaveBalanceRepo struct{ s *Store }

// withTypeName fills the joined leave type name. Caller holds s.mu.
func (r leaveBalanceRepo) withTypeName(b leave.LeaveBalance) leave.LeaveBalance {
	if lt, ok := r.s.data.leaveTypes[b.LeaveTypeID]; ok {
		b.LeaveTypeName = lt.Name
	}
	return b
}

func (r leaveBalanceRepo) GetOrCreate(_ context.Context, seed leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.data.balances {
		if b.EmployeeID == seed.EmployeeID && b.LeaveTypeID == seed.LeaveTypeID && b.Year == seed.Year {
			return r.withTypeName(b), nil
		}
	}
	if err := r.s.checkFault("leave_balances.create"); err != nil {
		return leave.LeaveBalance{}, err
	}
	if seed.ID == "" {
		seed.ID = newID()
	}
	seed.CreatedAt = r.s.timestamp()
	seed.UpdatedAt = seed.CreatedAt
	seed.LeaveTypeName = ""
	r.s.data.balances[seed.ID] = seed
	return r.withTypeName(seed), nil
}

func (r leaveBalanceRepo) ApplyAccrual(_ context.Context, id string, rate, hours decimal.Decimal) (leave.LeaveBalance, error) {
	return r.update(id, "leave_balances.accrue", func(b *leave.LeaveBalance) {
		b.AccrualRate = rate
		b.TotalHours = b.TotalHours.Add(hours)
	})
}

func (r leaveBalanceRepo) AddUsedHours(_ context.Context, id string, hours decimal.Decimal) (leave.LeaveBalance, error) {
	return r.update(id, "leave_balances.use", func(b *leave.LeaveBalance) {
		b.UsedHours = b.UsedHours.Add(hours)
	})
}

func (r leaveBalanceRepo) update(id, op string, apply func(*leave.LeaveBalance)) (leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkFault(op); err != nil {
		return leave.LeaveBalance{}, err
	}
	b, ok := r.s.data.balances[id]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	apply(&b)
	b.UpdatedAt = r.s.timestamp()
	r.s.data.balances[id] = b
	return r.withTypeName(b), nil
}

func (r leaveBalanceRepo) ListByEmployee(_ context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []leave.LeaveBalance
	for _, b := range r.s.data.balances {
		if b.EmployeeID == employeeID && b.Year == year {
			out = append(out, r.withTypeName(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LeaveTypeName != out[j].LeaveTypeName {
			return out[i].LeaveTypeName < out[j].LeaveTypeName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type leaveRequestRepo struct{ s *Store }

func (r leaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	req, ok := r.s.data.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r leaveRequestRepo) UpdateStatus(_ context.Context, req leave.LeaveRequest, from leave.RequestStatus) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.data.requests[req.ID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if current.Status != from {
		return leave.LeaveRequest{}, leave.ErrInvalidState
	}
	current.Status = req.Status
	current.ReviewedBy = req.ReviewedBy
	current.ReviewedAt = req.ReviewedAt
	current.RejectionReason = req.RejectionReason
	current.UpdatedAt = r.s.timestamp()
	r.s.data.requests[current.ID] = current
	return current, nil
}
