package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
)

type employeeRepo struct{ s *Store }

func (r employeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.data.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r employeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return r.list(func(e employee.Employee) bool { return e.IsActive() }), nil
}

func (r employeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	return r.list(func(employee.Employee) bool { return true }), nil
}

func (r employeeRepo) list(keep func(employee.Employee) bool) []employee.Employee {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.s.data.employees))
	for _, e := range r.s.data.employees {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		if out[i].FirstName != out[j].FirstName {
			return out[i].FirstName < out[j].FirstName
		}
		return out[i].ID < out[j].ID
	})
	return out
}
