package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
)

type compensationRepo struct{ s *Store }

func (r compensationRepo) ListByEmployee(_ context.Context, employeeID string) ([]compensation.Compensation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []compensation.Compensation
	for _, c := range r.s.data.compensations {
		if c.EmployeeID == employeeID {
			out = append(out, c)
		}
	}
	sortCompensations(out)
	return out, nil
}

func (r compensationRepo) ListActiveAsOf(_ context.Context, asOf time.Time) ([]compensation.Compensation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []compensation.Compensation
	for _, c := range r.s.data.compensations {
		if c.IsActiveOn(asOf) {
			out = append(out, c)
		}
	}
	sortCompensations(out)
	return out, nil
}

// sortCompensations orders by effective date, newest first.
func sortCompensations(cs []compensation.Compensation) {
	sort.Slice(cs, func(i, j int) bool {
		if !cs[i].EffectiveDate.Equal(cs[j].EffectiveDate) {
			return cs[i].EffectiveDate.After(cs[j].EffectiveDate)
		}
		return cs[i].ID < cs[j].ID
	})
}

type salaryStructureRepo struct{ s *Store }

func (r salaryStructureRepo) GetByID(_ context.Context, id string) (compensation.SalaryStructure, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.data.structures[id]
	if !ok {
		return compensation.SalaryStructure{}, compensation.ErrSalaryStructureNotFound
	}
	return st, nil
}

func (r salaryStructureRepo) ListActiveComponents(_ context.Context, structureID string) ([]compensation.SalaryComponent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []compensation.SalaryComponent
	for _, c := range r.s.data.components {
		if c.StructureID == structureID && c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type incentiveRepo struct{ s *Store }

func (r incentiveRepo) ListByEmployee(_ context.Context, employeeID string, year *int) ([]compensation.Incentive, error) {
	return r.list(func(in compensation.Incentive) bool {
		return in.EmployeeID == employeeID && inYear(in.DateAwarded, year)
	}), nil
}

func (r incentiveRepo) List(_ context.Context, year *int) ([]compensation.Incentive, error) {
	return r.list(func(in compensation.Incentive) bool { return inYear(in.DateAwarded, year) }), nil
}

func (r incentiveRepo) list(keep func(compensation.Incentive) bool) []compensation.Incentive {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []compensation.Incentive
	for _, in := range r.s.data.incentives {
		if keep(in) {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateAwarded.Equal(out[j].DateAwarded) {
			return out[i].DateAwarded.Before(out[j].DateAwarded)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func inYear(t time.Time, year *int) bool {
	return year == nil || t.Year() == *year
}

type benefitRepo struct{ s *Store }

func (r benefitRepo) ListActiveEnrollments(_ context.Context, employeeID string, asOf time.Time) ([]compensation.EmployeeBenefit, error) {
	return r.list(func(eb compensation.EmployeeBenefit) bool {
		return eb.EmployeeID == employeeID && eb.IsActiveOn(asOf)
	}), nil
}

func (r benefitRepo) ListAllActiveEnrollments(_ context.Context, asOf time.Time) ([]compensation.EmployeeBenefit, error) {
	return r.list(func(eb compensation.EmployeeBenefit) bool { return eb.IsActiveOn(asOf) }), nil
}

func (r benefitRepo) list(keep func(compensation.EmployeeBenefit) bool) []compensation.EmployeeBenefit {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []compensation.EmployeeBenefit
	for _, eb := range r.s.data.enrollments {
		if eb.Benefit.IsActive && keep(eb) {
			out = append(out, eb)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return out[i].ID < out[j].ID
	})
	return out
}
