package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type payPeriodRepo struct{ s *Store }

func (r payPeriodRepo) Create(_ context.Context, period payroll.PayPeriod) (payroll.PayPeriod, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkFault("pay_periods.create"); err != nil {
		return payroll.PayPeriod{}, err
	}
	if r.overlapsLocked(period) {
		return payroll.PayPeriod{}, payroll.ErrPeriodOverlap
	}
	if period.ID == "" {
		period.ID = newID()
	}
	if period.Status == "" {
		period.Status = payroll.PeriodDraft
	}
	period.CreatedAt = r.s.timestamp()
	period.UpdatedAt = period.CreatedAt
	r.s.data.periods[period.ID] = period
	return period, nil
}

// overlapsLocked mirrors the exclusion constraint on the pay_periods table.
func (r payPeriodRepo) overlapsLocked(candidate payroll.PayPeriod) bool {
	for _, p := range r.s.data.periods {
		if p.ID != candidate.ID && p.Overlaps(candidate.StartDate, candidate.EndDate) {
			return true
		}
	}
	return false
}

func (r payPeriodRepo) GetByID(_ context.Context, id string) (payroll.PayPeriod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.data.periods[id]
	if !ok {
		return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
	}
	return p, nil
}

func (r payPeriodRepo) List(_ context.Context) ([]payroll.PayPeriod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]payroll.PayPeriod, 0, len(r.s.data.periods))
	for _, p := range r.s.data.periods {
		out = append(out, p)
	}
	sortPeriods(out)
	return out, nil
}

func (r payPeriodRepo) GetLatest(_ context.Context) (payroll.PayPeriod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest *payroll.PayPeriod
	for _, p := range r.s.data.periods {
		if latest == nil || p.EndDate.After(latest.EndDate) {
			p := p
			latest = &p
		}
	}
	if latest == nil {
		return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
	}
	return *latest, nil
}

func (r payPeriodRepo) ListOverlapping(_ context.Context, start, end time.Time) ([]payroll.PayPeriod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []payroll.PayPeriod
	for _, p := range r.s.data.periods {
		if p.Overlaps(start, end) {
			out = append(out, p)
		}
	}
	sortPeriods(out)
	return out, nil
}

func (r payPeriodRepo) CountStartingInYear(_ context.Context, year int) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, p := range r.s.data.periods {
		if p.StartDate.Year() == year {
			n++
		}
	}
	return n, nil
}

func (r payPeriodRepo) UpdateDates(_ context.Context, period payroll.PayPeriod) (payroll.PayPeriod, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.data.periods[period.ID]
	if !ok {
		return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
	}
	if !current.IsEditable() {
		return payroll.PayPeriod{}, payroll.ErrInvalidState
	}
	if r.overlapsLocked(period) {
		return payroll.PayPeriod{}, payroll.ErrPeriodOverlap
	}
	current.StartDate = period.StartDate
	current.EndDate = period.EndDate
	current.PaymentDate = period.PaymentDate
	current.UpdatedAt = r.s.timestamp()
	r.s.data.periods[current.ID] = current
	return current, nil
}

func (r payPeriodRepo) TransitionStatus(_ context.Context, id string, from, to payroll.PeriodStatus) (payroll.PayPeriod, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.data.periods[id]
	if !ok {
		return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
	}
	if p.Status != from {
		return payroll.PayPeriod{}, payroll.ErrInvalidState
	}
	p.Status = to
	p.UpdatedAt = r.s.timestamp()
	r.s.data.periods[id] = p
	return p, nil
}

// LockCalendar is a no-op: transactions on the memory store already run one
// at a time.
func (r payPeriodRepo) LockCalendar(context.Context) error {
	return nil
}

func sortPeriods(ps []payroll.PayPeriod) {
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].StartDate.Before(ps[j].StartDate)
	})
}

type payrollRepo struct{ s *Store }

func preparePayroll(p payroll.Payroll, now time.Time) payroll.Payroll {
	if p.ID == "" {
		p.ID = newID()
	}
	entries := make([]payroll.PayrollEntry, len(p.Entries))
	for i, e := range p.Entries {
		if e.ID == "" {
			e.ID = newID()
		}
		if e.Position == 0 {
			e.Position = i + 1
		}
		e.PayrollID = p.ID
		entries[i] = e
	}
	p.Entries = entries
	p.CreatedAt = now
	p.UpdatedAt = now
	return p
}

func (r payrollRepo) Create(_ context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkFault("payrolls.create"); err != nil {
		return payroll.Payroll{}, err
	}
	for _, existing := range r.s.data.payrolls {
		if existing.EmployeeID == p.EmployeeID && existing.PayPeriodID == p.PayPeriodID {
			return payroll.Payroll{}, payroll.ErrPayrollExists
		}
	}
	p = preparePayroll(p, r.s.timestamp())
	r.s.data.payrolls[p.ID] = p
	return p, nil
}

func (r payrollRepo) GetByID(_ context.Context, id string) (payroll.Payroll, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.data.payrolls[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (r payrollRepo) ListByPeriod(_ context.Context, periodID string) ([]payroll.Payroll, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []payroll.Payroll
	for _, p := range r.s.data.payrolls {
		if p.PayPeriodID == periodID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (r payrollRepo) ListEmployeeIDsByPeriod(ctx context.Context, periodID string) ([]string, error) {
	payrolls, err := r.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(payrolls))
	for _, p := range payrolls {
		ids = append(ids, p.EmployeeID)
	}
	return ids, nil
}

func (r payrollRepo) UpdateStatusByPeriod(_ context.Context, periodID string, from, to payroll.PayrollStatus) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkFault("payrolls.update_status"); err != nil {
		return 0, err
	}
	var n int64
	now := r.s.timestamp()
	for id, p := range r.s.data.payrolls {
		if p.PayPeriodID == periodID && p.Status == from {
			p.Status = to
			p.UpdatedAt = now
			r.s.data.payrolls[id] = p
			n++
		}
	}
	return n, nil
}

func (r payrollRepo) SumGrossByPeriod(_ context.Context, periodID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := decimal.Zero
	for _, p := range r.s.data.payrolls {
		if p.PayPeriodID == periodID {
			total = total.Add(p.GrossPay)
		}
	}
	return total, nil
}
