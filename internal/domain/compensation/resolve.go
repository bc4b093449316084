package compensation

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
)

// SelectCurrent picks the record in effect at asOf: among records that have
// not ended before asOf, the one with the latest effective date. Ties go to
// the most recently created row. Returns nil when nothing qualifies.
func SelectCurrent(records []Compensation, asOf time.Time) *Compensation {
	ref := utils.Date(asOf)

	var current *Compensation
	for i := range records {
		r := records[i]
		if !r.IsActiveOn(ref) {
			continue
		}
		if current == nil || newer(r, *current) {
			picked := r
			current = &picked
		}
	}
	return current
}

func newer(a, b Compensation) bool {
	if !a.EffectiveDate.Equal(b.EffectiveDate) {
		return a.EffectiveDate.After(b.EffectiveDate)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// CurrentByEmployee groups records by employee and selects each one's
// current record.
func CurrentByEmployee(records []Compensation, asOf time.Time) map[string]Compensation {
	grouped := make(map[string][]Compensation)
	for _, r := range records {
		grouped[r.EmployeeID] = append(grouped[r.EmployeeID], r)
	}

	out := make(map[string]Compensation, len(grouped))
	for employeeID, rs := range grouped {
		if c := SelectCurrent(rs, asOf); c != nil {
			out[employeeID] = *c
		}
	}
	return out
}
