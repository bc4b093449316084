package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
)

const (
	BiweeklyPeriodsPerYear   = 26
	DefaultPeriodLengthDays  = 14
	DefaultPaymentOffsetDays = 5
)

// Schedule describes the pay calendar used to derive new periods.
type Schedule struct {
	PeriodsPerYear    int
	LengthDays        int
	PaymentOffsetDays int
}

func DefaultSchedule() Schedule {
	return Schedule{
		PeriodsPerYear:    BiweeklyPeriodsPerYear,
		LengthDays:        DefaultPeriodLengthDays,
		PaymentOffsetDays: DefaultPaymentOffsetDays,
	}
}

// PeriodStarting lays out a Draft period of LengthDays starting at start.
func (s Schedule) PeriodStarting(start time.Time) PayPeriod {
	start = utils.Date(start)
	end := utils.AddDays(start, s.LengthDays-1)
	return PayPeriod{
		StartDate:   start,
		EndDate:     end,
		PaymentDate: utils.AddDays(end, s.PaymentOffsetDays),
		Status:      PeriodDraft,
	}
}

// NextAfter returns the period that begins the day after latest ends.
func (s Schedule) NextAfter(latest PayPeriod) PayPeriod {
	return s.PeriodStarting(utils.AddDays(latest.EndDate, 1))
}

// Annual returns PeriodsPerYear consecutive periods starting on the first
// Sunday of year.
func (s Schedule) Annual(year int) []PayPeriod {
	periods := make([]PayPeriod, 0, s.PeriodsPerYear)
	start := FirstSunday(year)
	for i := 0; i < s.PeriodsPerYear; i++ {
		p := s.PeriodStarting(start)
		periods = append(periods, p)
		start = utils.AddDays(p.EndDate, 1)
	}
	return periods
}

func FirstSunday(year int) time.Time {
	d := utils.NewDate(year, time.January, 1)
	offset := (int(time.Sunday) - int(d.Weekday()) + 7) % 7
	return utils.AddDays(d, offset)
}

// FindOverlap returns the first period in existing that intersects
// candidate, ignoring a period with the candidate's own ID.
func FindOverlap(existing []PayPeriod, candidate PayPeriod) *PayPeriod {
	for i := range existing {
		p := existing[i]
		if candidate.ID != "" && p.ID == candidate.ID {
			continue
		}
		if p.Overlaps(candidate.StartDate, candidate.EndDate) {
			return &p
		}
	}
	return nil
}
