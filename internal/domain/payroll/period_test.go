package payroll

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_NextAfter(t *testing.T) {
	latest := PayPeriod{StartDate: utils.NewDate(2024, 1, 7), EndDate: utils.NewDate(2024, 1, 20)}

	next := DefaultSchedule().NextAfter(latest)

	assert.Equal(t, utils.NewDate(2024, 1, 21), next.StartDate)
	assert.Equal(t, utils.NewDate(2024, 2, 3), next.EndDate)
	assert.Equal(t, utils.NewDate(2024, 2, 8), next.PaymentDate)
	assert.Equal(t, PeriodDraft, next.Status)
}

func TestFirstSunday(t *testing.T) {
	assert.Equal(t, utils.NewDate(2024, 1, 7), FirstSunday(2024))
	assert.Equal(t, utils.NewDate(2023, 1, 1), FirstSunday(2023))
	assert.Equal(t, utils.NewDate(2025, 1, 5), FirstSunday(2025))
	assert.Equal(t, time.Sunday, FirstSunday(2030).Weekday())
}

func TestSchedule_Annual(t *testing.T) {
	periods := DefaultSchedule().Annual(2024)

	require.Len(t, periods, 26)
	assert.Equal(t, utils.NewDate(2024, 1, 7), periods[0].StartDate)
	assert.Equal(t, utils.NewDate(2024, 1, 20), periods[0].EndDate)
	assert.Equal(t, utils.NewDate(2024, 1, 25), periods[0].PaymentDate)

	for i := 1; i < len(periods); i++ {
		assert.Equal(t, utils.AddDays(periods[i-1].EndDate, 1), periods[i].StartDate)
		assert.Equal(t, 13, utils.DaysBetween(periods[i].StartDate, periods[i].EndDate))
		assert.Nil(t, FindOverlap(periods[:i], periods[i]))
	}
	assert.Equal(t, utils.NewDate(2025, 1, 4), periods[25].EndDate)
}

func TestPayPeriod_Overlaps_InclusiveBounds(t *testing.T) {
	p := PayPeriod{StartDate: utils.NewDate(2024, 1, 7), EndDate: utils.NewDate(2024, 1, 20)}

	assert.True(t, p.Overlaps(utils.NewDate(2024, 1, 20), utils.NewDate(2024, 2, 2)))
	assert.True(t, p.Overlaps(utils.NewDate(2023, 12, 24), utils.NewDate(2024, 1, 7)))
	assert.True(t, p.Overlaps(utils.NewDate(2024, 1, 10), utils.NewDate(2024, 1, 12)))
	assert.True(t, p.Overlaps(utils.NewDate(2023, 12, 1), utils.NewDate(2024, 3, 1)))
	assert.False(t, p.Overlaps(utils.NewDate(2024, 1, 21), utils.NewDate(2024, 2, 3)))
	assert.False(t, p.Overlaps(utils.NewDate(2023, 12, 24), utils.NewDate(2024, 1, 6)))
}

func TestFindOverlap_IgnoresSelf(t *testing.T) {
	existing := []PayPeriod{
		{ID: "p1", StartDate: utils.NewDate(2024, 1, 7), EndDate: utils.NewDate(2024, 1, 20)},
		{ID: "p2", StartDate: utils.NewDate(2024, 1, 21), EndDate: utils.NewDate(2024, 2, 3)},
	}

	edited := PayPeriod{ID: "p1", StartDate: utils.NewDate(2024, 1, 6), EndDate: utils.NewDate(2024, 1, 19)}
	assert.Nil(t, FindOverlap(existing, edited))

	edited.EndDate = utils.NewDate(2024, 1, 21)
	got := FindOverlap(existing, edited)
	require.NotNil(t, got)
	assert.Equal(t, "p2", got.ID)
}

func TestPayPeriod_IsCurrent(t *testing.T) {
	p := PayPeriod{StartDate: utils.NewDate(2024, 1, 7), EndDate: utils.NewDate(2024, 1, 20)}

	assert.True(t, p.IsCurrent(time.Date(2024, 1, 20, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.IsCurrent(utils.NewDate(2024, 1, 21)))
}

func TestCreatePayPeriodRequest_Validate(t *testing.T) {
	req := CreatePayPeriodRequest{StartDate: "2024-01-07", EndDate: "2024-01-20"}
	p, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, utils.NewDate(2024, 1, 7), p.StartDate)
	assert.True(t, p.PaymentDate.IsZero())

	req = CreatePayPeriodRequest{StartDate: "2024-01-20", EndDate: "2024-01-20"}
	_, err = req.Validate()
	assert.ErrorIs(t, err, ErrInvalidPeriodDates)

	payment := "2024-01-01"
	req = CreatePayPeriodRequest{StartDate: "2024-01-07", EndDate: "2024-01-20", PaymentDate: &payment}
	_, err = req.Validate()
	assert.ErrorIs(t, err, ErrInvalidPaymentDate)

	req = CreatePayPeriodRequest{StartDate: "07/01/2024", EndDate: "2024-01-20"}
	_, err = req.Validate()
	assert.Error(t, err)
}
