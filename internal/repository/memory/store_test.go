package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("boom")

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.PayPeriods().Create(ctx, payroll.PayPeriod{
			StartDate: utils.NewDate(2024, 1, 7),
			EndDate:   utils.NewDate(2024, 1, 20),
		})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	periods, err := s.PayPeriods().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestWithinTransaction_NestedJoinsOuter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("boom")

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		inner := s.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := s.PayPeriods().Create(ctx, payroll.PayPeriod{
				StartDate: utils.NewDate(2024, 1, 7),
				EndDate:   utils.NewDate(2024, 1, 20),
			})
			return err
		})
		require.NoError(t, inner)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := s.PayPeriods().CountStartingInYear(ctx, 2024)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPayPeriods_RejectOverlap(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.PayPeriods().Create(ctx, payroll.PayPeriod{
		StartDate: utils.NewDate(2024, 1, 7),
		EndDate:   utils.NewDate(2024, 1, 20),
	})
	require.NoError(t, err)

	_, err = s.PayPeriods().Create(ctx, payroll.PayPeriod{
		StartDate: utils.NewDate(2024, 1, 20),
		EndDate:   utils.NewDate(2024, 2, 2),
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodOverlap)
}

func TestPayPeriods_TransitionStatusIsCompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	p, err := s.PayPeriods().Create(ctx, payroll.PayPeriod{
		StartDate: utils.NewDate(2024, 1, 7),
		EndDate:   utils.NewDate(2024, 1, 20),
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.PeriodDraft, p.Status)

	_, err = s.PayPeriods().TransitionStatus(ctx, p.ID, payroll.PeriodDraft, payroll.PeriodProcessing)
	require.NoError(t, err)

	_, err = s.PayPeriods().TransitionStatus(ctx, p.ID, payroll.PeriodDraft, payroll.PeriodProcessing)
	assert.ErrorIs(t, err, payroll.ErrInvalidState)

	_, err = s.PayPeriods().TransitionStatus(ctx, "missing", payroll.PeriodDraft, payroll.PeriodProcessing)
	assert.ErrorIs(t, err, payroll.ErrPayPeriodNotFound)
}

func TestPayrolls_UniquePerEmployeeAndPeriod(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	p := payroll.Payroll{
		EmployeeID:  "emp-1",
		PayPeriodID: "period-1",
		GrossPay:    decimal.NewFromInt(100),
		Entries: []payroll.PayrollEntry{
			{ComponentName: payroll.BaseSalaryEntryName, Type: payroll.EntryEarning, Amount: decimal.NewFromInt(100)},
		},
	}
	created, err := s.Payrolls().Create(ctx, p)
	require.NoError(t, err)
	require.Len(t, created.Entries, 1)
	assert.Equal(t, created.ID, created.Entries[0].PayrollID)
	assert.Equal(t, 1, created.Entries[0].Position)

	_, err = s.Payrolls().Create(ctx, p)
	assert.ErrorIs(t, err, payroll.ErrPayrollExists)
}

func TestFailAfter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("disk full")
	s.FailAfter("payrolls.create", 1, boom)

	_, err := s.Payrolls().Create(ctx, payroll.Payroll{EmployeeID: "a", PayPeriodID: "p"})
	require.NoError(t, err)
	_, err = s.Payrolls().Create(ctx, payroll.Payroll{EmployeeID: "b", PayPeriodID: "p"})
	assert.ErrorIs(t, err, boom)
	_, err = s.Payrolls().Create(ctx, payroll.Payroll{EmployeeID: "c", PayPeriodID: "p"})
	assert.NoError(t, err)
}
