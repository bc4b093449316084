package compensation

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestResolveCurrentCompensation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewCompensationService(store.Compensations(), store.Benefits())

	aEnd := utils.NewDate(2023, 12, 31)
	store.AddCompensation(compensation.Compensation{
		EmployeeID:    "emp-1",
		BaseSalary:    dec("48000"),
		EffectiveDate: utils.NewDate(2023, 1, 1),
		EndDate:       &aEnd,
	})
	rowB := store.AddCompensation(compensation.Compensation{
		EmployeeID:    "emp-1",
		BaseSalary:    dec("52000"),
		EffectiveDate: utils.NewDate(2024, 1, 1),
	})

	t.Run("picks the open-ended record", func(t *testing.T) {
		got, err := svc.ResolveCurrentCompensation(ctx, "emp-1", utils.NewDate(2024, 6, 1))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rowB.ID, got.ID)
	})

	t.Run("unknown employee resolves to nil", func(t *testing.T) {
		got, err := svc.ResolveCurrentCompensation(ctx, "emp-2", utils.NewDate(2024, 6, 1))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("annual salary without a record", func(t *testing.T) {
		_, err := svc.AnnualSalary(ctx, "emp-2", utils.NewDate(2024, 6, 1))
		assert.ErrorIs(t, err, compensation.ErrMissingCompensation)
	})

	t.Run("annual salary", func(t *testing.T) {
		got, err := svc.AnnualSalary(ctx, "emp-1", utils.NewDate(2024, 6, 1))
		require.NoError(t, err)
		assert.True(t, dec("52000").Equal(got), got.String())
	})
}

func TestTotalBenefitsCost(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewCompensationService(store.Compensations(), store.Benefits())

	store.AddCompensation(compensation.Compensation{
		EmployeeID:    "emp-1",
		BaseSalary:    dec("60000"),
		EffectiveDate: utils.NewDate(2022, 1, 1),
	})
	store.AddEnrollment(compensation.EmployeeBenefit{
		EmployeeID:     "emp-1",
		EnrollmentDate: utils.NewDate(2022, 3, 1),
		Benefit: compensation.Benefit{
			Name:                 "Medical",
			EmployerContribution: dec("250"),
			IsActive:             true,
		},
	})
	store.AddEnrollment(compensation.EmployeeBenefit{
		EmployeeID:     "emp-1",
		EnrollmentDate: utils.NewDate(2022, 3, 1),
		Benefit: compensation.Benefit{
			Name:                    "401k",
			Category:                compensation.BenefitCategoryRetirement,
			EmployerContributionPct: dec("3"),
			IsActive:                true,
		},
	})
	store.AddEnrollment(compensation.EmployeeBenefit{
		EmployeeID:     "emp-1",
		EnrollmentDate: utils.NewDate(2022, 3, 1),
		Status:         compensation.EnrollmentCancelled,
		Benefit: compensation.Benefit{
			Name:                 "Dental",
			EmployerContribution: dec("40"),
			IsActive:             true,
		},
	})

	got, err := svc.TotalBenefitsCost(ctx, "emp-1", utils.NewDate(2024, 6, 1))
	require.NoError(t, err)
	// 250 × 12 + 3% of 60000
	assert.True(t, dec("4800").Equal(got), got.String())
}
