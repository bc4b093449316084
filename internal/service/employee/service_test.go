package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(rs []employee.EmployeeResponse) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestOrgChart(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewEmployeeService(store.Employees(), store.Benefits())

	ceo := store.AddEmployee(employee.Employee{ID: "ceo", FirstName: "Cam", HireDate: utils.NewDate(2010, 1, 4)})
	vp := store.AddEmployee(employee.Employee{ID: "vp", FirstName: "Val", ManagerID: &ceo.ID, HireDate: utils.NewDate(2012, 1, 2)})
	dev := store.AddEmployee(employee.Employee{ID: "dev", FirstName: "Dee", ManagerID: &vp.ID, HireDate: utils.NewDate(2020, 1, 6)})
	store.AddEmployee(employee.Employee{ID: "ops", FirstName: "Oz", ManagerID: &vp.ID, HireDate: utils.NewDate(2021, 1, 4)})

	chain, err := svc.ReportingChain(ctx, dev.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"vp", "ceo"}, ids(chain))

	direct, err := svc.Subordinates(ctx, ceo.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"vp"}, ids(direct))

	all, err := svc.Subordinates(ctx, ceo.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"vp", "dev", "ops"}, ids(all))

	_, err = svc.ReportingChain(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEligibility(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewEmployeeService(store.Employees(), store.Benefits())

	e := store.AddEmployee(employee.Employee{FirstName: "Ada", HireDate: utils.NewDate(2023, 1, 1)})
	store.AddEnrollment(compensation.EmployeeBenefit{
		EmployeeID:     e.ID,
		EnrollmentDate: utils.NewDate(2023, 9, 1),
		Benefit: compensation.Benefit{
			Name:     "401k",
			Category: compensation.BenefitCategoryRetirement,
			IsActive: true,
		},
	})

	got, err := svc.Eligibility(ctx, e.ID, utils.NewDate(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, got.YearsOfService)
	assert.Equal(t, "2023-03-02", got.HealthcareEligibleDate)
	assert.True(t, got.HealthcareEligible)
	assert.Equal(t, "2023-06-30", got.RetirementEligibleDate)
	assert.True(t, got.RetirementEligible)
	assert.Equal(t, "2026-08-31", got.RetirementVestingDate)
	assert.False(t, got.RetirementVested)
}
