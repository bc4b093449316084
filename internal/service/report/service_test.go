package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/report"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-payroll/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

type fixture struct {
	svc        *ReportServiceImpl
	alice, bob employee.Employee
}

// newFixture seeds two engineers, one employee without a department and one
// without any compensation record.
func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore()

	alice := store.AddEmployee(employee.Employee{FirstName: "Alice", LastName: "Archer", Department: "Engineering", JobTitle: "Staff Engineer", HireDate: utils.NewDate(2018, 4, 2)})
	bob := store.AddEmployee(employee.Employee{FirstName: "Bob", LastName: "Baker", Department: "Engineering", JobTitle: "Contractor", HireDate: utils.NewDate(2022, 9, 12)})
	carol := store.AddEmployee(employee.Employee{FirstName: "Carol", LastName: "Cole", JobTitle: "Contractor", HireDate: utils.NewDate(2021, 1, 4)})
	store.AddEmployee(employee.Employee{FirstName: "Dan", LastName: "Drake", Department: "Sales", HireDate: utils.NewDate(2024, 5, 1)})

	store.AddCompensation(compensation.Compensation{EmployeeID: alice.ID, BaseSalary: dec("100000"), EffectiveDate: utils.NewDate(2018, 4, 2)})
	store.AddCompensation(compensation.Compensation{EmployeeID: bob.ID, BaseSalary: dec("50"), SalaryType: compensation.SalaryTypeHourly, EffectiveDate: utils.NewDate(2022, 9, 12)})
	store.AddCompensation(compensation.Compensation{EmployeeID: carol.ID, BaseSalary: dec("60000"), EffectiveDate: utils.NewDate(2021, 1, 4)})

	store.AddIncentive(compensation.Incentive{EmployeeID: alice.ID, IncentiveType: compensation.IncentiveBonus, Amount: dec("5000"), DateAwarded: utils.NewDate(2024, 3, 1)})
	store.AddIncentive(compensation.Incentive{EmployeeID: alice.ID, IncentiveType: compensation.IncentiveCommission, Amount: dec("1000"), DateAwarded: utils.NewDate(2023, 11, 1)})

	store.AddEnrollment(compensation.EmployeeBenefit{
		EmployeeID:     alice.ID,
		EnrollmentDate: utils.NewDate(2022, 1, 1),
		Benefit:        compensation.Benefit{Name: "Medical", EmployerContribution: dec("500"), IsActive: true},
	})

	svc := &ReportServiceImpl{
		employeeRepo:     store.Employees(),
		compensationRepo: store.Compensations(),
		incentiveRepo:    store.Incentives(),
		benefitRepo:      store.Benefits(),
		now:              func() time.Time { return utils.NewDate(2024, 6, 15) },
	}
	return fixture{svc: svc, alice: alice, bob: bob}
}

func TestAggregateCompensation_ByDepartment(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.AggregateCompensation(context.Background(), report.CompensationSummaryRequest{
		IncludeBonuses:  true,
		IncludeBenefits: true,
	})
	require.NoError(t, err)
	assert.Equal(t, report.GroupByDepartment, resp.GroupBy)
	require.Len(t, resp.Categories, 2)

	eng := resp.Categories[0]
	assert.Equal(t, "Engineering", eng.Category)
	assert.Equal(t, 2, eng.EmployeeCount)
	assertDecimal(t, "204000", eng.TotalBasePay)
	assertDecimal(t, "6000", eng.TotalBonus)
	assertDecimal(t, "6000", eng.TotalBenefits)
	assertDecimal(t, "216000", eng.TotalCompensation)
	assertDecimal(t, "102000", eng.AvgBasePay)
	assertDecimal(t, "108000", eng.AvgTotalComp)

	unassigned := resp.Categories[1]
	assert.Equal(t, report.Uncategorized, unassigned.Category)
	assert.Equal(t, 1, unassigned.EmployeeCount)
	assertDecimal(t, "60000", unassigned.TotalCompensation)

	assert.Equal(t, 3, resp.GrandTotal.EmployeeCount)
	assertDecimal(t, "276000", resp.GrandTotal.TotalCompensation)
	assertDecimal(t, "88000", resp.GrandTotal.AvgBasePay)
	assertDecimal(t, "92000", resp.GrandTotal.AvgTotalComp)
}

func TestAggregateCompensation_ByJobTitleForYear(t *testing.T) {
	f := newFixture(t)
	year := 2024

	resp, err := f.svc.AggregateCompensation(context.Background(), report.CompensationSummaryRequest{
		GroupBy:        report.GroupByJobTitle,
		Year:           &year,
		IncludeBonuses: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Categories, 2)

	contractor, staff := resp.Categories[0], resp.Categories[1]
	assert.Equal(t, "Contractor", contractor.Category)
	assert.Equal(t, 2, contractor.EmployeeCount)
	assertDecimal(t, "164000", contractor.TotalBasePay)

	assert.Equal(t, "Staff Engineer", staff.Category)
	assertDecimal(t, "5000", staff.TotalBonus)
	assertDecimal(t, "0", staff.TotalBenefits)
}

func TestAggregateCompensation_EmptyGroupAveragesZero(t *testing.T) {
	f := newFixture(t)
	dept := "Finance"

	resp, err := f.svc.AggregateCompensation(context.Background(), report.CompensationSummaryRequest{Department: &dept})
	require.NoError(t, err)
	assert.Empty(t, resp.Categories)
	assert.Zero(t, resp.GrandTotal.EmployeeCount)
	assertDecimal(t, "0", resp.GrandTotal.AvgBasePay)
	assertDecimal(t, "0", resp.GrandTotal.AvgTotalComp)
}

func TestAggregateCompensation_InvalidGroupBy(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AggregateCompensation(context.Background(), report.CompensationSummaryRequest{GroupBy: "location"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestEmployeeCompensation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	current, err := f.svc.EmployeeCompensation(ctx, f.alice.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, "Alice Archer", current.EmployeeName)
	assertDecimal(t, "100000", current.AnnualBase)
	assertDecimal(t, "5000", current.Bonuses)
	assertDecimal(t, "0", current.Commissions)
	assertDecimal(t, "6000", current.BenefitsCost)
	assertDecimal(t, "111000", current.Total)

	prior, err := f.svc.EmployeeCompensation(ctx, f.alice.ID, 2023)
	require.NoError(t, err)
	assertDecimal(t, "1000", prior.Commissions)
	assertDecimal(t, "107000", prior.Total)

	_, err = f.svc.EmployeeCompensation(ctx, "missing", 2024)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestProjectBudget(t *testing.T) {
	f := newFixture(t)
	dept := "Engineering"

	resp, err := f.svc.ProjectBudget(context.Background(), report.BudgetProjectionRequest{Year: 2024, Department: &dept})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)

	alice := resp.Lines[0]
	assert.Equal(t, f.alice.ID, alice.EmployeeID)
	assertDecimal(t, "3000", alice.Retirement)
	assertDecimal(t, "11192", alice.Taxes)
	assertDecimal(t, "6000", alice.Benefits)
	assertDecimal(t, "120192", alice.Total)

	bob := resp.Lines[1]
	assertDecimal(t, "104000", bob.BaseSalary)
	assertDecimal(t, "118758", bob.Total)

	assertDecimal(t, "204000", resp.TotalSalary)
	assertDecimal(t, "238950", resp.TotalCost)
}
