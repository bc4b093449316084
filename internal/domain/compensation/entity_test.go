package compensation

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func datePtr(t time.Time) *time.Time { return &t }

func TestCompensation_AnnualEquivalent(t *testing.T) {
	annual := Compensation{BaseSalary: dec("52000"), SalaryType: SalaryTypeAnnual}
	hourly := Compensation{BaseSalary: dec("25"), SalaryType: SalaryTypeHourly, HoursPerWeek: dec("30")}
	hourlyDefault := Compensation{BaseSalary: dec("25"), SalaryType: SalaryTypeHourly}

	assert.True(t, annual.AnnualEquivalent().Equal(dec("52000")))
	assert.True(t, hourly.AnnualEquivalent().Equal(dec("39000")))
	assert.True(t, hourlyDefault.AnnualEquivalent().Equal(dec("52000")))
}

func TestCompensation_PeriodGross(t *testing.T) {
	annual := Compensation{BaseSalary: dec("52000"), SalaryType: SalaryTypeAnnual}
	hourly := Compensation{BaseSalary: dec("20"), SalaryType: SalaryTypeHourly}
	odd := Compensation{BaseSalary: dec("50000"), SalaryType: SalaryTypeAnnual}

	assert.True(t, annual.PeriodGross(26).Equal(dec("2000")))
	assert.True(t, hourly.PeriodGross(26).Equal(dec("1600")))
	assert.True(t, odd.PeriodGross(26).Equal(dec("1923.08")))
	assert.True(t, annual.PeriodGross(0).IsZero())
}

func TestCompensation_IsActiveOn(t *testing.T) {
	c := Compensation{EndDate: datePtr(utils.NewDate(2023, 12, 31))}

	assert.True(t, c.IsActiveOn(time.Date(2023, 12, 31, 18, 0, 0, 0, time.UTC)))
	assert.False(t, c.IsActiveOn(utils.NewDate(2024, 1, 1)))
	assert.True(t, Compensation{}.IsActiveOn(utils.NewDate(2099, 1, 1)))
}

func TestSelectCurrent_PicksLatestEffective(t *testing.T) {
	rowA := Compensation{ID: "a", EffectiveDate: utils.NewDate(2023, 1, 1), EndDate: datePtr(utils.NewDate(2023, 12, 31))}
	rowB := Compensation{ID: "b", EffectiveDate: utils.NewDate(2024, 1, 1)}

	got := SelectCurrent([]Compensation{rowA, rowB}, utils.NewDate(2024, 6, 1))

	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)
}

func TestSelectCurrent_EndedRecordsExcluded(t *testing.T) {
	rowA := Compensation{ID: "a", EffectiveDate: utils.NewDate(2023, 1, 1), EndDate: datePtr(utils.NewDate(2023, 12, 31))}

	assert.Nil(t, SelectCurrent([]Compensation{rowA}, utils.NewDate(2024, 6, 1)))
	assert.Nil(t, SelectCurrent(nil, utils.NewDate(2024, 6, 1)))
}

func TestSelectCurrent_DuplicateCurrentRowsTieBreak(t *testing.T) {
	older := Compensation{ID: "a", EffectiveDate: utils.NewDate(2024, 1, 1), CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	newer := Compensation{ID: "b", EffectiveDate: utils.NewDate(2024, 1, 1), CreatedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)}

	got := SelectCurrent([]Compensation{newer, older}, utils.NewDate(2024, 6, 1))

	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)
}

func TestCurrentByEmployee(t *testing.T) {
	records := []Compensation{
		{ID: "a1", EmployeeID: "a", EffectiveDate: utils.NewDate(2023, 1, 1)},
		{ID: "a2", EmployeeID: "a", EffectiveDate: utils.NewDate(2024, 1, 1)},
		{ID: "b1", EmployeeID: "b", EffectiveDate: utils.NewDate(2022, 1, 1), EndDate: datePtr(utils.NewDate(2022, 12, 31))},
	}

	got := CurrentByEmployee(records, utils.NewDate(2024, 6, 1))

	assert.Len(t, got, 1)
	assert.Equal(t, "a2", got["a"].ID)
}

func TestComponentType_IsDeduction(t *testing.T) {
	assert.True(t, ComponentDeduction.IsDeduction())
	assert.True(t, ComponentTax.IsDeduction())
	for _, ct := range []ComponentType{ComponentAllowance, ComponentBonus, ComponentBenefit, ComponentStipend} {
		assert.False(t, ct.IsDeduction(), ct)
	}
}

func TestEmployeeBenefit_AnnualEmployerCost(t *testing.T) {
	flat := EmployeeBenefit{Benefit: Benefit{EmployerContribution: dec("250")}}
	pct := EmployeeBenefit{Benefit: Benefit{EmployerContributionPct: dec("5")}}
	none := EmployeeBenefit{}

	assert.True(t, flat.AnnualEmployerCost(dec("60000")).Equal(dec("3000")))
	assert.True(t, pct.AnnualEmployerCost(dec("60000")).Equal(dec("3000")))
	assert.True(t, none.AnnualEmployerCost(dec("60000")).IsZero())
}

func TestEmployeeBenefit_IsActiveOn(t *testing.T) {
	eb := EmployeeBenefit{
		Status:         EnrollmentActive,
		EnrollmentDate: utils.NewDate(2024, 1, 1),
		EndDate:        datePtr(utils.NewDate(2024, 12, 31)),
	}

	assert.False(t, eb.IsActiveOn(utils.NewDate(2023, 12, 31)))
	assert.True(t, eb.IsActiveOn(utils.NewDate(2024, 12, 31)))
	assert.False(t, eb.IsActiveOn(utils.NewDate(2025, 1, 1)))

	eb.Status = EnrollmentCancelled
	assert.False(t, eb.IsActiveOn(utils.NewDate(2024, 6, 1)))
}
