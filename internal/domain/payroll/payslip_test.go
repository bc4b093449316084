package payroll

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flatTax = decimal.RequireFromString("0.20")

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBuildPayslip_BaseOnly(t *testing.T) {
	p := BuildPayslip(dec("2000"), nil, flatTax)

	require.Len(t, p.Entries, 2)
	assert.Equal(t, BaseSalaryEntryName, p.Entries[0].ComponentName)
	assert.Equal(t, EntryEarning, p.Entries[0].Type)
	assert.True(t, p.Entries[0].IsRecurring)
	assert.Equal(t, IncomeTaxEntryName, p.Entries[1].ComponentName)
	assert.Equal(t, EntryDeduction, p.Entries[1].Type)
	assert.True(t, p.Entries[1].Amount.Equal(dec("400")))

	assert.True(t, p.GrossPay.Equal(dec("2000")))
	assert.True(t, p.TaxAmount.Equal(dec("400")))
	assert.True(t, p.TotalDeductions.IsZero())
	assert.True(t, p.NetPay.Equal(dec("1600")))
	assert.Equal(t, PayrollPending, p.Status)
}

func TestBuildPayslip_Components(t *testing.T) {
	components := []compensation.SalaryComponent{
		{Name: "Transport", ComponentType: compensation.ComponentAllowance, Value: dec("100")},
		{Name: "Union Dues", ComponentType: compensation.ComponentDeduction, Value: dec("50")},
		{Name: "Garnishment", ComponentType: compensation.ComponentTax, Value: dec("25")},
		{Name: "Remote Stipend", ComponentType: compensation.ComponentStipend, Value: dec("60")},
	}

	p := BuildPayslip(dec("2000"), components, flatTax)

	require.Len(t, p.Entries, 6)
	assert.True(t, p.GrossPay.Equal(dec("2160")))
	assert.True(t, p.TaxAmount.Equal(dec("432")))
	assert.True(t, p.TotalDeductions.Equal(dec("75")))
	assert.True(t, p.NetPay.Equal(dec("1653")))
	assert.Equal(t, EntryDeduction, p.Entries[2].Type)
	assert.Equal(t, EntryDeduction, p.Entries[3].Type)
	for i, e := range p.Entries {
		assert.Equal(t, i+1, e.Position)
	}
	assert.True(t, p.IsBalanced())
}

func TestBuildPayslip_PercentageComponentIsFlat(t *testing.T) {
	components := []compensation.SalaryComponent{
		{Name: "Retirement", ComponentType: compensation.ComponentDeduction, IsPercentage: true, Value: dec("5")},
	}

	p := BuildPayslip(dec("2000"), components, flatTax)

	assert.True(t, p.Entries[1].Amount.Equal(dec("5")))
	assert.True(t, p.TotalDeductions.Equal(dec("5")))
}

func TestBuildPayslip_ZeroBase(t *testing.T) {
	p := BuildPayslip(decimal.Zero, nil, flatTax)

	assert.True(t, p.GrossPay.IsZero())
	assert.True(t, p.TaxAmount.IsZero())
	assert.True(t, p.NetPay.IsZero())
	assert.True(t, p.IsBalanced())
}

func TestBuildPayslip_NetEqualsEarningsMinusDeductions_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := []compensation.ComponentType{
		compensation.ComponentAllowance, compensation.ComponentBonus, compensation.ComponentDeduction,
		compensation.ComponentBenefit, compensation.ComponentTax, compensation.ComponentStipend,
	}

	for run := 0; run < 500; run++ {
		base := decimal.New(rng.Int63n(1_000_000), -2)
		var components []compensation.SalaryComponent
		n := rng.Intn(8)
		for i := 0; i < n; i++ {
			components = append(components, compensation.SalaryComponent{
				Name:          fmt.Sprintf("c%d", i),
				ComponentType: types[rng.Intn(len(types))],
				IsPercentage:  rng.Intn(2) == 0,
				Value:         decimal.New(rng.Int63n(100_000), -2),
			})
		}

		p := BuildPayslip(base, components, flatTax)

		earnings, deductions := p.Totals()
		require.True(t, p.NetPay.Equal(earnings.Sub(deductions)), "run %d: net %s != %s - %s", run, p.NetPay, earnings, deductions)
		require.True(t, p.IsBalanced(), "run %d", run)
	}
}
