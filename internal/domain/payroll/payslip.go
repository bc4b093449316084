package payroll

import (
	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/shopspring/decimal"
)

// BuildPayslip lays out the line items and totals for one employee:
// a recurring base salary earning, one line per component, and a flat
// income tax deduction on total earnings. Component values are taken as
// flat amounts; IsPercentage is not applied.
func BuildPayslip(baseGross decimal.Decimal, components []compensation.SalaryComponent, taxRate decimal.Decimal) Payroll {
	baseGross = baseGross.Round(2)

	entries := []PayrollEntry{{
		ComponentName: BaseSalaryEntryName,
		Type:          EntryEarning,
		Amount:        baseGross,
		IsRecurring:   true,
	}}
	totalEarnings := baseGross
	totalDeductions := decimal.Zero

	for _, c := range components {
		amount := c.Value.Round(2)
		entry := PayrollEntry{
			ComponentName: c.Name,
			Type:          EntryEarning,
			Amount:        amount,
			IsRecurring:   true,
		}
		if c.ComponentType.IsDeduction() {
			entry.Type = EntryDeduction
			totalDeductions = totalDeductions.Add(amount)
		} else {
			totalEarnings = totalEarnings.Add(amount)
		}
		entries = append(entries, entry)
	}

	tax := totalEarnings.Mul(taxRate).Round(2)
	entries = append(entries, PayrollEntry{
		ComponentName: IncomeTaxEntryName,
		Type:          EntryDeduction,
		Amount:        tax,
		IsRecurring:   true,
	})

	for i := range entries {
		entries[i].Position = i + 1
	}

	return Payroll{
		GrossPay:        totalEarnings,
		TaxAmount:       tax,
		TotalDeductions: totalDeductions,
		NetPay:          totalEarnings.Sub(tax).Sub(totalDeductions),
		Status:          PayrollPending,
		Entries:         entries,
	}
}
