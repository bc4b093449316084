package report

import "github.com/shopspring/decimal"

// Employer-side cost assumptions used for budget projections.
var (
	RetirementMatchRate = decimal.RequireFromString("0.03")
	FICARate            = decimal.RequireFromString("0.0765")
	FUTARate            = decimal.RequireFromString("0.006")
	FUTAWageBase        = decimal.NewFromInt(7000)
	SUTARate            = decimal.RequireFromString("0.035")
)

// ProjectEmployerCost computes the retirement match and payroll taxes an
// employer pays on top of salary.
func ProjectEmployerCost(salary decimal.Decimal) (retirement, taxes decimal.Decimal) {
	retirement = salary.Mul(RetirementMatchRate).Round(2)
	fica := salary.Mul(FICARate)
	futa := decimal.Min(salary, FUTAWageBase).Mul(FUTARate)
	suta := salary.Mul(SUTARate)
	taxes = fica.Add(futa).Add(suta).Round(2)
	return retirement, taxes
}

// Average divides total by count, returning zero for an empty group.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}
