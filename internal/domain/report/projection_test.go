package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProjectEmployerCost(t *testing.T) {
	retirement, taxes := ProjectEmployerCost(decimal.NewFromInt(60000))

	// 4590 FICA + 42 FUTA + 2100 SUTA
	assert.True(t, retirement.Equal(decimal.NewFromInt(1800)))
	assert.True(t, taxes.Equal(decimal.NewFromInt(6732)), taxes.String())
}

func TestProjectEmployerCost_BelowFUTAWageBase(t *testing.T) {
	_, taxes := ProjectEmployerCost(decimal.NewFromInt(5000))

	// 382.50 FICA + 30 FUTA + 175 SUTA
	assert.True(t, taxes.Equal(decimal.RequireFromString("587.5")), taxes.String())
}

func TestAverage(t *testing.T) {
	assert.True(t, Average(decimal.NewFromInt(100), 0).IsZero())
	assert.True(t, Average(decimal.NewFromInt(100), 3).Equal(decimal.RequireFromString("33.33")))
}

func TestCompensationSummaryRequest_Validate(t *testing.T) {
	req := CompensationSummaryRequest{}
	assert.NoError(t, req.Validate())
	assert.Equal(t, GroupByDepartment, req.GroupBy)

	req = CompensationSummaryRequest{GroupBy: "branch"}
	assert.Error(t, req.Validate())

	year := 12
	req = CompensationSummaryRequest{GroupBy: GroupByJobTitle, Year: &year}
	assert.Error(t, req.Validate())
}
