package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusDraft, StatusSubmitted))
	assert.True(t, CanTransition(StatusSubmitted, StatusApproved))
	assert.True(t, CanTransition(StatusSubmitted, StatusRejected))
	assert.True(t, CanTransition(StatusRejected, StatusDraft))

	assert.False(t, CanTransition(StatusApproved, StatusApproved))
	assert.False(t, CanTransition(StatusApproved, StatusSubmitted))
	assert.False(t, CanTransition(StatusDraft, StatusApproved))
	assert.False(t, CanTransition(StatusRejected, StatusApproved))
}

func TestSumHours(t *testing.T) {
	entries := []TimeEntry{
		{Hours: decimal.RequireFromString("8")},
		{Hours: decimal.RequireFromString("7.5")},
		{Hours: decimal.RequireFromString("0.25")},
	}

	assert.True(t, SumHours(entries).Equal(decimal.RequireFromString("15.75")))
	assert.True(t, SumHours(nil).IsZero())
}
