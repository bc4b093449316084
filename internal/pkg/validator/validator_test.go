package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	for _, s := range []string{"2024-01-07", "2024-02-29", " 2024-03-01 "} {
		d, ok := IsValidDate(s)
		assert.True(t, ok, s)
		assert.Equal(t, time.UTC, d.Location())
	}
	for _, s := range []string{"2023-02-29", "2024-01-32", "2024/01/07", "07-01-2024", ""} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, s)
	}
}

func TestValidationErrors_Collect(t *testing.T) {
	var errs ValidationErrors
	require.NoError(t, errs.Err())

	start := errs.Date("start_date", "2024-06-02")
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), start)
	errs.Date("end_date", "June 15")
	errs.Year("year", 24)
	errs.Year("year", 2024)

	err := errs.Err()
	require.Error(t, err)

	var target ValidationErrors
	require.True(t, errors.As(err, &target))
	assert.Equal(t, map[string]string{
		"end_date": MsgDate,
		"year":     MsgYear,
	}, target.ToMap())
	assert.Equal(t, "end_date: "+MsgDate+"; year: "+MsgYear, err.Error())
}

func TestValidationErrors_FirstMessageWins(t *testing.T) {
	var errs ValidationErrors
	errs.Add("group_by", "is required")
	errs.Add("group_by", "must be 'department' or 'job_title'")
	assert.Equal(t, "is required", errs.ToMap()["group_by"])
}
