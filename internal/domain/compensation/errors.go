package compensation

import "errors"

var (
	// ErrMissingCompensation is soft: payroll proceeds with zero base pay and
	// reports it as a warning.
	ErrMissingCompensation     = errors.New("no current compensation record")
	ErrSalaryStructureNotFound = errors.New("salary structure not found")
)
