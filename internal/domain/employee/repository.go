package employee

import "context"

// EmployeeRepository reads the employee directory. List methods return
// fully materialized slices ordered by last name, first name.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ListAll(ctx context.Context) ([]Employee, error)
}
