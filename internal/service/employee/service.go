package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	benefitRepo  compensation.BenefitRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, benefitRepo compensation.BenefitRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		benefitRepo:  benefitRepo,
	}
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	list := s.employeeRepo.ListAll
	if activeOnly {
		list = s.employeeRepo.ListActive
	}
	employees, err := list(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employee.NewEmployeeListResponse(employees), nil
}

// ReportingChain returns the employee's managers, nearest first.
func (s *EmployeeServiceImpl) ReportingChain(ctx context.Context, id string) ([]employee.EmployeeResponse, error) {
	dir, err := s.directory(ctx, id)
	if err != nil {
		return nil, err
	}
	return employee.NewEmployeeListResponse(dir.ReportingChain(id)), nil
}

func (s *EmployeeServiceImpl) Subordinates(ctx context.Context, managerID string, recursive bool) ([]employee.EmployeeResponse, error) {
	dir, err := s.directory(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if recursive {
		return employee.NewEmployeeListResponse(dir.AllSubordinates(managerID)), nil
	}
	return employee.NewEmployeeListResponse(dir.Subordinates(managerID)), nil
}

// directory loads the whole org chart and checks that id is part of it.
func (s *EmployeeServiceImpl) directory(ctx context.Context, id string) (*employee.Directory, error) {
	all, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	dir := employee.NewDirectory(all)
	if _, ok := dir.Get(id); !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return dir, nil
}

// Eligibility reports benefit milestones. Vesting counts from the retirement
// plan enrollment date when the employee is enrolled.
func (s *EmployeeServiceImpl) Eligibility(ctx context.Context, id string, asOf time.Time) (employee.EligibilityResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EligibilityResponse{}, err
	}

	enrollments, err := s.benefitRepo.ListActiveEnrollments(ctx, id, asOf)
	if err != nil {
		return employee.EligibilityResponse{}, fmt.Errorf("failed to list benefit enrollments: %w", err)
	}
	var enrolledOn *time.Time
	for _, eb := range enrollments {
		if eb.Benefit.Category != compensation.BenefitCategoryRetirement {
			continue
		}
		if enrolledOn == nil || eb.EnrollmentDate.Before(*enrolledOn) {
			d := eb.EnrollmentDate
			enrolledOn = &d
		}
	}

	return employee.NewEligibilityResponse(employee.EligibilityOf(e, enrolledOn, asOf)), nil
}
