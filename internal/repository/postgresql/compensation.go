package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// ========== COMPENSATION ==========

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.CompensationRepository {
	return &compensationRepository{db: db}
}

const compensationColumns = `
	id, employee_id, base_salary, salary_type, hours_per_week,
	effective_date, end_date, salary_structure_id, created_at`

func (r *compensationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]compensation.Compensation, error) {
	query := `SELECT ` + compensationColumns + `
		FROM employee_compensations
		WHERE employee_id = $1
		ORDER BY effective_date DESC, created_at DESC`
	return r.query(ctx, query, employeeID)
}

func (r *compensationRepository) ListActiveAsOf(ctx context.Context, asOf time.Time) ([]compensation.Compensation, error) {
	query := `SELECT ` + compensationColumns + `
		FROM employee_compensations
		WHERE end_date IS NULL OR end_date >= $1
		ORDER BY employee_id, effective_date DESC, created_at DESC`
	return r.query(ctx, query, asOf)
}

func (r *compensationRepository) query(ctx context.Context, query string, args ...any) ([]compensation.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensations: %w", err)
	}
	defer rows.Close()

	var records []compensation.Compensation
	for rows.Next() {
		var c compensation.Compensation
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.BaseSalary, &c.SalaryType, &c.HoursPerWeek,
			&c.EffectiveDate, &c.EndDate, &c.SalaryStructureID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan compensation: %w", err)
		}
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate compensations: %w", err)
	}
	return records, nil
}

// ========== SALARY STRUCTURES ==========

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) compensation.SalaryStructureRepository {
	return &salaryStructureRepository{db: db}
}

func (r *salaryStructureRepository) GetByID(ctx context.Context, id string) (compensation.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, base_salary_min, base_salary_max, is_active, created_at
		FROM salary_structures
		WHERE id = $1
	`

	var s compensation.SalaryStructure
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.BaseSalaryMin, &s.BaseSalaryMax, &s.IsActive, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return compensation.SalaryStructure{}, compensation.ErrSalaryStructureNotFound
		}
		return compensation.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}
	return s, nil
}

func (r *salaryStructureRepository) ListActiveComponents(ctx context.Context, structureID string) ([]compensation.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, structure_id, name, component_type, is_percentage, value, is_taxable, is_active, created_at
		FROM salary_components
		WHERE structure_id = $1 AND is_active
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, structureID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	defer rows.Close()

	var components []compensation.SalaryComponent
	for rows.Next() {
		var c compensation.SalaryComponent
		if err := rows.Scan(
			&c.ID, &c.StructureID, &c.Name, &c.ComponentType, &c.IsPercentage, &c.Value,
			&c.IsTaxable, &c.IsActive, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary components: %w", err)
	}
	return components, nil
}

// ========== INCENTIVES ==========

type incentiveRepository struct {
	db *database.DB
}

func NewIncentiveRepository(db *database.DB) compensation.IncentiveRepository {
	return &incentiveRepository{db: db}
}

func (r *incentiveRepository) ListByEmployee(ctx context.Context, employeeID string, year *int) ([]compensation.Incentive, error) {
	query := `
		SELECT id, employee_id, incentive_type, amount, date_awarded, description
		FROM employee_incentives
		WHERE employee_id = $1
		  AND ($2::int IS NULL OR EXTRACT(YEAR FROM date_awarded) = $2::int)
		ORDER BY date_awarded, id
	`
	return r.query(ctx, query, employeeID, year)
}

func (r *incentiveRepository) List(ctx context.Context, year *int) ([]compensation.Incentive, error) {
	query := `
		SELECT id, employee_id, incentive_type, amount, date_awarded, description
		FROM employee_incentives
		WHERE $1::int IS NULL OR EXTRACT(YEAR FROM date_awarded) = $1::int
		ORDER BY employee_id, date_awarded, id
	`
	return r.query(ctx, query, year)
}

func (r *incentiveRepository) query(ctx context.Context, query string, args ...any) ([]compensation.Incentive, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentives: %w", err)
	}
	defer rows.Close()

	var incentives []compensation.Incentive
	for rows.Next() {
		var i compensation.Incentive
		if err := rows.Scan(&i.ID, &i.EmployeeID, &i.IncentiveType, &i.Amount, &i.DateAwarded, &i.Description); err != nil {
			return nil, fmt.Errorf("failed to scan incentive: %w", err)
		}
		incentives = append(incentives, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incentives: %w", err)
	}
	return incentives, nil
}

// ========== BENEFITS ==========

type benefitRepository struct {
	db *database.DB
}

func NewBenefitRepository(db *database.DB) compensation.BenefitRepository {
	return &benefitRepository{db: db}
}

const activeEnrollmentQuery = `
	SELECT eb.id, eb.employee_id, eb.benefit_id, eb.enrollment_date, eb.end_date, eb.status,
		   b.id, b.name, b.category, b.employer_contribution, b.employer_contribution_pct,
		   b.employee_contribution, b.is_active
	FROM employee_benefits eb
	JOIN benefits b ON b.id = eb.benefit_id
	WHERE eb.status = 'Active'
	  AND b.is_active
	  AND eb.enrollment_date <= $1
	  AND (eb.end_date IS NULL OR eb.end_date >= $1)
`

func (r *benefitRepository) ListActiveEnrollments(ctx context.Context, employeeID string, asOf time.Time) ([]compensation.EmployeeBenefit, error) {
	query := activeEnrollmentQuery + ` AND eb.employee_id = $2 ORDER BY eb.enrollment_date, eb.id`
	return r.query(ctx, query, asOf, employeeID)
}

func (r *benefitRepository) ListAllActiveEnrollments(ctx context.Context, asOf time.Time) ([]compensation.EmployeeBenefit, error) {
	query := activeEnrollmentQuery + ` ORDER BY eb.employee_id, eb.enrollment_date, eb.id`
	return r.query(ctx, query, asOf)
}

func (r *benefitRepository) query(ctx context.Context, query string, args ...any) ([]compensation.EmployeeBenefit, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefit enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []compensation.EmployeeBenefit
	for rows.Next() {
		var eb compensation.EmployeeBenefit
		if err := rows.Scan(
			&eb.ID, &eb.EmployeeID, &eb.BenefitID, &eb.EnrollmentDate, &eb.EndDate, &eb.Status,
			&eb.Benefit.ID, &eb.Benefit.Name, &eb.Benefit.Category, &eb.Benefit.EmployerContribution,
			&eb.Benefit.EmployerContributionPct, &eb.Benefit.EmployeeContribution, &eb.Benefit.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan benefit enrollment: %w", err)
		}
		enrollments = append(enrollments, eb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate benefit enrollments: %w", err)
	}
	return enrollments, nil
}
