package postgresqltest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll/internal/repository/postgresql"
	"github.com/google/uuid"
)

// TestDatabaseSetup wraps a migrated test database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies migrations. It
// returns nil, nil when the variable is unset.
func NewTestDatabase(ctx context.Context) (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(dsn, database.PoolOptions{MaxConns: 10})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	if err := postgresql.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables removes every row written by the tests.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	_, err := t.DB.Exec(ctx, `
		TRUNCATE TABLE
			time_entries, timesheets, leave_requests, leave_balances, leave_types,
			payroll_entries, payrolls, pay_periods, employee_benefits, benefits,
			employee_incentives, employee_compensations, salary_components,
			salary_structures, employees
		CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

// InsertEmployee writes a minimal active employee and returns its id.
func (t *TestDatabaseSetup) InsertEmployee(ctx context.Context, code, firstName, lastName string, hired time.Time) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	_, err := t.DB.Exec(ctx, `
		INSERT INTO employees (id, employee_code, first_name, last_name, hire_date)
		VALUES ($1, $2, $3, $4, $5)
	`, id, code, firstName, lastName, hired)
	if err != nil {
		return "", fmt.Errorf("failed to insert employee: %w", err)
	}
	return id, nil
}

// InsertLeaveType writes a paid, active leave type and returns its id.
func (t *TestDatabaseSetup) InsertLeaveType(ctx context.Context, name string) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	_, err := t.DB.Exec(ctx, `INSERT INTO leave_types (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		return "", fmt.Errorf("failed to insert leave type: %w", err)
	}
	return id, nil
}

// Close closes the database pool.
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
