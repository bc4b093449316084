package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ========== LEAVE TYPES ==========

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

func (r *leaveTypeRepository) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, is_paid, is_active, created_at
		FROM leave_types
		WHERE id = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(&lt.ID, &lt.Name, &lt.Description, &lt.IsPaid, &lt.IsActive, &lt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", err)
	}
	return lt, nil
}

func (r *leaveTypeRepository) ListPaid(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, is_paid, is_active, created_at
		FROM leave_types
		WHERE is_paid AND is_active
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.Description, &lt.IsPaid, &lt.IsActive, &lt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave types: %w", err)
	}
	return types, nil
}

// ========== LEAVE BALANCES ==========

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

const leaveBalanceColumns = `
	lb.id, lb.employee_id, lb.leave_type_id, lb.year, lb.total_hours, lb.used_hours,
	lb.accrual_rate, lb.created_at, lb.updated_at,
	(SELECT lt.name FROM leave_types lt WHERE lt.id = lb.leave_type_id)`

func scanLeaveBalance(row rowScanner) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.TotalHours, &b.UsedHours,
		&b.AccrualRate, &b.CreatedAt, &b.UpdatedAt, &b.LeaveTypeName,
	)
	return b, err
}

// GetOrCreate inserts the seed unless the row already exists, then reads the
// row. A concurrent insert of the same key blocks on the unique index and
// ends up reading the winner's row.
func (r *leaveBalanceRepository) GetOrCreate(ctx context.Context, seed leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	if seed.ID == "" {
		seed.ID = newID()
	}

	_, err := q.Exec(ctx, `
		INSERT INTO leave_balances (id, employee_id, leave_type_id, year, total_hours, used_hours, accrual_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, leave_type_id, year) DO NOTHING
	`, seed.ID, seed.EmployeeID, seed.LeaveTypeID, seed.Year, seed.TotalHours, seed.UsedHours, seed.AccrualRate)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	query := `SELECT ` + leaveBalanceColumns + `
		FROM leave_balances lb
		WHERE lb.employee_id = $1 AND lb.leave_type_id = $2 AND lb.year = $3`

	b, err := scanLeaveBalance(q.QueryRow(ctx, query, seed.EmployeeID, seed.LeaveTypeID, seed.Year))
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	return b, nil
}

func (r *leaveBalanceRepository) ApplyAccrual(ctx context.Context, id string, rate, hours decimal.Decimal) (leave.LeaveBalance, error) {
	query := `
		UPDATE leave_balances lb
		SET accrual_rate = $2, total_hours = lb.total_hours + $3, updated_at = NOW()
		WHERE lb.id = $1
		RETURNING ` + leaveBalanceColumns
	return r.update(ctx, query, id, rate, hours)
}

func (r *leaveBalanceRepository) AddUsedHours(ctx context.Context, id string, hours decimal.Decimal) (leave.LeaveBalance, error) {
	query := `
		UPDATE leave_balances lb
		SET used_hours = lb.used_hours + $2, updated_at = NOW()
		WHERE lb.id = $1
		RETURNING ` + leaveBalanceColumns
	return r.update(ctx, query, id, hours)
}

func (r *leaveBalanceRepository) update(ctx context.Context, query string, args ...any) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanLeaveBalance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to update leave balance: %w", err)
	}
	return b, nil
}

func (r *leaveBalanceRepository) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveBalanceColumns + `
		FROM leave_balances lb
		JOIN leave_types t ON t.id = lb.leave_type_id
		WHERE lb.employee_id = $1 AND lb.year = $2
		ORDER BY t.name`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		b, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave balances: %w", err)
	}
	return balances, nil
}

// ========== LEAVE REQUESTS ==========

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	id, employee_id, leave_type_id, start_date, end_date, include_weekends, reason,
	status, reviewed_by, reviewed_at, rejection_reason, created_at, updated_at`

func scanLeaveRequest(row rowScanner) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate, &lr.IncludeWeekends, &lr.Reason,
		&lr.Status, &lr.ReviewedBy, &lr.ReviewedAt, &lr.RejectionReason, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, req leave.LeaveRequest, from leave.RequestStatus) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3, reviewed_by = $4, reviewed_at = $5, rejection_reason = $6, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + leaveRequestColumns

	updated, err := scanLeaveRequest(q.QueryRow(ctx, query,
		req.ID, from, req.Status, req.ReviewedBy, req.ReviewedAt, req.RejectionReason,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, req.ID); getErr != nil {
				return leave.LeaveRequest{}, getErr
			}
			return leave.LeaveRequest{}, leave.ErrInvalidState
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return updated, nil
}
