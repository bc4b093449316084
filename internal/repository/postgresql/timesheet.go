package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, pay_period_id, status, submitted_at, reviewed_at, reviewed_by,
			   created_at, updated_at
		FROM timesheets
		WHERE id = $1
	`

	var t timesheet.Timesheet
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.EmployeeID, &t.PayPeriodID, &t.Status, &t.SubmittedAt, &t.ReviewedAt, &t.ReviewedBy,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, timesheet_id, work_date, hours, description
		FROM time_entries
		WHERE timesheet_id = $1
		ORDER BY work_date, id
	`, id)
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e timesheet.TimeEntry
		if err := rows.Scan(&e.ID, &e.TimesheetID, &e.WorkDate, &e.Hours, &e.Description); err != nil {
			return timesheet.Timesheet{}, fmt.Errorf("failed to scan time entry: %w", err)
		}
		t.Entries = append(t.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to iterate time entries: %w", err)
	}

	t.TotalHours = timesheet.SumHours(t.Entries)
	return t, nil
}

// TransitionStatus stamps submitted_at on submission and the reviewer on
// approval or rejection. Other stamps are left as they were.
func (r *timesheetRepository) TransitionStatus(ctx context.Context, id string, from, to timesheet.Status, actorID *string, at time.Time) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	var submittedAt, reviewedAt *time.Time
	var reviewedBy *string
	switch to {
	case timesheet.StatusSubmitted:
		submittedAt = &at
	case timesheet.StatusApproved, timesheet.StatusRejected:
		reviewedAt = &at
		reviewedBy = actorID
	}

	tag, err := q.Exec(ctx, `
		UPDATE timesheets
		SET status = $3,
			submitted_at = COALESCE($4, submitted_at),
			reviewed_at = COALESCE($5, reviewed_at),
			reviewed_by = COALESCE($6, reviewed_by),
			updated_at = NOW()
		WHERE id = $1 AND status = $2
	`, id, from, to, submittedAt, reviewedAt, reviewedBy)
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to update timesheet status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return timesheet.Timesheet{}, err
		}
		return timesheet.Timesheet{}, timesheet.ErrInvalidState
	}
	return r.GetByID(ctx, id)
}
