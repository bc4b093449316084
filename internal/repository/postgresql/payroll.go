package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ========== PAY PERIODS ==========

type payPeriodRepository struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payroll.PayPeriodRepository {
	return &payPeriodRepository{db: db}
}

const payPeriodColumns = `id, start_date, end_date, payment_date, status, created_at, updated_at`

func scanPayPeriod(row rowScanner) (payroll.PayPeriod, error) {
	var p payroll.PayPeriod
	err := row.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.PaymentDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// periodWriteError maps constraint failures on pay_periods to domain errors.
func periodWriteError(action string, err error) error {
	switch {
	case constraintViolation(err, codeExclusionViolation, "pay_periods_no_overlap"):
		return payroll.ErrPeriodOverlap
	case constraintViolation(err, codeCheckViolation, "pay_periods_dates_check"):
		return payroll.ErrInvalidPeriodDates
	}
	return fmt.Errorf("failed to %s pay period: %w", action, err)
}

func (r *payPeriodRepository) Create(ctx context.Context, period payroll.PayPeriod) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	if period.ID == "" {
		period.ID = newID()
	}
	if period.Status == "" {
		period.Status = payroll.PeriodDraft
	}

	query := `
		INSERT INTO pay_periods (id, start_date, end_date, payment_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + payPeriodColumns

	created, err := scanPayPeriod(q.QueryRow(ctx, query,
		period.ID, period.StartDate, period.EndDate, period.PaymentDate, period.Status,
	))
	if err != nil {
		return payroll.PayPeriod{}, periodWriteError("create", err)
	}
	return created, nil
}

func (r *payPeriodRepository) GetByID(ctx context.Context, id string) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payPeriodColumns + ` FROM pay_periods WHERE id = $1`

	p, err := scanPayPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to get pay period: %w", err)
	}
	return p, nil
}

func (r *payPeriodRepository) List(ctx context.Context) ([]payroll.PayPeriod, error) {
	query := `SELECT ` + payPeriodColumns + ` FROM pay_periods ORDER BY start_date`
	return r.query(ctx, query)
}

func (r *payPeriodRepository) GetLatest(ctx context.Context) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payPeriodColumns + ` FROM pay_periods ORDER BY end_date DESC LIMIT 1`

	p, err := scanPayPeriod(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to get latest pay period: %w", err)
	}
	return p, nil
}

func (r *payPeriodRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]payroll.PayPeriod, error) {
	query := `SELECT ` + payPeriodColumns + `
		FROM pay_periods
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date`
	return r.query(ctx, query, start, end)
}

func (r *payPeriodRepository) CountStartingInYear(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM pay_periods WHERE EXTRACT(YEAR FROM start_date) = $1`, year,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pay periods: %w", err)
	}
	return count, nil
}

func (r *payPeriodRepository) UpdateDates(ctx context.Context, period payroll.PayPeriod) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_periods
		SET start_date = $2, end_date = $3, payment_date = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'Draft'
		RETURNING ` + payPeriodColumns

	updated, err := scanPayPeriod(q.QueryRow(ctx, query,
		period.ID, period.StartDate, period.EndDate, period.PaymentDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayPeriod{}, r.missOrState(ctx, period.ID)
		}
		return payroll.PayPeriod{}, periodWriteError("update", err)
	}
	return updated, nil
}

func (r *payPeriodRepository) TransitionStatus(ctx context.Context, id string, from, to payroll.PeriodStatus) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_periods
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + payPeriodColumns

	updated, err := scanPayPeriod(q.QueryRow(ctx, query, id, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayPeriod{}, r.missOrState(ctx, id)
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to update pay period status: %w", err)
	}
	return updated, nil
}

// LockCalendar takes a table lock that conflicts with itself and with every
// write, held until the surrounding transaction ends.
func (r *payPeriodRepository) LockCalendar(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `LOCK TABLE pay_periods IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("failed to lock pay period calendar: %w", err)
	}
	return nil
}

// missOrState tells a missing period apart from one in the wrong status after
// a conditional update matched nothing.
func (r *payPeriodRepository) missOrState(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return payroll.ErrInvalidState
}

func (r *payPeriodRepository) query(ctx context.Context, query string, args ...any) ([]payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayPeriod
	for rows.Next() {
		p, err := scanPayPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pay periods: %w", err)
	}
	return periods, nil
}

// ========== PAYROLLS ==========

type payrollRepository struct {
	db *database.DB
	tx database.Transactor
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db, tx: NewTransactor(db)}
}

const payrollColumns = `
	id, employee_id, pay_period_id, gross_pay, tax_amount, total_deductions,
	net_pay, status, created_at, updated_at`

func scanPayroll(row rowScanner) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PayPeriodID, &p.GrossPay, &p.TaxAmount, &p.TotalDeductions,
		&p.NetPay, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create writes the header and its entries in one transaction, joining the
// caller's when there is one.
func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	var created payroll.Payroll
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if p.ID == "" {
			p.ID = newID()
		}
		if p.Status == "" {
			p.Status = payroll.PayrollPending
		}

		query := `
			INSERT INTO payrolls (
				id, employee_id, pay_period_id, gross_pay, tax_amount,
				total_deductions, net_pay, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING ` + payrollColumns

		var err error
		created, err = scanPayroll(q.QueryRow(ctx, query,
			p.ID, p.EmployeeID, p.PayPeriodID, p.GrossPay, p.TaxAmount,
			p.TotalDeductions, p.NetPay, p.Status,
		))
		if err != nil {
			if constraintViolation(err, codeUniqueViolation, "payrolls_employee_period_key") {
				return payroll.ErrPayrollExists
			}
			return fmt.Errorf("failed to create payroll: %w", err)
		}

		entryQuery := `
			INSERT INTO payroll_entries (
				id, payroll_id, position, component_name, type, amount,
				is_recurring, is_manual_adjustment
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		created.Entries = make([]payroll.PayrollEntry, len(p.Entries))
		for i, e := range p.Entries {
			e.ID = newID()
			e.PayrollID = created.ID
			e.Position = i + 1
			if _, err := q.Exec(ctx, entryQuery,
				e.ID, e.PayrollID, e.Position, e.ComponentName, e.Type, e.Amount,
				e.IsRecurring, e.IsManualAdjustment,
			); err != nil {
				return fmt.Errorf("failed to create payroll entry %q: %w", e.ComponentName, err)
			}
			created.Entries[i] = e
		}
		return nil
	})
	if err != nil {
		return payroll.Payroll{}, err
	}
	return created, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE id = $1`

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	entries, err := r.entriesFor(ctx, []string{p.ID})
	if err != nil {
		return payroll.Payroll{}, err
	}
	p.Entries = entries[p.ID]
	return p, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, periodID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE pay_period_id = $1
		ORDER BY employee_id`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	var ids []string
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payrolls: %w", err)
	}
	rows.Close()

	if len(ids) == 0 {
		return payrolls, nil
	}
	entries, err := r.entriesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range payrolls {
		payrolls[i].Entries = entries[payrolls[i].ID]
	}
	return payrolls, nil
}

func (r *payrollRepository) entriesFor(ctx context.Context, payrollIDs []string) (map[string][]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, position, component_name, type, amount, is_recurring, is_manual_adjustment
		FROM payroll_entries
		WHERE payroll_id = ANY($1::uuid[])
		ORDER BY payroll_id, position
	`

	rows, err := q.Query(ctx, query, payrollIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string][]payroll.PayrollEntry, len(payrollIDs))
	for rows.Next() {
		var e payroll.PayrollEntry
		if err := rows.Scan(
			&e.ID, &e.PayrollID, &e.Position, &e.ComponentName, &e.Type, &e.Amount,
			&e.IsRecurring, &e.IsManualAdjustment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries[e.PayrollID] = append(entries[e.PayrollID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll entries: %w", err)
	}
	return entries, nil
}

func (r *payrollRepository) ListEmployeeIDsByPeriod(ctx context.Context, periodID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM payrolls WHERE pay_period_id = $1 ORDER BY employee_id`, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll employees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan payroll employee: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll employees: %w", err)
	}
	return ids, nil
}

func (r *payrollRepository) UpdateStatusByPeriod(ctx context.Context, periodID string, from, to payroll.PayrollStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payrolls
		SET status = $3, updated_at = NOW()
		WHERE pay_period_id = $1 AND status = $2
	`, periodID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to update payroll status: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *payrollRepository) SumGrossByPeriod(ctx context.Context, periodID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(gross_pay), 0) FROM payrolls WHERE pay_period_id = $1`, periodID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payroll gross: %w", err)
	}
	return total, nil
}
