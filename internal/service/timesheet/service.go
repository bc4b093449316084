package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
)

type TimesheetServiceImpl struct {
	tx      database.Transactor
	repo    timesheet.TimesheetRepository
	accrual leave.AccrualService
	now     func() time.Time
}

func NewTimesheetService(tx database.Transactor, repo timesheet.TimesheetRepository, accrual leave.AccrualService) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		tx:      tx,
		repo:    repo,
		accrual: accrual,
		now:     time.Now,
	}
}

func (s *TimesheetServiceImpl) Submit(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !current.TotalHours.IsPositive() {
		return timesheet.TimesheetResponse{}, timesheet.ErrEmptyTimesheet
	}
	ts, err := s.transition(ctx, current, timesheet.StatusSubmitted, nil)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.NewTimesheetResponse(ts), nil
}

// Approve moves a Submitted timesheet to Approved and accrues leave in the
// same transaction. Approved is terminal, so accrual runs at most once per
// timesheet.
func (s *TimesheetServiceImpl) Approve(ctx context.Context, req timesheet.ReviewTimesheetRequest) (timesheet.TimesheetResponse, error) {
	var resp timesheet.TimesheetResponse

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		ts, err := s.transition(ctx, current, timesheet.StatusApproved, &req.ReviewerID)
		if err != nil {
			return err
		}

		accrued, err := s.accrual.AccrueLeaveFromTimesheet(ctx, ts.ID)
		if err != nil {
			return fmt.Errorf("failed to accrue leave: %w", err)
		}

		resp = timesheet.NewTimesheetResponse(ts)
		resp.LeaveAccrued = accrued
		return nil
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	slog.InfoContext(ctx, "timesheet approved", "timesheet_id", resp.ID, "reviewer_id", req.ReviewerID)
	return resp, nil
}

func (s *TimesheetServiceImpl) Reject(ctx context.Context, req timesheet.ReviewTimesheetRequest) (timesheet.TimesheetResponse, error) {
	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	ts, err := s.transition(ctx, current, timesheet.StatusRejected, &req.ReviewerID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.NewTimesheetResponse(ts), nil
}

// Reopen sends a Rejected timesheet back to Draft for correction.
func (s *TimesheetServiceImpl) Reopen(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	ts, err := s.transition(ctx, current, timesheet.StatusDraft, nil)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.NewTimesheetResponse(ts), nil
}

// transition checks the move against the state machine, then applies it as
// a compare-and-set on the status read in current.
func (s *TimesheetServiceImpl) transition(ctx context.Context, current timesheet.Timesheet, to timesheet.Status, actorID *string) (timesheet.Timesheet, error) {
	if !timesheet.CanTransition(current.Status, to) {
		return timesheet.Timesheet{}, timesheet.ErrInvalidState
	}
	return s.repo.TransitionStatus(ctx, current.ID, current.Status, to, actorID, s.now().UTC())
}
