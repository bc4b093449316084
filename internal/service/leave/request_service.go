package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type RequestServiceImpl struct {
	tx          database.Transactor
	requestRepo leave.LeaveRequestRepository
	balanceRepo leave.LeaveBalanceRepository
	hoursPerDay decimal.Decimal
	now         func() time.Time
}

func NewRequestService(
	tx database.Transactor,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	hoursPerDay decimal.Decimal,
) leave.RequestService {
	if !hoursPerDay.IsPositive() {
		hoursPerDay = leave.DefaultHoursPerDay
	}
	return &RequestServiceImpl{
		tx:          tx,
		requestRepo: requestRepo,
		balanceRepo: balanceRepo,
		hoursPerDay: hoursPerDay,
		now:         time.Now,
	}
}

// ApproveLeaveRequest approves a Pending request and debits the requested
// hours from the current year's balance. A missing balance is created with
// exactly the requested hours, so the debit never drives it negative.
func (s *RequestServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestReviewResponse, error) {
	var resp leave.LeaveRequestReviewResponse

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.requestRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if request.Status != leave.RequestPending {
			return leave.ErrInvalidState
		}

		days := leave.CalculateLeaveDays(request.StartDate, request.EndDate, request.IncludeWeekends)
		hours := leave.LeaveHours(days, s.hoursPerDay)

		now := s.now()
		request.Status = leave.RequestApproved
		request.ReviewedBy = &req.ReviewerID
		request.ReviewedAt = &now
		updated, err := s.requestRepo.UpdateStatus(ctx, request, leave.RequestPending)
		if err != nil {
			return err
		}

		balance, err := s.balanceRepo.GetOrCreate(ctx, leave.LeaveBalance{
			EmployeeID:  request.EmployeeID,
			LeaveTypeID: request.LeaveTypeID,
			Year:        now.Year(),
			TotalHours:  hours,
		})
		if err != nil {
			return fmt.Errorf("failed to get leave balance: %w", err)
		}
		balance, err = s.balanceRepo.AddUsedHours(ctx, balance.ID, hours)
		if err != nil {
			return fmt.Errorf("failed to debit leave balance: %w", err)
		}

		b := leave.NewBalanceResponse(balance)
		resp = leave.LeaveRequestReviewResponse{
			ID:            updated.ID,
			Status:        string(updated.Status),
			DaysRequested: days,
			HoursDebited:  hours,
			Balance:       &b,
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestReviewResponse{}, err
	}

	slog.InfoContext(ctx, "leave request approved",
		"request_id", resp.ID,
		"reviewer_id", req.ReviewerID,
		"hours", resp.HoursDebited.String(),
	)
	return resp, nil
}

func (s *RequestServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestReviewResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestReviewResponse{}, err
	}
	if request.Status != leave.RequestPending {
		return leave.LeaveRequestReviewResponse{}, leave.ErrInvalidState
	}

	now := s.now()
	request.Status = leave.RequestRejected
	request.ReviewedBy = &req.ReviewerID
	request.ReviewedAt = &now
	request.RejectionReason = req.RejectionReason
	updated, err := s.requestRepo.UpdateStatus(ctx, request, leave.RequestPending)
	if err != nil {
		return leave.LeaveRequestReviewResponse{}, err
	}

	return leave.LeaveRequestReviewResponse{
		ID:            updated.ID,
		Status:        string(updated.Status),
		DaysRequested: leave.CalculateLeaveDays(updated.StartDate, updated.EndDate, updated.IncludeWeekends),
		HoursDebited:  decimal.Zero,
	}, nil
}

func (s *RequestServiceImpl) ListBalances(ctx context.Context, employeeID string, year int) ([]leave.BalanceResponse, error) {
	balances, err := s.balanceRepo.ListByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	out := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, leave.NewBalanceResponse(b))
	}
	return out, nil
}
