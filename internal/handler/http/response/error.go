package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/user"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, user.ErrInvalidToken), errors.Is(err, user.ErrUnknownRole):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, err.Error())

	// Employee & compensation
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, err.Error())
	case errors.Is(err, compensation.ErrMissingCompensation):
		NotFound(w, "No current compensation record")
	case errors.Is(err, compensation.ErrSalaryStructureNotFound):
		NotFound(w, "Salary structure not found")

	// Payroll
	case errors.Is(err, payroll.ErrPayPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrInvalidState),
		errors.Is(err, payroll.ErrPeriodOverlap),
		errors.Is(err, payroll.ErrPayrollExists),
		errors.Is(err, payroll.ErrAnnualPeriodsExist):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidPeriodDates),
		errors.Is(err, payroll.ErrInvalidPaymentDate),
		errors.Is(err, payroll.ErrNoPeriods):
		BadRequest(w, err.Error(), nil)

	// Timesheet
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrInvalidState):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrEmptyTimesheet):
		BadRequest(w, err.Error(), nil)

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidState):
		Conflict(w, "Leave request already processed")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
