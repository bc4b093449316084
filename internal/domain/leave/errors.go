package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveBalanceNotFound = errors.New("leave balance not found")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidState         = errors.New("leave request is not in a valid state for this operation")
)
