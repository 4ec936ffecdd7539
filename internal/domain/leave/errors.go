package leave

import "errors"

var (
	ErrStartDateNotFuture    = errors.New("leave can only be requested for tomorrow or later")
	ErrEndBeforeStart        = errors.New("end date must be on or after start date")
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
)
