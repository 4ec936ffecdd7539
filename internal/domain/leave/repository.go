package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, leaveRequest LeaveRequest) (LeaveRequest, error)

	// GetByID returns ErrLeaveRequestNotFound when missing.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Decide moves a Pending request to a terminal status. It returns
	// ErrLeaveAlreadyProcessed when the request is no longer Pending.
	Decide(ctx context.Context, id string, decision Decision) error

	// List returns requests newest first with employee and approver summaries.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// CountPending counts Pending requests, optionally for one employee.
	CountPending(ctx context.Context, employeeID string) (int64, error)
}

type Decision struct {
	Status           LeaveRequestStatus
	ApprovedBy       string
	ApprovedAt       time.Time
	ApprovalComments string
}

// LeaveRequestFilter narrows List. A window matches requests that overlap
// [From, To]; both must be set for the window to apply.
type LeaveRequestFilter struct {
	EmployeeID string
	Status     LeaveRequestStatus
	From       *time.Time
	To         *time.Time
	Limit      int
}
