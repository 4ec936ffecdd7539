package leave

import (
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "Paid"
	LeaveTypeSick   LeaveType = "Sick"
	LeaveTypeUnpaid LeaveType = "Unpaid"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypePaid, LeaveTypeSick, LeaveTypeUnpaid:
		return true
	}
	return false
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

func (s LeaveRequestStatus) IsValid() bool {
	switch s {
	case LeaveRequestStatusPending, LeaveRequestStatusApproved, LeaveRequestStatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s is a terminal status a reviewer may set.
func (s LeaveRequestStatus) IsDecision() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// LeaveRequest entity. StartDate and EndDate are local midnights.
type LeaveRequest struct {
	ID               string
	EmployeeID       string
	LeaveType        LeaveType
	StartDate        time.Time
	EndDate          time.Time
	TotalDays        int
	Remarks          string
	Status           LeaveRequestStatus
	ApprovedBy       *string
	ApprovedAt       *time.Time
	ApprovalComments string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Join
	Employee *employee.Summary
	Approver *employee.Summary
}
