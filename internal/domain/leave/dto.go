package leave

import (
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Remarks   string `json:"remarks"`
}

// Validate checks presence and format only; the date window rule needs a
// clock and is applied by the service through ValidateDateRange.
func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs.Add("leave_type", "leave_type is required")
	} else if !LeaveType(r.LeaveType).IsValid() {
		errs.Add("leave_type", "leave_type must be one of Paid, Sick, Unpaid")
	}

	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}

	if validator.IsEmpty(r.EndDate) {
		errs.Add("end_date", "end_date is required")
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}

	if len(r.Remarks) > 1000 {
		errs.Add("remarks", "remarks must not exceed 1000 characters")
	}

	return errs.Err()
}

type ListLeaveQuery struct {
	EmployeeID string
	Status     string
	StartDate  string
	EndDate    string
}

func (q *ListLeaveQuery) Validate() error {
	var errs validator.ValidationErrors
	if q.EmployeeID != "" && !validator.IsValidUUID(q.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if q.Status != "" && !LeaveRequestStatus(q.Status).IsValid() {
		errs.Add("status", "status must be one of Pending, Approved, Rejected")
	}
	if q.StartDate != "" {
		if _, ok := validator.IsValidDate(q.StartDate); !ok {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if q.EndDate != "" {
		if _, ok := validator.IsValidDate(q.EndDate); !ok {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}

type UpdateStatusRequest struct {
	ID               string `json:"-"`
	Status           string `json:"status"`
	ApprovalComments string `json:"approval_comments"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if !LeaveRequestStatus(r.Status).IsDecision() {
		errs.Add("status", "status must be Approved or Rejected")
	}
	if len(r.ApprovalComments) > 1000 {
		errs.Add("approval_comments", "approval_comments must not exceed 1000 characters")
	}
	return errs.Err()
}

type LeaveRequestResponse struct {
	ID               string             `json:"id"`
	EmployeeID       string             `json:"employee_id"`
	Employee         *employee.Summary  `json:"employee,omitempty"`
	LeaveType        LeaveType          `json:"leave_type"`
	StartDate        string             `json:"start_date"`
	EndDate          string             `json:"end_date"`
	TotalDays        int                `json:"total_days"`
	Remarks          string             `json:"remarks"`
	Status           LeaveRequestStatus `json:"status"`
	ApprovedBy       *employee.Summary  `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time         `json:"approved_at,omitempty"`
	ApprovalComments string             `json:"approval_comments"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:               l.ID,
		EmployeeID:       l.EmployeeID,
		Employee:         l.Employee,
		LeaveType:        l.LeaveType,
		StartDate:        l.StartDate.Format(validator.DateLayout),
		EndDate:          l.EndDate.Format(validator.DateLayout),
		TotalDays:        l.TotalDays,
		Remarks:          l.Remarks,
		Status:           l.Status,
		ApprovedBy:       l.Approver,
		ApprovedAt:       l.ApprovedAt,
		ApprovalComments: l.ApprovalComments,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
	if resp.ApprovedBy == nil && l.ApprovedBy != nil {
		resp.ApprovedBy = &employee.Summary{ID: *l.ApprovedBy}
	}
	return resp
}
