package attendance

import (
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/validator"
)

// MaxDailyHours bounds the hour figures an override may store on one record.
const MaxDailyHours = 24.0

// ========================================
// REQUESTS
// ========================================

type CheckInRequest struct {
	EmployeeID string `json:"-"`
	Location   string `json:"location"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if len(r.Location) > 255 {
		errs.Add("location", "location must not exceed 255 characters")
	}
	return errs.Err()
}

type CheckOutRequest struct {
	EmployeeID string `json:"-"`
	Location   string `json:"location"`
	Overtime   bool   `json:"overtime"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if len(r.Location) > 255 {
		errs.Add("location", "location must not exceed 255 characters")
	}
	return errs.Err()
}

type ListAttendanceQuery struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (q *ListAttendanceQuery) Validate() error {
	var errs validator.ValidationErrors
	if q.EmployeeID != "" && !validator.IsValidUUID(q.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
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

// AdminOverrideRequest is a partial overwrite; nil fields are left untouched.
// Only the shape of each field is checked.
type AdminOverrideRequest struct {
	Date             *string  `json:"date"`
	CheckInTime      *string  `json:"check_in_time"`
	CheckInLocation  *string  `json:"check_in_location"`
	CheckOutTime     *string  `json:"check_out_time"`
	CheckOutLocation *string  `json:"check_out_location"`
	Status           *string  `json:"status"`
	WorkingHours     *float64 `json:"working_hours"`
	Overtime         *bool    `json:"overtime"`
	OvertimeHours    *float64 `json:"overtime_hours"`
	Remarks          *string  `json:"remarks"`
}

func (r *AdminOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if r.CheckInTime != nil && *r.CheckInTime != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs.Add("check_in_time", "check_in_time must be an RFC3339 timestamp")
		}
	}
	if r.CheckOutTime != nil && *r.CheckOutTime != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs.Add("check_out_time", "check_out_time must be an RFC3339 timestamp")
		}
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs.Add("status", "status must be one of Present, Absent, Half-day, Leave")
	}
	if r.WorkingHours != nil && (*r.WorkingHours < 0 || *r.WorkingHours > MaxDailyHours) {
		errs.Add("working_hours", "working_hours must be between 0 and 24")
	}
	if r.OvertimeHours != nil && (*r.OvertimeHours < 0 || *r.OvertimeHours > MaxDailyHours) {
		errs.Add("overtime_hours", "overtime_hours must be between 0 and 24")
	}

	return errs.Err()
}

// ========================================
// RESPONSES
// ========================================

type PunchResponse struct {
	Time     *time.Time `json:"time"`
	Location string     `json:"location"`
}

type AttendanceResponse struct {
	ID            string            `json:"id"`
	EmployeeID    string            `json:"employee_id"`
	Employee      *employee.Summary `json:"employee,omitempty"`
	Date          string            `json:"date"`
	CheckIn       PunchResponse     `json:"check_in"`
	CheckOut      PunchResponse     `json:"check_out"`
	Status        Status            `json:"status"`
	WorkingHours  float64           `json:"working_hours"`
	Overtime      bool              `json:"overtime"`
	OvertimeHours float64           `json:"overtime_hours"`
	Remarks       string            `json:"remarks"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Employee:      a.Employee,
		Date:          a.Date.Format(validator.DateLayout),
		CheckIn:       PunchResponse{Time: a.CheckIn.Time, Location: a.CheckIn.Location},
		CheckOut:      PunchResponse{Time: a.CheckOut.Time, Location: a.CheckOut.Location},
		Status:        a.Status,
		WorkingHours:  a.WorkingHours,
		Overtime:      a.Overtime,
		OvertimeHours: a.OvertimeHours,
		Remarks:       a.Remarks,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// StatusResponse describes today's attendance for one employee. CurrentHours is
// live while the session is open; WorkingHours is set once checked out.
type StatusResponse struct {
	CheckedIn     bool       `json:"checked_in"`
	CheckedOut    bool       `json:"checked_out"`
	CheckInTime   *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
	CurrentHours  float64    `json:"current_hours"`
	WorkingHours  *float64   `json:"working_hours,omitempty"`
	Overtime      *bool      `json:"overtime,omitempty"`
	OvertimeHours *float64   `json:"overtime_hours,omitempty"`
}
