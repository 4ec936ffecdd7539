package report

import (
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT
// ========================================

// AttendanceReportQuery narrows the report. The date window applies only when
// both bounds are given; otherwise every record in scope is counted.
type AttendanceReportQuery struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (q *AttendanceReportQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.EmployeeID != "" && !validator.IsValidUUID(q.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	start, startOK := validator.IsValidDate(q.StartDate)
	if q.StartDate != "" && !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(q.EndDate)
	if q.EndDate != "" && !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must be on or after start_date")
	}

	return errs.Err()
}

type AttendanceReport struct {
	TotalDays         int                             `json:"total_days"`
	Present           int                             `json:"present"`
	Absent            int                             `json:"absent"`
	HalfDay           int                             `json:"half_day"`
	OnLeave           int                             `json:"on_leave"`
	TotalWorkingHours float64                         `json:"total_working_hours"`
	Records           []attendance.AttendanceResponse `json:"records"`
}

// ExportFile is a rendered report ready to be streamed as a download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ========================================
// DASHBOARD
// ========================================

type DashboardStats struct {
	TotalEmployees  int64                        `json:"total_employees"`
	TodayAttendance int64                        `json:"today_attendance"`
	PendingLeaves   int64                        `json:"pending_leaves"`
	RecentLeaves    []leave.LeaveRequestResponse `json:"recent_leaves"`
}

// RecentLeavesLimit caps the pending requests shown on the dashboard.
const RecentLeavesLimit = 5
