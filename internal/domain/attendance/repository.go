package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the attendance record store. Implementations enforce
// uniqueness of (employee_id, work_date) and report violations as ErrAttendanceExists.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID returns ErrAttendanceNotFound when missing. The employee summary is populated.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil when the employee has no record for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update overwrites every mutable column of the record.
	Update(ctx context.Context, attendance Attendance) error

	// List returns records ordered by date descending with employee summaries.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
}

// ListFilter selects records whose date lies in [From, To]. A zero bound is
// open; empty EmployeeID means all employees.
type ListFilter struct {
	EmployeeID string
	From       time.Time
	To         time.Time
}
