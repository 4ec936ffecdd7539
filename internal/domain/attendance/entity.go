package attendance

import (
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half-day"
	StatusLeave   Status = "Leave"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// StandardWorkdayHours is the office-hours baseline beyond which time counts as overtime.
const StandardWorkdayHours = 9

// OvertimeCutoffHour is the local hour from which a check-out is always overtime-eligible.
const OvertimeCutoffHour = 18

// Punch is one end of the workday interval.
type Punch struct {
	Time     *time.Time
	Location string
}

// Attendance is one employee's record for one local calendar day. (EmployeeID, Date) is unique.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       Punch
	CheckOut      Punch
	Status        Status
	WorkingHours  float64
	Overtime      bool
	OvertimeHours float64
	Remarks       string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join
	Employee *employee.Summary
}

func (a *Attendance) HasCheckedIn() bool {
	return a.CheckIn.Time != nil
}

func (a *Attendance) HasCheckedOut() bool {
	return a.CheckOut.Time != nil
}
