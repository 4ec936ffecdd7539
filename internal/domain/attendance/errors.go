package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("please check in first")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	// ErrAttendanceExists is returned by the store when a write would create a
	// second record for the same employee and day.
	ErrAttendanceExists = errors.New("an attendance record already exists for this employee and date")
)
