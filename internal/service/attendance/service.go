package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/clock"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/validator"
)

// defaultListWindowDays is how far back ListAttendance looks without an explicit range.
const defaultListWindowDays = 30

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock clock.Clock
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		clock:                clk,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := clock.StartOfDay(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil && existing.HasCheckedIn() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// A record without a check-in (e.g. pre-created by HR) is reused.
	if existing != nil {
		existing.CheckIn = attendance.Punch{Time: &now, Location: req.Location}
		existing.Status = attendance.StatusPresent
		existing.UpdatedAt = now
		if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to record check-in: %w", err)
		}
		return attendance.NewAttendanceResponse(*existing), nil
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       today,
		CheckIn:    attendance.Punch{Time: &now, Location: req.Location},
		Status:     attendance.StatusPresent,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		// Lost a race with a concurrent check-in for the same day.
		if errors.Is(err, attendance.ErrAttendanceExists) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	slog.Info("Employee checked in", "employee_id", req.EmployeeID, "attendance_id", created.ID)
	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := clock.StartOfDay(now)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || !record.HasCheckedIn() {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.HasCheckedOut() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	hours := elapsedHours(*record.CheckIn.Time, now)
	overtime, overtimeHours := evaluateOvertime(now, hours, req.Overtime)

	record.CheckOut = attendance.Punch{Time: &now, Location: req.Location}
	record.WorkingHours = hours.InexactFloat64()
	record.Overtime = overtime
	record.OvertimeHours = overtimeHours.InexactFloat64()
	record.UpdatedAt = now

	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	slog.Info("Employee checked out",
		"employee_id", req.EmployeeID,
		"attendance_id", record.ID,
		"working_hours", record.WorkingHours,
		"overtime", record.Overtime,
	)
	return attendance.NewAttendanceResponse(*record), nil
}

// GetCurrentStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetCurrentStatus(ctx context.Context, employeeID string) (attendance.StatusResponse, error) {
	now := s.clock.Now()

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, clock.StartOfDay(now))
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || !record.HasCheckedIn() {
		return attendance.StatusResponse{}, nil
	}

	status := attendance.StatusResponse{
		CheckedIn:   true,
		CheckInTime: record.CheckIn.Time,
	}

	if record.HasCheckedOut() {
		status.CheckedOut = true
		status.CheckOutTime = record.CheckOut.Time
		status.CurrentHours = record.WorkingHours
		status.WorkingHours = &record.WorkingHours
		status.Overtime = &record.Overtime
		status.OvertimeHours = &record.OvertimeHours
		return status, nil
	}

	status.CurrentHours = elapsedHours(*record.CheckIn.Time, now).InexactFloat64()
	return status, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, principal auth.Principal, query attendance.ListAttendanceQuery) ([]attendance.AttendanceResponse, error) {
	// Employees only ever see their own records, whatever they asked for.
	query.EmployeeID = principal.ScopeEmployeeID(query.EmployeeID)
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := attendance.ListFilter{EmployeeID: query.EmployeeID}

	loc := s.clock.Location()
	if query.StartDate != "" && query.EndDate != "" {
		start, _ := validator.IsValidDateIn(query.StartDate, loc)
		end, _ := validator.IsValidDateIn(query.EndDate, loc)
		filter.From = clock.StartOfDay(start)
		filter.To = clock.EndOfDay(end)
	} else {
		filter.From = clock.StartOfDay(s.clock.Now()).AddDate(0, 0, -defaultListWindowDays)
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}
	return responses, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(record), nil
}

// AdminOverride implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AdminOverride(ctx context.Context, id string, req attendance.AdminOverrideRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	applyOverride(&record, req, s.clock.Location())
	record.UpdatedAt = s.clock.Now()

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Warn("Attendance overridden by administrator", "attendance_id", record.ID, "employee_id", record.EmployeeID)
	return attendance.NewAttendanceResponse(record), nil
}

// applyOverride copies every non-nil field of req onto record. An empty
// timestamp string clears that punch time.
func applyOverride(record *attendance.Attendance, req attendance.AdminOverrideRequest, loc *time.Location) {
	if req.Date != nil {
		record.Date, _ = validator.IsValidDateIn(*req.Date, loc)
	}
	if req.CheckInTime != nil {
		record.CheckIn.Time = parseOptionalTime(*req.CheckInTime, loc)
	}
	if req.CheckInLocation != nil {
		record.CheckIn.Location = *req.CheckInLocation
	}
	if req.CheckOutTime != nil {
		record.CheckOut.Time = parseOptionalTime(*req.CheckOutTime, loc)
	}
	if req.CheckOutLocation != nil {
		record.CheckOut.Location = *req.CheckOutLocation
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.WorkingHours != nil {
		record.WorkingHours = *req.WorkingHours
	}
	if req.Overtime != nil {
		record.Overtime = *req.Overtime
	}
	if req.OvertimeHours != nil {
		record.OvertimeHours = *req.OvertimeHours
	}
	if req.Remarks != nil {
		record.Remarks = *req.Remarks
	}
}

func parseOptionalTime(s string, loc *time.Location) *time.Time {
	if s == "" {
		return nil
	}
	t, ok := validator.IsValidDateTime(s)
	if !ok {
		return nil
	}
	t = t.In(loc)
	return &t
}
