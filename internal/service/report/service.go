package report

import (
	"context"
	"fmt"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/report"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/clock"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	report.ReportRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
}

func NewReportService(
	reportRepo report.ReportRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		attendanceRepo:   attendanceRepo,
		leaveRepo:        leaveRepo,
		employeeRepo:     employeeRepo,
		clock:            clk,
	}
}

// AttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, principal auth.Principal, query report.AttendanceReportQuery) (report.AttendanceReport, error) {
	query.EmployeeID = principal.ScopeEmployeeID(query.EmployeeID)
	if err := query.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	filter := attendance.ListFilter{EmployeeID: query.EmployeeID}
	if query.StartDate != "" && query.EndDate != "" {
		loc := s.clock.Location()
		start, _ := validator.IsValidDateIn(query.StartDate, loc)
		end, _ := validator.IsValidDateIn(query.EndDate, loc)
		filter.From = clock.StartOfDay(start)
		filter.To = clock.EndOfDay(end)
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list attendance for report: %w", err)
	}

	return summarize(records), nil
}

func summarize(records []attendance.Attendance) report.AttendanceReport {
	result := report.AttendanceReport{
		TotalDays: len(records),
		Records:   make([]attendance.AttendanceResponse, 0, len(records)),
	}

	total := decimal.Zero
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			result.Present++
		case attendance.StatusAbsent:
			result.Absent++
		case attendance.StatusHalfDay:
			result.HalfDay++
		case attendance.StatusLeave:
			result.OnLeave++
		}
		total = total.Add(decimal.NewFromFloat(r.WorkingHours))
		result.Records = append(result.Records, attendance.NewAttendanceResponse(r))
	}
	result.TotalWorkingHours = total.Round(2).InexactFloat64()

	return result
}

// DashboardStats implements report.ReportService.
func (s *ReportServiceImpl) DashboardStats(ctx context.Context, principal auth.Principal) (report.DashboardStats, error) {
	scope := principal.ScopeEmployeeID("")
	today := clock.StartOfDay(s.clock.Now())

	var stats report.DashboardStats

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headcount
	g.Go(func() error {
		if !principal.IsPrivileged() {
			stats.TotalEmployees = 1
			return nil
		}
		count, err := s.employeeRepo.CountByRole(gCtx, employee.RoleEmployee)
		if err != nil {
			return err
		}
		stats.TotalEmployees = count
		return nil
	})

	// 2. Present today, across all employees
	g.Go(func() error {
		counts, err := s.DailyStatusCounts(gCtx, today)
		if err != nil {
			return err
		}
		stats.TodayAttendance = counts[attendance.StatusPresent]
		return nil
	})

	// 3. Pending leave count
	g.Go(func() error {
		count, err := s.leaveRepo.CountPending(gCtx, scope)
		if err != nil {
			return err
		}
		stats.PendingLeaves = count
		return nil
	})

	// 4. Newest pending requests
	g.Go(func() error {
		recent, err := s.leaveRepo.List(gCtx, leave.LeaveRequestFilter{
			EmployeeID: scope,
			Status:     leave.LeaveRequestStatusPending,
			Limit:      report.RecentLeavesLimit,
		})
		if err != nil {
			return err
		}
		responses := make([]leave.LeaveRequestResponse, 0, len(recent))
		for _, r := range recent {
			responses = append(responses, leave.NewLeaveRequestResponse(r))
		}
		stats.RecentLeaves = responses
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.DashboardStats{}, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	return stats, nil
}
