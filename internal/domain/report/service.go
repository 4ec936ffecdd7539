package report

import (
	"context"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
)

type ReportService interface {
	AttendanceReport(ctx context.Context, principal auth.Principal, query AttendanceReportQuery) (AttendanceReport, error)
	ExportAttendanceReport(ctx context.Context, principal auth.Principal, query AttendanceReportQuery) (ExportFile, error)
	DashboardStats(ctx context.Context, principal auth.Principal) (DashboardStats, error)
}
