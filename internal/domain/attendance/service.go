package attendance

import (
	"context"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetCurrentStatus is the single authoritative view of today's state; hours
	// for an open session are computed at call time and never stored.
	GetCurrentStatus(ctx context.Context, employeeID string) (StatusResponse, error)

	ListAttendance(ctx context.Context, principal auth.Principal, query ListAttendanceQuery) ([]AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// AdminOverride merges the patch into the record as-is. It does not check
	// that check-out follows check-in and does not recompute working hours.
	AdminOverride(ctx context.Context, id string, req AdminOverrideRequest) (AttendanceResponse, error)
}
