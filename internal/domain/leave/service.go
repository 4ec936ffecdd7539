package leave

import (
	"context"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
)

type LeaveService interface {
	Apply(ctx context.Context, principal auth.Principal, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	List(ctx context.Context, principal auth.Principal, query ListLeaveQuery) ([]LeaveRequestResponse, error)
	UpdateStatus(ctx context.Context, principal auth.Principal, req UpdateStatusRequest) (LeaveRequestResponse, error)
}
