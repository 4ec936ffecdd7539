package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/clock"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	clock clock.Clock
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository, clk clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		clock:                  clk,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, principal auth.Principal, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	loc := s.clock.Location()
	start, _ := validator.IsValidDateIn(req.StartDate, loc)
	end, _ := validator.IsValidDateIn(req.EndDate, loc)

	now := s.clock.Now()
	totalDays, err := leave.ValidateDateRange(now, start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: principal.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		Remarks:    req.Remarks,
		Status:     leave.LeaveRequestStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted", "leave_request_id", created.ID, "employee_id", created.EmployeeID, "total_days", totalDays)
	return leave.NewLeaveRequestResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, principal auth.Principal, query leave.ListLeaveQuery) ([]leave.LeaveRequestResponse, error) {
	query.EmployeeID = principal.ScopeEmployeeID(query.EmployeeID)
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := leave.LeaveRequestFilter{
		EmployeeID: query.EmployeeID,
		Status:     leave.LeaveRequestStatus(query.Status),
	}
	if query.StartDate != "" && query.EndDate != "" {
		loc := s.clock.Location()
		from, _ := validator.IsValidDateIn(query.StartDate, loc)
		to, _ := validator.IsValidDateIn(query.EndDate, loc)
		filter.From = &from
		filter.To = &to
	}

	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses, nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, principal auth.Principal, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if !principal.IsPrivileged() {
		return leave.LeaveRequestResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	err := s.LeaveRequestRepository.Decide(ctx, req.ID, leave.Decision{
		Status:           leave.LeaveRequestStatus(req.Status),
		ApprovedBy:       principal.EmployeeID,
		ApprovedAt:       s.clock.Now(),
		ApprovalComments: req.ApprovalComments,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}

	slog.Info("Leave request processed", "leave_request_id", updated.ID, "status", updated.Status, "approved_by", principal.EmployeeID)
	return leave.NewLeaveRequestResponse(updated), nil
}
