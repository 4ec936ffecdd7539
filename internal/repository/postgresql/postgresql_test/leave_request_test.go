package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-workforce/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRequestRepository_DecideOnce(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(setup.DB, setup.Loc)
	emp := setup.CreateEmployee(t, "EMP010", employee.RoleEmployee)
	hr := setup.CreateEmployee(t, "HR001", employee.RoleHR)

	lr, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypeSick,
		StartDate:  time.Date(2024, 4, 1, 0, 0, 0, 0, setup.Loc),
		EndDate:    time.Date(2024, 4, 2, 0, 0, 0, 0, setup.Loc),
		TotalDays:  2,
		Status:     leave.LeaveRequestStatusPending,
	})
	require.NoError(t, err)

	decision := leave.Decision{
		Status:           leave.LeaveRequestStatusApproved,
		ApprovedBy:       hr.ID,
		ApprovedAt:       time.Now(),
		ApprovalComments: "get well",
	}
	require.NoError(t, repo.Decide(ctx, lr.ID, decision))

	decision.Status = leave.LeaveRequestStatusRejected
	assert.ErrorIs(t, repo.Decide(ctx, lr.ID, decision), leave.ErrLeaveAlreadyProcessed)
	assert.ErrorIs(t, repo.Decide(ctx, "0190a1b2-0000-7000-8000-000000000000", decision), leave.ErrLeaveRequestNotFound)

	got, err := repo.GetByID(ctx, lr.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, got.Status)
	require.NotNil(t, got.Approver)
	assert.Equal(t, "HR001", got.Approver.EmployeeCode)
	assert.Equal(t, 1, got.StartDate.Day())
}

func TestLeaveRequestRepository_ListOverlap(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(setup.DB, setup.Loc)
	emp := setup.CreateEmployee(t, "EMP011", employee.RoleEmployee)

	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, setup.Loc) }
	for _, r := range [][2]int{{1, 3}, {10, 12}, {20, 25}} {
		_, err := repo.Create(ctx, leave.LeaveRequest{
			EmployeeID: emp.ID,
			LeaveType:  leave.LeaveTypePaid,
			StartDate:  day(r[0]),
			EndDate:    day(r[1]),
			TotalDays:  r[1] - r[0] + 1,
			Status:     leave.LeaveRequestStatusPending,
		})
		require.NoError(t, err)
	}

	from, to := day(3), day(11)
	list, err := repo.List(ctx, leave.LeaveRequestFilter{EmployeeID: emp.ID, From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	count, err := repo.CountPending(ctx, emp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
