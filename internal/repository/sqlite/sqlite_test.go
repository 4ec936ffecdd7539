package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func newTestDB(t *testing.T) *database.SQLiteDB {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { db.Close() })
	return db
}

func createEmployee(t *testing.T, db *database.SQLiteDB, code string, role employee.Role) employee.Employee {
	t.Helper()
	e, err := NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		EmployeeCode: code,
		Email:        code + "@example.com",
		PasswordHash: "x",
		Role:         role,
		FirstName:    "First " + code,
		LastName:     "Last",
		IsActive:     true,
	})
	require.NoError(t, err)
	return e
}

func TestEmployeeRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewEmployeeRepository(db)

	emp := createEmployee(t, db, "EMP001", employee.RoleEmployee)
	createEmployee(t, db, "EMP002", employee.RoleEmployee)
	createEmployee(t, db, "HR001", employee.RoleHR)

	got, err := repo.GetByEmail(ctx, "EMP001@example.com")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)
	assert.True(t, got.IsActive)
	assert.Equal(t, employee.RoleEmployee, got.Role)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = repo.Create(ctx, employee.Employee{EmployeeCode: "EMP001", Email: "other@example.com", Role: employee.RoleEmployee})
	assert.ErrorIs(t, err, employee.ErrEmployeeExists)

	count, err := repo.CountByRole(ctx, employee.RoleEmployee)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestAttendanceRepository_UniquePerDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(db, wib)
	emp := createEmployee(t, db, "EMP001", employee.RoleEmployee)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, wib)
	checkIn := time.Date(2024, 3, 15, 9, 0, 0, 0, wib)

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day,
		CheckIn:    attendance.Punch{Time: &checkIn, Location: "HQ"},
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: emp.ID, Date: day, Status: attendance.StatusPresent})
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)

	found, err := repo.GetByEmployeeAndDate(ctx, emp.ID, day)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.True(t, found.Date.Equal(day))
	require.NotNil(t, found.CheckIn.Time)
	assert.True(t, found.CheckIn.Time.Equal(checkIn))
	assert.Nil(t, found.CheckOut.Time)
	assert.Equal(t, "HQ", found.CheckIn.Location)
	assert.Equal(t, "EMP001", found.Employee.EmployeeCode)

	missing, err := repo.GetByEmployeeAndDate(ctx, emp.ID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAttendanceRepository_UpdateAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAttendanceRepository(db, wib)
	alice := createEmployee(t, db, "EMP001", employee.RoleEmployee)
	bob := createEmployee(t, db, "EMP002", employee.RoleEmployee)

	for _, emp := range []employee.Employee{alice, bob} {
		for d := 1; d <= 3; d++ {
			_, err := repo.Create(ctx, attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       time.Date(2024, 3, d, 0, 0, 0, 0, wib),
				Status:     attendance.StatusPresent,
			})
			require.NoError(t, err)
		}
	}

	all, err := repo.List(ctx, attendance.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, 3, all[0].Date.Day())

	records, err := repo.List(ctx, attendance.ListFilter{
		EmployeeID: alice.ID,
		From:       time.Date(2024, 3, 2, 0, 0, 0, 0, wib),
		To:         time.Date(2024, 3, 3, 23, 59, 59, 0, wib),
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 3, records[0].Date.Day())
	assert.Equal(t, 2, records[1].Date.Day())

	rec := records[0]
	out := time.Date(2024, 3, 3, 17, 0, 0, 0, wib)
	rec.CheckOut.Time = &out
	rec.WorkingHours = 8.25
	rec.Overtime = true
	rec.Remarks = "corrected"
	require.NoError(t, repo.Update(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.InDelta(t, 8.25, got.WorkingHours, 0.001)
	assert.True(t, got.Overtime)
	assert.Equal(t, "corrected", got.Remarks)
	assert.True(t, got.CheckOut.Time.Equal(out))

	rec.Date = records[1].Date
	assert.ErrorIs(t, repo.Update(ctx, rec), attendance.ErrAttendanceExists)

	rec.ID = "missing"
	rec.Date = time.Date(2024, 4, 1, 0, 0, 0, 0, wib)
	assert.ErrorIs(t, repo.Update(ctx, rec), attendance.ErrAttendanceNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestLeaveRequestRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewLeaveRequestRepository(db, wib)
	emp := createEmployee(t, db, "EMP001", employee.RoleEmployee)
	other := createEmployee(t, db, "EMP002", employee.RoleEmployee)
	hr := createEmployee(t, db, "HR001", employee.RoleHR)

	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, wib) }
	var ids []string
	for _, r := range [][2]int{{1, 3}, {10, 12}, {20, 25}} {
		lr, err := repo.Create(ctx, leave.LeaveRequest{
			EmployeeID: emp.ID,
			LeaveType:  leave.LeaveTypePaid,
			StartDate:  day(r[0]),
			EndDate:    day(r[1]),
			TotalDays:  r[1] - r[0] + 1,
			Status:     leave.LeaveRequestStatusPending,
		})
		require.NoError(t, err)
		ids = append(ids, lr.ID)
	}
	_, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: other.ID,
		LeaveType:  leave.LeaveTypeSick,
		StartDate:  day(2),
		EndDate:    day(2),
		TotalDays:  1,
		Status:     leave.LeaveRequestStatusPending,
	})
	require.NoError(t, err)

	from, to := day(3), day(11)
	overlap, err := repo.List(ctx, leave.LeaveRequestFilter{EmployeeID: emp.ID, From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, overlap, 2)

	newest, err := repo.List(ctx, leave.LeaveRequestFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, other.ID, newest[0].EmployeeID)
	assert.Equal(t, ids[2], newest[1].ID)

	decision := leave.Decision{
		Status:           leave.LeaveRequestStatusApproved,
		ApprovedBy:       hr.ID,
		ApprovedAt:       time.Date(2024, 4, 20, 10, 0, 0, 0, wib),
		ApprovalComments: "enjoy",
	}
	require.NoError(t, repo.Decide(ctx, ids[0], decision))
	decision.Status = leave.LeaveRequestStatusRejected
	assert.ErrorIs(t, repo.Decide(ctx, ids[0], decision), leave.ErrLeaveAlreadyProcessed)
	assert.ErrorIs(t, repo.Decide(ctx, "missing", decision), leave.ErrLeaveRequestNotFound)

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, got.Status)
	assert.Equal(t, "enjoy", got.ApprovalComments)
	require.NotNil(t, got.Approver)
	assert.Equal(t, "HR001", got.Approver.EmployeeCode)
	assert.True(t, got.ApprovedAt.Equal(decision.ApprovedAt))
	assert.Equal(t, 3, got.TotalDays)

	pending, err := repo.List(ctx, leave.LeaveRequestFilter{Status: leave.LeaveRequestStatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	count, err := repo.CountPending(ctx, emp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	count, err = repo.CountPending(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestReportRepository_DailyStatusCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	attRepo := NewAttendanceRepository(db, wib)
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, wib)

	statuses := []attendance.Status{attendance.StatusPresent, attendance.StatusPresent, attendance.StatusHalfDay}
	for i, s := range statuses {
		emp := createEmployee(t, db, "EMP00"+string(rune('1'+i)), employee.RoleEmployee)
		_, err := attRepo.Create(ctx, attendance.Attendance{EmployeeID: emp.ID, Date: day, Status: s})
		require.NoError(t, err)
		_, err = attRepo.Create(ctx, attendance.Attendance{EmployeeID: emp.ID, Date: day.AddDate(0, 0, -1), Status: attendance.StatusPresent})
		require.NoError(t, err)
	}

	counts, err := NewReportRepository(db).DailyStatusCounts(ctx, day)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[attendance.StatusPresent])
	assert.EqualValues(t, 1, counts[attendance.StatusHalfDay])
	assert.Zero(t, counts[attendance.StatusAbsent])
}

func TestWithTransaction_RollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewEmployeeRepository(db)

	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, employee.Employee{EmployeeCode: "T1", Email: "t1@example.com", Role: employee.RoleAdmin}); err != nil {
			return err
		}
		_, err := repo.Create(ctx, employee.Employee{EmployeeCode: "T1", Email: "t2@example.com", Role: employee.RoleAdmin})
		return err
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeExists)

	count, err := repo.CountByRole(ctx, employee.RoleAdmin)
	require.NoError(t, err)
	assert.Zero(t, count)
}
