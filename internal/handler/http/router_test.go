package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/clock"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-workforce/hrms-backend-go/internal/repository/sqlite"
	attendanceService "github.com/hrms-workforce/hrms-backend-go/internal/service/attendance"
	authService "github.com/hrms-workforce/hrms-backend-go/internal/service/auth"
	leaveService "github.com/hrms-workforce/hrms-backend-go/internal/service/leave"
	reportService "github.com/hrms-workforce/hrms-backend-go/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret   = "test-secret-key-for-jwt"
	handlerTestPassword = "password123"
)

var wib = time.FixedZone("WIB", 7*3600)

type testServer struct {
	handler http.Handler
	clock   *clock.Mock
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		TotalItems int64 `json:"total_items"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	t.Cleanup(func() { db.Close() })

	jwtService, err := jwt.NewJWTService(handlerTestSecret, "1h")
	require.NoError(t, err)

	clk := clock.NewMock(time.Date(2024, 3, 15, 9, 0, 0, 0, wib))

	employees := sqlite.NewEmployeeRepository(db)
	attendances := sqlite.NewAttendanceRepository(db, wib)
	leaves := sqlite.NewLeaveRequestRepository(db, wib)

	hash, err := authService.HashPassword(handlerTestPassword)
	require.NoError(t, err)
	for _, e := range []employee.Employee{
		{EmployeeCode: "EMP001", Email: "alice@corp.com", Role: employee.RoleEmployee, FirstName: "Alice"},
		{EmployeeCode: "EMP002", Email: "bob@corp.com", Role: employee.RoleEmployee, FirstName: "Bob"},
		{EmployeeCode: "HR001", Email: "hana@corp.com", Role: employee.RoleHR, FirstName: "Hana"},
	} {
		e.PasswordHash = hash
		e.IsActive = true
		_, err := employees.Create(ctx, e)
		require.NoError(t, err)
	}

	router := NewRouter(RouterOptions{Env: "test", FrontendURL: "http://localhost:3000", LogLevel: slog.LevelError}, jwtService, Handlers{
		Auth:       NewAuthHandler(authService.NewAuthService(employees, jwtService)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(attendances, clk)),
		Leave:      NewLeaveHandler(leaveService.NewLeaveService(leaves, clk)),
		Report:     NewReportHandler(reportService.NewReportService(sqlite.NewReportRepository(db), attendances, leaves, employees, clk)),
	})

	return &testServer{handler: router, clock: clk}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *testServer) signIn(t *testing.T, email string) string {
	t.Helper()
	rec, env := s.do(t, http.MethodPost, "/api/v1/auth/signin", "", map[string]string{
		"email":    email,
		"password": handlerTestPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.AccessToken
}

func TestAuthEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("bad credentials", func(t *testing.T) {
		rec, env := s.do(t, http.MethodPost, "/api/v1/auth/signin", "", map[string]string{
			"email": "alice@corp.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("me then sign out", func(t *testing.T) {
		token := s.signIn(t, "alice@corp.com")

		rec, env := s.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var me struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &me))
		assert.Equal(t, "alice@corp.com", me.Email)
		assert.Equal(t, "Employee", me.Role)

		rec, _ = s.do(t, http.MethodPost, "/api/v1/auth/signout", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = s.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAttendanceFlow(t *testing.T) {
	s := newTestServer(t)
	alice := s.signIn(t, "alice@corp.com")
	hr := s.signIn(t, "hana@corp.com")

	rec, env := s.do(t, http.MethodPost, "/api/v1/attendance/checkout", alice, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "STATE_CONFLICT", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/api/v1/attendance/checkin", alice, map[string]string{"location": "HQ"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Check in successful", env.Message)
	var created struct {
		ID      string `json:"id"`
		Date    string `json:"date"`
		Status  string `json:"status"`
		CheckIn struct {
			Location string `json:"location"`
		} `json:"check_in"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "2024-03-15", created.Date)
	assert.Equal(t, "Present", created.Status)
	assert.Equal(t, "HQ", created.CheckIn.Location)

	rec, env = s.do(t, http.MethodPost, "/api/v1/attendance/checkin", alice, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "STATE_CONFLICT", env.Error.Code)

	s.clock.Set(time.Date(2024, 3, 15, 18, 15, 0, 0, wib))
	rec, env = s.do(t, http.MethodPost, "/api/v1/attendance/checkout", alice, map[string]any{"location": "HQ"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		WorkingHours  float64 `json:"working_hours"`
		Overtime      bool    `json:"overtime"`
		OvertimeHours float64 `json:"overtime_hours"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 9.25, out.WorkingHours)
	assert.True(t, out.Overtime)
	assert.Equal(t, 0.25, out.OvertimeHours)

	rec, env = s.do(t, http.MethodGet, "/api/v1/attendance/status", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		CheckedIn  bool `json:"checked_in"`
		CheckedOut bool `json:"checked_out"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.CheckedIn)
	assert.True(t, status.CheckedOut)

	t.Run("employees cannot read or override single records", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodGet, "/api/v1/attendance/"+created.ID, alice, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		rec, _ = s.do(t, http.MethodPut, "/api/v1/attendance/"+created.ID, alice, map[string]string{"status": "Absent"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("hr overrides", func(t *testing.T) {
		rec, env := s.do(t, http.MethodPut, "/api/v1/attendance/"+created.ID, hr, map[string]any{
			"status":  "Half-day",
			"remarks": "left early",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var updated struct {
			Status       string  `json:"status"`
			Remarks      string  `json:"remarks"`
			WorkingHours float64 `json:"working_hours"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, "Half-day", updated.Status)
		assert.Equal(t, "left early", updated.Remarks)
		assert.Equal(t, 9.25, updated.WorkingHours)

		rec, env = s.do(t, http.MethodPut, "/api/v1/attendance/"+created.ID, hr, map[string]any{"status": "Sleeping"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Contains(t, env.Error.Details, "status")

		rec, env = s.do(t, http.MethodPut, "/api/v1/attendance/"+created.ID, hr, map[string]any{"working_hours": 10000})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Contains(t, env.Error.Details, "working_hours")

		rec, _ = s.do(t, http.MethodGet, "/api/v1/attendance/0190a1b2-0000-7000-8000-000000000000", hr, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list is scoped for employees", func(t *testing.T) {
		bob := s.signIn(t, "bob@corp.com")
		rec, env := s.do(t, http.MethodGet, "/api/v1/attendance?start_date=2024-03-01&end_date=2024-03-31", bob, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(0), env.Meta.TotalItems)

		rec, env = s.do(t, http.MethodGet, "/api/v1/attendance?start_date=2024-03-01&end_date=2024-03-31", hr, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(1), env.Meta.TotalItems)
	})
}

func TestLeaveFlow(t *testing.T) {
	s := newTestServer(t)
	alice := s.signIn(t, "alice@corp.com")
	hr := s.signIn(t, "hana@corp.com")

	rec, env := s.do(t, http.MethodPost, "/api/v1/leaves", alice, map[string]string{
		"leave_type": "Paid", "start_date": "2024-03-15", "end_date": "2024-03-16",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "STATE_CONFLICT", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/api/v1/leaves", alice, map[string]string{
		"leave_type": "Vacation", "start_date": "2024-03-18", "end_date": "2024-03-19",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/api/v1/leaves", alice, map[string]string{
		"leave_type": "Paid", "start_date": "2024-03-18", "end_date": "2024-03-22", "remarks": "holiday",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID        string `json:"id"`
		TotalDays int    `json:"total_days"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 5, created.TotalDays)
	assert.Equal(t, "Pending", created.Status)

	rec, _ = s.do(t, http.MethodPut, "/api/v1/leaves/"+created.ID+"/status", alice, map[string]string{"status": "Approved"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = s.do(t, http.MethodPut, "/api/v1/leaves/"+created.ID+"/status", hr, map[string]string{"status": "Approved", "approval_comments": "enjoy"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Leave request Approved", env.Message)

	rec, env = s.do(t, http.MethodPut, "/api/v1/leaves/"+created.ID+"/status", hr, map[string]string{"status": "Rejected"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "STATE_CONFLICT", env.Error.Code)

	rec, env = s.do(t, http.MethodGet, "/api/v1/leaves?status=Approved", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), env.Meta.TotalItems)
}

func TestReportEndpoints(t *testing.T) {
	s := newTestServer(t)
	alice := s.signIn(t, "alice@corp.com")
	hr := s.signIn(t, "hana@corp.com")

	rec, _ := s.do(t, http.MethodPost, "/api/v1/attendance/checkin", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := s.do(t, http.MethodGet, "/api/v1/reports/dashboard", hr, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var stats struct {
		TotalEmployees  int64 `json:"total_employees"`
		TodayAttendance int64 `json:"today_attendance"`
		PendingLeaves   int64 `json:"pending_leaves"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(2), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.TodayAttendance)
	assert.Equal(t, int64(0), stats.PendingLeaves)

	rec, env = s.do(t, http.MethodGet, "/api/v1/reports/attendance", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rpt struct {
		TotalDays int `json:"total_days"`
		Present   int `json:"present"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rpt))
	assert.Equal(t, 1, rpt.TotalDays)
	assert.Equal(t, 1, rpt.Present)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/reports/attendance/export", alice, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/reports/attendance/export?start_date=2024-03-01&end_date=2024-03-31", hr, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance_report_")
	assert.NotZero(t, rec.Body.Len())
}
