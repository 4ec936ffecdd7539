package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db  *database.SQLiteDB
	loc *time.Location
}

func NewLeaveRequestRepository(db *database.SQLiteDB, loc *time.Location) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db, loc: loc}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.total_days,
	lr.remarks, lr.status, lr.approved_by, lr.approved_at, lr.approval_comments,
	lr.created_at, lr.updated_at,
	e.employee_code, e.first_name, e.last_name,
	ap.employee_code, ap.first_name, ap.last_name
`

const leaveRequestJoins = `
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id
	LEFT JOIN employees ap ON ap.id = lr.approved_by
`

func (r *leaveRequestRepositoryImpl) scan(row rowScanner) (leave.LeaveRequest, error) {
	var (
		lr                              leave.LeaveRequest
		emp                             employee.Summary
		startDate, endDate              string
		approvedBy                      sql.NullString
		approvedAt                      sql.NullInt64
		createdAt, updatedAt            int64
		apCode, apFirstName, apLastName sql.NullString
	)
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &startDate, &endDate, &lr.TotalDays,
		&lr.Remarks, &lr.Status, &approvedBy, &approvedAt, &lr.ApprovalComments,
		&createdAt, &updatedAt,
		&emp.EmployeeCode, &emp.FirstName, &emp.LastName,
		&apCode, &apFirstName, &apLastName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if lr.StartDate, err = parseDate(startDate, r.loc); err != nil {
		return leave.LeaveRequest{}, err
	}
	if lr.EndDate, err = parseDate(endDate, r.loc); err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.ApprovedAt = fromNullMillis(approvedAt, r.loc)
	lr.CreatedAt = fromMillis(createdAt, r.loc)
	lr.UpdatedAt = fromMillis(updatedAt, r.loc)
	emp.ID = lr.EmployeeID
	lr.Employee = &emp
	if approvedBy.Valid {
		lr.ApprovedBy = &approvedBy.String
		if apCode.Valid {
			lr.Approver = &employee.Summary{
				ID:           approvedBy.String,
				EmployeeCode: apCode.String,
				FirstName:    apFirstName.String,
				LastName:     apLastName.String,
			}
		}
	}
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := getQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}
	newRequest.ID = id.String()
	newRequest.CreatedAt, newRequest.UpdatedAt = database.StampCreated(newRequest.CreatedAt, newRequest.UpdatedAt)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, total_days, remarks, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = q.ExecContext(ctx, query,
		newRequest.ID,
		newRequest.EmployeeID,
		string(newRequest.LeaveType),
		newRequest.StartDate.Format(dateLayout),
		newRequest.EndDate.Format(dateLayout),
		newRequest.TotalDays,
		newRequest.Remarks,
		string(newRequest.Status),
		toMillis(newRequest.CreatedAt),
		toMillis(newRequest.UpdatedAt),
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return newRequest, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := getQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = ?`

	lr, err := r.scan(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, decision leave.Decision) error {
	q := getQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = ?, approved_by = ?, approved_at = ?, approval_comments = ?, updated_at = ?
		WHERE id = ? AND status = ?
	`

	res, err := q.ExecContext(ctx, query,
		string(decision.Status),
		decision.ApprovedBy,
		toMillis(decision.ApprovedAt),
		decision.ApprovalComments,
		toMillis(decision.ApprovedAt),
		id,
		string(leave.LeaveRequestStatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = ?)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check leave request: %w", err)
	}
	if !exists {
		return leave.ErrLeaveRequestNotFound
	}
	return leave.ErrLeaveAlreadyProcessed
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := getQuerier(ctx, r.db)

	var (
		conditions []string
		args       []any
	)
	if filter.EmployeeID != "" {
		conditions = append(conditions, "lr.employee_id = ?")
		args = append(args, filter.EmployeeID)
	}
	if filter.Status != "" {
		conditions = append(conditions, "lr.status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.From != nil && filter.To != nil {
		conditions = append(conditions, "lr.start_date <= ? AND lr.end_date >= ?")
		args = append(args, filter.To.Format(dateLayout), filter.From.Format(dateLayout))
	}

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.created_at DESC, lr.id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}

// CountPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountPending(ctx context.Context, employeeID string) (int64, error) {
	q := getQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM leave_requests WHERE status = ?`
	args := []any{string(leave.LeaveRequestStatusPending)}
	if employeeID != "" {
		query += ` AND employee_id = ?`
		args = append(args, employeeID)
	}

	var count int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}
