package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

func NewLeaveRequestRepository(db *database.DB, loc *time.Location) leave.LeaveRequestRepository {
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

func (r *leaveRequestRepositoryImpl) scan(row pgx.Row) (leave.LeaveRequest, error) {
	var (
		lr                              leave.LeaveRequest
		emp                             employee.Summary
		apCode, apFirstName, apLastName *string
	)
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate, &lr.TotalDays,
		&lr.Remarks, &lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.ApprovalComments,
		&lr.CreatedAt, &lr.UpdatedAt,
		&emp.EmployeeCode, &emp.FirstName, &emp.LastName,
		&apCode, &apFirstName, &apLastName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	lr.StartDate = localDate(lr.StartDate, r.loc)
	lr.EndDate = localDate(lr.EndDate, r.loc)
	lr.ApprovedAt = localTime(lr.ApprovedAt, r.loc)
	emp.ID = lr.EmployeeID
	lr.Employee = &emp
	if lr.ApprovedBy != nil && apCode != nil {
		lr.Approver = &employee.Summary{
			ID:           *lr.ApprovedBy,
			EmployeeCode: *apCode,
			FirstName:    *apFirstName,
			LastName:     *apLastName,
		}
	}
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}
	newRequest.ID = id.String()
	newRequest.CreatedAt, newRequest.UpdatedAt = database.StampCreated(newRequest.CreatedAt, newRequest.UpdatedAt)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, total_days, remarks, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = q.Exec(ctx, query,
		newRequest.ID,
		newRequest.EmployeeID,
		newRequest.LeaveType,
		newRequest.StartDate.Format(dateLayout),
		newRequest.EndDate.Format(dateLayout),
		newRequest.TotalDays,
		newRequest.Remarks,
		newRequest.Status,
		newRequest.CreatedAt,
		newRequest.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return newRequest, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = $1`

	lr, err := r.scan(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

// Decide implements leave.LeaveRequestRepository. The status guard in the
// WHERE clause makes the transition happen at most once.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, decision leave.Decision) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, approval_comments = $4, updated_at = $3
		WHERE id = $5 AND status = $6
	`

	tag, err := q.Exec(ctx, query,
		decision.Status,
		decision.ApprovedBy,
		decision.ApprovedAt,
		decision.ApprovalComments,
		id,
		leave.LeaveRequestStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check leave request: %w", err)
	}
	if !exists {
		return leave.ErrLeaveRequestNotFound
	}
	return leave.ErrLeaveAlreadyProcessed
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.From != nil && filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("lr.start_date <= $%d AND lr.end_date >= $%d", argIdx, argIdx+1))
		args = append(args, filter.To.Format(dateLayout), filter.From.Format(dateLayout))
		argIdx += 2
	}

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.created_at DESC, lr.id DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
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
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM leave_requests WHERE status = $1`
	args := []interface{}{leave.LeaveRequestStatusPending}
	if employeeID != "" {
		query += ` AND employee_id = $2`
		args = append(args, employeeID)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}
