package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db  *database.DB
	loc *time.Location
}

func NewAttendanceRepository(db *database.DB, loc *time.Location) attendance.AttendanceRepository {
	return &attendanceRepository{db: db, loc: loc}
}

const attendanceColumns = `
	a.id, a.employee_id, a.work_date,
	a.check_in_time, a.check_in_location, a.check_out_time, a.check_out_location,
	a.status, a.working_hours, a.overtime, a.overtime_hours, a.remarks,
	a.created_at, a.updated_at,
	e.employee_code, e.first_name, e.last_name
`

func (r *attendanceRepository) scan(row pgx.Row) (attendance.Attendance, error) {
	var (
		att     attendance.Attendance
		summary employee.Summary
	)
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckIn.Time, &att.CheckIn.Location, &att.CheckOut.Time, &att.CheckOut.Location,
		&att.Status, &att.WorkingHours, &att.Overtime, &att.OvertimeHours, &att.Remarks,
		&att.CreatedAt, &att.UpdatedAt,
		&summary.EmployeeCode, &summary.FirstName, &summary.LastName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.Date = localDate(att.Date, r.loc)
	att.CheckIn.Time = localTime(att.CheckIn.Time, r.loc)
	att.CheckOut.Time = localTime(att.CheckOut.Time, r.loc)
	summary.ID = att.EmployeeID
	att.Employee = &summary
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	newAttendance.ID = id.String()
	newAttendance.CreatedAt, newAttendance.UpdatedAt = database.StampCreated(newAttendance.CreatedAt, newAttendance.UpdatedAt)

	query := `
		INSERT INTO attendances (
			id, employee_id, work_date,
			check_in_time, check_in_location, check_out_time, check_out_location,
			status, working_hours, overtime, overtime_hours, remarks,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = q.Exec(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date.Format(dateLayout),
		newAttendance.CheckIn.Time,
		newAttendance.CheckIn.Location,
		newAttendance.CheckOut.Time,
		newAttendance.CheckOut.Location,
		newAttendance.Status,
		newAttendance.WorkingHours,
		newAttendance.Overtime,
		newAttendance.OvertimeHours,
		newAttendance.Remarks,
		newAttendance.CreatedAt,
		newAttendance.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	att, err := r.scan(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.work_date = $2
	`

	att, err := r.scan(q.QueryRow(ctx, query, employeeID, date.Format(dateLayout)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			work_date = $1,
			check_in_time = $2,
			check_in_location = $3,
			check_out_time = $4,
			check_out_location = $5,
			status = $6,
			working_hours = $7,
			overtime = $8,
			overtime_hours = $9,
			remarks = $10,
			updated_at = $11
		WHERE id = $12
	`

	tag, err := q.Exec(ctx, query,
		att.Date.Format(dateLayout),
		att.CheckIn.Time,
		att.CheckIn.Location,
		att.CheckOut.Time,
		att.CheckOut.Location,
		att.Status,
		att.WorkingHours,
		att.Overtime,
		att.OvertimeHours,
		att.Remarks,
		database.StampUpdated(att.UpdatedAt),
		att.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrAttendanceExists
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("a.work_date >= $%d", argIdx))
		args = append(args, filter.From.Format(dateLayout))
		argIdx++
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("a.work_date <= $%d", argIdx))
		args = append(args, filter.To.Format(dateLayout))
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		` + where + `
		ORDER BY a.work_date DESC, e.employee_code ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, nil
}
