package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db  *database.SQLiteDB
	loc *time.Location
}

func NewAttendanceRepository(db *database.SQLiteDB, loc *time.Location) attendance.AttendanceRepository {
	return &attendanceRepository{db: db, loc: loc}
}

const attendanceColumns = `
	a.id, a.employee_id, a.work_date,
	a.check_in_time, a.check_in_location, a.check_out_time, a.check_out_location,
	a.status, a.working_hours, a.overtime, a.overtime_hours, a.remarks,
	a.created_at, a.updated_at,
	e.employee_code, e.first_name, e.last_name
`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *attendanceRepository) scan(row rowScanner) (attendance.Attendance, error) {
	var (
		att                  attendance.Attendance
		summary              employee.Summary
		workDate             string
		checkIn, checkOut    sql.NullInt64
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&att.ID, &att.EmployeeID, &workDate,
		&checkIn, &att.CheckIn.Location, &checkOut, &att.CheckOut.Location,
		&att.Status, &att.WorkingHours, &att.Overtime, &att.OvertimeHours, &att.Remarks,
		&createdAt, &updatedAt,
		&summary.EmployeeCode, &summary.FirstName, &summary.LastName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if att.Date, err = parseDate(workDate, r.loc); err != nil {
		return attendance.Attendance{}, err
	}
	att.CheckIn.Time = fromNullMillis(checkIn, r.loc)
	att.CheckOut.Time = fromNullMillis(checkOut, r.loc)
	att.CreatedAt = fromMillis(createdAt, r.loc)
	att.UpdatedAt = fromMillis(updatedAt, r.loc)
	summary.ID = att.EmployeeID
	att.Employee = &summary
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := getQuerier(ctx, r.db)

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
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = q.ExecContext(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date.Format(dateLayout),
		nullMillis(newAttendance.CheckIn.Time),
		newAttendance.CheckIn.Location,
		nullMillis(newAttendance.CheckOut.Time),
		newAttendance.CheckOut.Location,
		string(newAttendance.Status),
		newAttendance.WorkingHours,
		newAttendance.Overtime,
		newAttendance.OvertimeHours,
		newAttendance.Remarks,
		toMillis(newAttendance.CreatedAt),
		toMillis(newAttendance.UpdatedAt),
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
	q := getQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = ?
	`

	att, err := r.scan(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := getQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = ? AND a.work_date = ?
	`

	att, err := r.scan(q.QueryRowContext(ctx, query, employeeID, date.Format(dateLayout)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := getQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			work_date = ?,
			check_in_time = ?,
			check_in_location = ?,
			check_out_time = ?,
			check_out_location = ?,
			status = ?,
			working_hours = ?,
			overtime = ?,
			overtime_hours = ?,
			remarks = ?,
			updated_at = ?
		WHERE id = ?
	`

	res, err := q.ExecContext(ctx, query,
		att.Date.Format(dateLayout),
		nullMillis(att.CheckIn.Time),
		att.CheckIn.Location,
		nullMillis(att.CheckOut.Time),
		att.CheckOut.Location,
		string(att.Status),
		att.WorkingHours,
		att.Overtime,
		att.OvertimeHours,
		att.Remarks,
		toMillis(database.StampUpdated(att.UpdatedAt)),
		att.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrAttendanceExists
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if affected == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := getQuerier(ctx, r.db)

	var (
		conditions []string
		args       []any
	)
	if filter.EmployeeID != "" {
		conditions = append(conditions, "a.employee_id = ?")
		args = append(args, filter.EmployeeID)
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, "a.work_date >= ?")
		args = append(args, filter.From.Format(dateLayout))
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, "a.work_date <= ?")
		args = append(args, filter.To.Format(dateLayout))
	}

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.work_date DESC, e.employee_code ASC"

	rows, err := q.QueryContext(ctx, query, args...)
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
