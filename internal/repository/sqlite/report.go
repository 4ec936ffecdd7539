package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/report"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.SQLiteDB
}

func NewReportRepository(db *database.SQLiteDB) report.ReportRepository {
	return &reportRepository{db: db}
}

// DailyStatusCounts implements report.ReportRepository.
func (r *reportRepository) DailyStatusCounts(ctx context.Context, day time.Time) (map[attendance.Status]int64, error) {
	q := getQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM attendances WHERE work_date = ? GROUP BY status`,
		day.Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count daily attendance: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance count: %w", err)
		}
		counts[attendance.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily attendance counts: %w", err)
	}
	return counts, nil
}
